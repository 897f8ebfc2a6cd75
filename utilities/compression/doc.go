// Package compression holds the run-length encoding of a single chunk.
//
// A run is a byte value together with the number of times it occurs
// consecutively. For example:
//
//	WXXXXXXXXXXXXXXXYZZ
//	(W,1) (X,15) (Y,1) (Z,2)
//
// Runs are kept in memory as (value, count) pairs; there is no serialized form.
// Each chunk of the input is encoded on its own, so a run of identical bytes
// that crosses a chunk boundary is reported as two runs, one ending the first
// chunk and one starting the next. Stitching those back together would need a
// pass over the chunk boundaries after all chunks finish, which the encoder
// doesn't do.

package compression
