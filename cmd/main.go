package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dargueta/chunkrle"
	"github.com/dargueta/chunkrle/encoder"
	"github.com/dargueta/chunkrle/progress"
	"github.com/dargueta/chunkrle/report"
	"github.com/urfave/cli/v2"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command line in `args` and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "chunkrle: ", 0)

	app := newApp(stdout, stderr)
	err := app.Run(args)
	if err == nil {
		return exitOK
	}

	logger.Printf("failed to encode file: %s", err.Error())
	if errors.Is(err, chunkrle.ErrInvalidArgument) {
		return exitUsage
	}
	return exitFailure
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "chunkrle",
		Usage:     "Run-length encode a file in parallel chunks",
		Writer:    stdout,
		ErrWriter: stderr,
		// Errors are reported by run(), which also picks the exit code.
		ExitErrHandler: func(*cli.Context, error) {},
		OnUsageError:   usageError,
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode a file and print the size of the result",
				ArgsUsage: "[FILE]",
				Action:    encodeFile,
				// Unknown flags and unparseable values count as bad arguments.
				OnUsageError: usageError,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "file to encode if none is given as an argument",
						EnvVars: []string{"CHUNKRLE_INPUT"},
					},
					&cli.IntFlag{
						Name:    "chunk-size",
						Aliases: []string{"c"},
						Usage:   "bytes per parallel unit of work",
						Value:   chunkrle.DefaultChunkSize,
						EnvVars: []string{"CHUNKRLE_CHUNK_SIZE"},
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "chunks to encode at once (0 = one per CPU)",
						EnvVars: []string{"CHUNKRLE_WORKERS"},
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "don't draw a progress bar",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "print input and run counts along with the size",
					},
					&cli.BoolFlag{
						Name:  "stats-csv",
						Usage: "print per-chunk statistics as CSV after the summary",
					},
				},
			},
		},
	}
}

func usageError(context *cli.Context, err error, isSubcommand bool) error {
	return chunkrle.ErrInvalidArgument.Wrap(err)
}

func configFromFlags(context *cli.Context) chunkrle.Config {
	path := context.Args().First()
	if path == "" {
		path = context.String("input")
	}
	return chunkrle.Config{
		Path:      path,
		ChunkSize: context.Int("chunk-size"),
		Workers:   context.Int("workers"),
	}
}

func encodeFile(context *cli.Context) error {
	if context.Args().Len() > 1 {
		return chunkrle.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("expected at most one file, got %d", context.Args().Len()))
	}

	cfg := configFromFlags(context)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var reporter progress.Reporter = progress.NopReporter{}
	if !context.Bool("quiet") {
		reporter = progress.NewBar(context.App.ErrWriter)
	}

	enc, err := encoder.New(cfg, encoder.WithReporter(reporter))
	if err != nil {
		return err
	}

	runs, stats, err := enc.EncodeFileWithStats(cfg.Path)
	if err != nil {
		return err
	}

	inputBytes := 0
	if len(stats) > 0 {
		inputBytes = stats[len(stats)-1].End
	}

	summary := report.NewSummary(inputBytes, runs, stats)
	if err := report.WriteSummary(context.App.Writer, summary, context.Bool("verbose")); err != nil {
		return err
	}
	if context.Bool("stats-csv") {
		return report.WriteChunkStatsCSV(context.App.Writer, stats)
	}
	return nil
}
