package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	urfavecli "github.com/urfave/cli/v3"

	"github.com/jacoelho/textkit/internal/cli"
	"github.com/jacoelho/textkit/internal/config"
	"github.com/jacoelho/textkit/internal/exit"
	"github.com/jacoelho/textkit/internal/logging"
	"github.com/jacoelho/textkit/internal/ndjson"
	"github.com/jacoelho/textkit/internal/normalize"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newApp().Run(ctx, args); err != nil {
		result := exit.FromError(err)
		result.Print()
		return result.ExitCode
	}
	return exit.CodeSuccess
}

func newApp() *urfavecli.Command {
	return &urfavecli.Command{
		Name:    "textkit",
		Usage:   "Bracket aware text scanning and JSON data tools",
		Version: version,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
			&urfavecli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (logfmt or json)",
			},
		},
		OnUsageError: func(_ context.Context, _ *urfavecli.Command, err error, _ bool) error {
			return exit.Usagef("%v", err)
		},
		Commands: []*urfavecli.Command{
			{
				Name:      "scan",
				Usage:     "Print the offset of the first target character outside brackets and quotes",
				ArgsUsage: "[text]",
				Action:    scanCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:    "target",
						Aliases: []string{"t"},
						Usage:   "Characters to look for; any of them matches",
						Value:   ",",
					},
					&urfavecli.IntFlag{
						Name:  "start",
						Usage: "Byte offset to start scanning from",
					},
					&urfavecli.IntFlag{
						Name:  "open",
						Usage: "Print the offset of the bracket closing the one at this offset instead",
						Value: -1,
					},
					lenientFlag(),
				},
			},
			{
				Name:      "split",
				Usage:     "Split text at top-level separators",
				ArgsUsage: "[text]",
				Action:    splitCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:    "separator",
						Aliases: []string{"s"},
						Usage:   "Separator character",
						Value:   ",",
					},
					lenientFlag(),
				},
			},
			{
				Name:      "size",
				Usage:     "Format byte counts as human readable sizes",
				ArgsUsage: "[bytes...]",
				Action:    sizeCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.IntFlag{
						Name:  "base",
						Usage: "1000 for kB/MB, 1024 for KiB/MiB",
					},
				},
			},
			{
				Name:      "compact",
				Usage:     "Format numbers with k/M/G suffixes",
				ArgsUsage: "[number...]",
				Action:    compactCommand,
			},
			{
				Name:      "ip",
				Usage:     "Convert IPv4 addresses between dotted and numeric form",
				ArgsUsage: "[address...]",
				Action:    ipCommand,
			},
			{
				Name:      "mac",
				Usage:     "Reformat MAC addresses",
				ArgsUsage: "[address...]",
				Action:    macCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:    "delimiter",
						Aliases: []string{"d"},
						Usage:   "Delimiter between octets (empty for none)",
					},
				},
			},
			{
				Name:   "ndjson",
				Usage:  "Filter and normalize a newline-delimited JSON stream from stdin",
				Action: ndjsonCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "JSONPath expression; every match is written as a line",
					},
					pruneFlag(),
					&urfavecli.BoolFlag{
						Name:  "skip-invalid",
						Usage: "Log and skip lines that are not valid JSON",
					},
					&urfavecli.FloatFlag{
						Name:  "rate",
						Usage: "Maximum lines written per second (0 for unlimited)",
					},
					&urfavecli.BoolFlag{
						Name:  "progress",
						Usage: "Log progress while reading",
					},
					&urfavecli.DurationFlag{
						Name:  "progress-period",
						Usage: "Minimum time between progress reports",
					},
				},
			},
			{
				Name:   "reorder",
				Usage:  "Reorder the top-level properties of a JSON object from stdin",
				Action: reorderCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringSliceFlag{
						Name:  "first",
						Usage: "Properties to put first",
					},
					&urfavecli.StringSliceFlag{
						Name:  "last",
						Usage: "Properties to put last",
					},
					&urfavecli.BoolFlag{
						Name:  "sort",
						Usage: "Sort the remaining properties by name",
					},
					&urfavecli.BoolFlag{
						Name:  "descending",
						Usage: "Sort in descending order",
					},
					outputFlag(),
				},
			},
			{
				Name:   "prune",
				Usage:  "Drop empty or default members from a JSON value on stdin",
				Action: pruneCommand,
				Flags: []urfavecli.Flag{
					pruneFlag(),
					outputFlag(),
				},
			},
		},
	}
}

func lenientFlag() urfavecli.Flag {
	return &urfavecli.BoolFlag{
		Name:  "lenient",
		Usage: "Treat mismatched or unclosed brackets as running to the end of the text",
	}
}

func pruneFlag() urfavecli.Flag {
	return &urfavecli.StringFlag{
		Name:  "prune",
		Usage: "Members to drop: keep, empty or defaults",
	}
}

func outputFlag() urfavecli.Flag {
	return &urfavecli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output format (json or yaml)",
	}
}

// setup loads the configuration file, applies the flags that were set and
// builds the logger.
func setup(cmd *urfavecli.Command) (config.Config, log.Logger, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return cfg, nil, err
	}

	if cmd.Bool("verbose") {
		cfg.Log.Level = logging.LevelDebug
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = logging.Format(cmd.String("log-format"))
	}
	if cmd.IsSet("lenient") {
		cfg.Lenient = cmd.Bool("lenient")
	}
	if cmd.IsSet("base") {
		cfg.SizeBase = cmd.Int("base")
	}
	if cmd.IsSet("delimiter") {
		cfg.MACDelimiter = cmd.String("delimiter")
	}
	if cmd.IsSet("output") {
		cfg.Output = config.Output(cmd.String("output"))
	}
	if cmd.IsSet("prune") {
		cfg.Prune = cmd.String("prune")
	}
	if cmd.IsSet("first") {
		cfg.Order.First = cmd.StringSlice("first")
	}
	if cmd.IsSet("last") {
		cfg.Order.Last = cmd.StringSlice("last")
	}
	if cmd.IsSet("sort") {
		cfg.Order.Sort = cmd.Bool("sort")
	}
	if cmd.IsSet("descending") {
		cfg.Order.SortDescending = cmd.Bool("descending")
	}
	if cmd.IsSet("rate") {
		cfg.RateLimit = cmd.Float("rate")
	}
	if cmd.IsSet("progress") {
		cfg.Progress.Enabled = cmd.Bool("progress")
	}
	if cmd.IsSet("progress-period") {
		cfg.Progress.Period = cmd.Duration("progress-period")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	logger, err := logging.New(cmd.Root().ErrWriter, cfg.Log)
	if err != nil {
		return cfg, nil, err
	}
	level.Debug(logger).Log("msg", "configuration loaded", "command", cmd.Name, "config", cmd.String("config"))
	return cfg, logger, nil
}

// textArg joins the positional arguments, or reads stdin when there are
// none.
func textArg(cmd *urfavecli.Command) (string, error) {
	if cmd.Args().Len() > 0 {
		return strings.Join(cmd.Args().Slice(), " "), nil
	}
	data, err := io.ReadAll(cmd.Root().Reader)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// valueArgs returns the arguments, or one value per non-blank stdin line
// when there are none.
func valueArgs(cmd *urfavecli.Command) ([]string, error) {
	if cmd.Args().Len() > 0 {
		return cmd.Args().Slice(), nil
	}

	var values []string
	for line, err := range ndjson.Lines(cmd.Root().Reader) {
		if err != nil {
			return nil, err
		}
		values = append(values, line)
	}
	return values, nil
}

func scanCommand(_ context.Context, cmd *urfavecli.Command) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	text, err := textArg(cmd)
	if err != nil {
		return err
	}

	if open := cmd.Int("open"); open >= 0 {
		return cli.Closing(cmd.Root().Writer, text, open)
	}

	target, err := cli.TargetFor(cmd.String("target"))
	if err != nil {
		return err
	}
	return cli.Scan(cmd.Root().Writer, text, cmd.Int("start"), target, cfg.Lenient)
}

func splitCommand(_ context.Context, cmd *urfavecli.Command) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	text, err := textArg(cmd)
	if err != nil {
		return err
	}
	return cli.Split(cmd.Root().Writer, text, cmd.String("separator"), cfg.Lenient)
}

func sizeCommand(_ context.Context, cmd *urfavecli.Command) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	values, err := valueArgs(cmd)
	if err != nil {
		return err
	}
	return cli.Size(cmd.Root().Writer, values, cfg.SizeBase)
}

func compactCommand(_ context.Context, cmd *urfavecli.Command) error {
	if _, _, err := setup(cmd); err != nil {
		return err
	}
	values, err := valueArgs(cmd)
	if err != nil {
		return err
	}
	return cli.Compact(cmd.Root().Writer, values)
}

func ipCommand(_ context.Context, cmd *urfavecli.Command) error {
	if _, _, err := setup(cmd); err != nil {
		return err
	}
	values, err := valueArgs(cmd)
	if err != nil {
		return err
	}
	return cli.IP(cmd.Root().Writer, values)
}

func macCommand(_ context.Context, cmd *urfavecli.Command) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	values, err := valueArgs(cmd)
	if err != nil {
		return err
	}
	return cli.MAC(cmd.Root().Writer, values, cfg.MACDelimiter)
}

func ndjsonCommand(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	opts := cli.NDJSONOptions{
		Path:           cmd.String("path"),
		Prune:          cfg.PruneMode(),
		SkipInvalid:    cmd.Bool("skip-invalid"),
		RateLimit:      cfg.RateLimit,
		Progress:       cfg.Progress.Enabled,
		ProgressPeriod: cfg.Progress.Period,
	}
	return cli.NDJSON(ctx, cmd.Root().Reader, cmd.Root().Writer, opts, logger)
}

func reorderCommand(_ context.Context, cmd *urfavecli.Command) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	return cli.Reorder(cmd.Root().Reader, cmd.Root().Writer, cfg.Order, cfg.Output)
}

func pruneCommand(_ context.Context, cmd *urfavecli.Command) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	mode := cfg.PruneMode()
	if !cmd.IsSet("prune") && cfg.Prune == normalize.Keep.String() {
		// pruning is the point of this command
		mode = normalize.Empty
	}
	return cli.Prune(cmd.Root().Reader, cmd.Root().Writer, mode, cfg.Output)
}
