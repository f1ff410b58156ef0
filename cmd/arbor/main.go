package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/go-drift/arbor/cmd/arbor/internal/commands"
	"github.com/go-drift/arbor/cmd/arbor/internal/config"
	"github.com/go-drift/arbor/cmd/arbor/internal/state"
)

const appName = "arbor"

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	dir, err := os.Getwd()
	if err != nil {
		return ctx, fmt.Errorf("unable to get working directory: %w", err)
	}
	configFile := cmd.String("config")
	if env.Cfg, err = config.Load(configFile, dir); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.Cfg.Logging.Level = "debug"
	}
	env.InstallLogger(env.Cfg.Logging.Prepare())

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", version()), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.Log.Debug("No configuration file given")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	env.RestoreLogger()
	return nil
}

// Errors from subcommands are plain errors, reported once by exitErrHandler
// or by main.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)
	if env.Log != nil && env.Log.Core().Enabled(zap.ErrorLevel) {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func newApp() *cli.Command {
	sceneFlags := func(extra ...cli.Flag) []cli.Flag {
		return append(append([]cli.Flag{}, commands.SizeFlags...), extra...)
	}

	return &cli.Command{
		Name:            appName,
		Usage:           "lays out and routes events through YAML scene documents",
		Version:         version() + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML), default is " + config.FileName + " when present"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log debug output of the layout engine and event router"},
		},
		Commands: []*cli.Command{
			{
				Name:         "layout",
				Usage:        "Runs the initial layout pass and prints every element's desired size and bounds",
				OnUsageError: usageErrorHandler,
				Action:       commands.Layout,
				ArgsUsage:    "SCENE",
				Flags: sceneFlags(
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "output `FORMAT` (text, json)"},
				),
			},
			{
				Name:         "events",
				Usage:        "Raises an event on a named element and prints each delivery",
				OnUsageError: usageErrorHandler,
				Action:       commands.Events,
				ArgsUsage:    "SCENE",
				Flags: sceneFlags(
					&cli.StringFlag{Name: "target", Aliases: []string{"t"}, Required: true, Usage: "`NAME` of the element to raise the event at"},
					&cli.StringFlag{Name: "event", Aliases: []string{"e"}, Required: true, Usage: "routed event `NAME`, case insensitive"},
					&cli.StringFlag{Name: "key", Value: "Enter", Usage: "`KEY` for KeyDown and KeyUp"},
					&cli.StringFlag{Name: "text", Usage: "`TEXT` for TextInput"},
				),
				CustomHelpTemplate: fmt.Sprintf(`%s
EVENTS:
    %s

Pointer events are raised at the center of the target, so the deepest element
there is the source. Key, text and focus events focus the target first.
`, cli.CommandHelpTemplate, strings.Join(commands.EventNames(), ", ")),
			},
			{
				Name:         "watch",
				Usage:        "Lays the scene out again whenever the file changes and prints the difference",
				OnUsageError: usageErrorHandler,
				Action:       commands.Watch,
				ArgsUsage:    "SCENE",
				Flags: sceneFlags(
					&cli.StringFlag{Name: "metrics", Usage: "serve Prometheus metrics on `ADDRESS`, overrides metrics.address"},
				),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var out io.Writer = cmd.Root().Writer
	if len(fname) > 0 {
		f, cerr := os.Create(fname)
		if cerr != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, cerr)
		}
		defer func() {
			if er := f.Close(); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to close '%s': %w", fname, er))
			}
		}()
		out = f
	}

	cfg, kind := env.Cfg, "actual"
	if cmd.Bool("default") {
		cfg, kind = config.Default(), "default"
	}
	data, err := config.Dump(cfg)
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Debug("Outputting configuration", zap.String("state", kind), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
