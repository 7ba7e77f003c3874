// Command emojisnap fetches the current Emojitracker rankings and writes them
// out as a Go source file declaring a slice literal.
//
// Usage:
//
//	emojisnap > rankings.go
//	emojisnap -c emojisnap.yaml -o snapshot.go
//
// Configuration is layered: defaults, then the YAML file given by -c or
// $EMOJISNAP_CONFIG, then EMOJISNAP_* environment variables.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/emojisnap/internal/adapters/http/fetcher"
	"github.com/okian/emojisnap/internal/app"
	"github.com/okian/emojisnap/internal/config"
	"github.com/okian/emojisnap/internal/emit"
	"github.com/okian/emojisnap/internal/render"
	"github.com/okian/emojisnap/pkg/logger"
	"github.com/okian/emojisnap/pkg/metrics"
	"github.com/spf13/cobra"
)

const outputFileMode = 0o644

type flags struct {
	output string
	config string
}

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and returns the process exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "emojisnap: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "emojisnap",
		Short: "Generate a Go snapshot of the Emojitracker rankings",
		Long: `emojisnap downloads the Emojitracker rankings once and writes a gofmt-ed
Go file declaring them as a slice literal, in the order the API returned them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the generated file here instead of stdout")
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "YAML config file (default $"+config.EnvConfigFile+")")
	return cmd
}

func run(ctx context.Context, f flags, stdout, stderr io.Writer) error {
	// Initialize logging; stdout is reserved for the generated file.
	if err := logger.InitWriter(stderr); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx, f.config)
	if err != nil {
		return err
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc, err := newService(cfg, log)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	_, runErr := svc.Run(ctx, &buf)
	if runErr == nil {
		runErr = writeOutput(f.output, buf.Bytes(), stdout)
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.Default().WriteTextfile(cfg.MetricsTextfile); err != nil {
			log.Warn(ctx, "metrics textfile not written", logger.String("path", cfg.MetricsTextfile), logger.Error(err))
		}
	}
	return runErr
}

func newService(cfg *config.Config, log logger.Logger) (*app.Service, error) {
	emitter, err := emit.New(
		emit.WithPackage(cfg.Package),
		emit.WithTypeName(cfg.TypeName),
		emit.WithVarName(cfg.VarName),
		emit.WithAccessor(cfg.Accessor),
	)
	if err != nil {
		return nil, err
	}

	return app.New(
		app.WithSource(cfg.SourceURL),
		app.WithFetcher(fetcher.New(
			fetcher.WithTimeout(cfg.FetchTimeout()),
			fetcher.WithLogger(log.Named("fetcher")),
		)),
		app.WithRenderer(render.New(
			render.WithExportedFields(cfg.ExportedFields),
			render.WithASCIIOnly(cfg.ASCIIOnly),
		)),
		app.WithEmitter(emitter),
		app.WithLogger(log.Named("generator")),
		app.WithMetrics(metrics.Default()),
	)
}

func writeOutput(path string, src []byte, stdout io.Writer) error {
	if path == "" {
		if _, err := stdout.Write(src); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, src, outputFileMode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
