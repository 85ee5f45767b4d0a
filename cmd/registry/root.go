package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"magazine-registry/internal/config"
	"magazine-registry/internal/domain/entity"
	"magazine-registry/internal/observability/logging"
	"magazine-registry/internal/observability/tracing"
	"magazine-registry/internal/seed"
	regUC "magazine-registry/internal/usecase/registry"
)

// app holds what the sub-commands share once the root command has run its setup.
type app struct {
	cfgFile  string
	seedPath string
	trace    bool

	cfg    *config.AppConfig
	logger *slog.Logger
	svc    *regUC.Service
	tp     *sdktrace.TracerProvider
}

// Exit codes returned by the CLI.
const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
)

// execute runs the CLI with args and always shuts the tracer provider down,
// including when setup or the command fails.
func execute(args []string, stdout, stderr io.Writer) (err error) {
	a := &app{}
	root := newRootCmd(a, stdout, stderr)
	root.SetArgs(args)
	defer func() {
		err = errors.Join(err, a.shutdown(context.Background()))
	}()
	return root.Execute()
}

// exitCode maps an execute error to a process exit code. Datasets rejected
// by entity validation get their own code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case entity.IsValidationError(err):
		return exitValidation
	default:
		return exitFailure
	}
}

func newRootCmd(a *app, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "registry",
		Short: "Inspect an author, magazine and article registry",
		Long: `Load a YAML dataset of authors, magazines and articles into an in-memory
registry and print the derived queries.

Examples:
  # Full report for a dataset
  registry report --seed testdata/seed.yaml

  # Only the magazine with the most articles
  registry top-publisher --seed testdata/seed.yaml

  # Registry metrics in Prometheus text format
  registry metrics --seed testdata/seed.yaml`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (YAML)")
	root.PersistentFlags().StringVarP(&a.seedPath, "seed", "s", "", "dataset to load (overrides seed.path)")
	root.PersistentFlags().BoolVar(&a.trace, "trace", false, "write spans to stderr")

	root.AddCommand(
		newReportCmd(a),
		newTopPublisherCmd(a),
		newMetricsCmd(a),
	)
	return root
}

// setup loads the configuration, builds the logger and the registry and
// loads the seed dataset.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed.Path = a.seedPath
	}
	if a.trace {
		cfg.Trace.Enabled = true
	}
	a.cfg = cfg

	a.logger = logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)
	ctx := logging.WithLogger(cmd.Context(), a.logger)
	ctx = logging.NewOperationID(ctx)
	cmd.SetContext(ctx)

	if cfg.Trace.Enabled {
		tp, err := tracing.InitStdout(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		a.tp = tp
	}

	a.svc = regUC.NewInMemory()
	if cfg.Seed.Path == "" {
		return errors.New("no dataset given: use --seed or set seed.path")
	}
	if _, err := seed.LoadFile(ctx, a.svc, cfg.Seed.Path); err != nil {
		return err
	}
	return nil
}

func (a *app) shutdown(ctx context.Context) error {
	if a.tp == nil {
		return nil
	}
	tp := a.tp
	a.tp = nil
	if err := tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracer provider: %w", err)
	}
	return nil
}
