package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/bitable-schema/internal/adapter"
	"github.com/MKhiriev/bitable-schema/internal/app"
	"github.com/MKhiriev/bitable-schema/internal/config"
	"github.com/MKhiriev/bitable-schema/internal/logger"
	"github.com/MKhiriev/bitable-schema/internal/service"
	"github.com/MKhiriev/bitable-schema/models"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitBadInput = 2
)

const appName = "bitable-schema"

var errUsage = errors.New("invalid usage")

// run executes the CLI with args and maps the outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	rootCmd := newRootCmd(buildInfo, stdout, stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrMissingRequiredVars):
		fmt.Fprintln(stderr, err)
		return exitBadInput
	case errors.Is(err, service.ErrNoTables):
		fmt.Fprintln(stderr, app.MsgNoTableIDsProvided)
		return exitBadInput
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, "Error:", err)
		fmt.Fprint(stderr, rootCmd.UsageString())
		return exitBadInput
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return exitFailure
	}
}

func newRootCmd(buildInfo models.AppBuildInfo, stdout, stderr io.Writer) *cobra.Command {
	flags := config.DefaultFlags()

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "List Lark Bitable fields and types.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(flags, stderr)

			cfg, err := config.GetConfig(flags)
			if err != nil {
				return err
			}
			log.Debug().
				Str("vars", cfg.Output.VarsPath).
				Str("base_url", cfg.Lark.BaseURL).
				Bool("single_table", cfg.SingleTable()).
				Msg("configuration loaded")

			services := service.NewServices(adapter.NewLarkAdapter(cfg.Lark, log), stdout, log)
			return services.SchemaService.Run(cmd.Context(), cfg)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	rootCmd.Flags().StringVar(&flags.VarsPath, "vars", flags.VarsPath, "Path to env vars file.")
	rootCmd.Flags().StringVar(&flags.TableID, "table-id", flags.TableID, "Bitable table ID.")
	rootCmd.Flags().StringVar(&flags.AppToken, "app-token", flags.AppToken, "Bitable app token.")
	rootCmd.Flags().StringVar(&flags.TableKeys, "table-keys", flags.TableKeys, "Comma-separated env keys for table IDs.")
	rootCmd.Flags().StringVar(&flags.Output, "output", flags.Output, "Output markdown file.")
	rootCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", flags.Verbose, "Enable debug logging to stderr.")
	rootCmd.Flags().BoolVar(&flags.LogJSON, "log-json", flags.LogJSON, "Write stderr logs as JSON lines.")

	rootCmd.AddCommand(newVersionCmd(service.NewAppInfoService(buildInfo)))

	return rootCmd
}

// newLogger returns the stderr logger selected by --log-json and --verbose.
func newLogger(flags config.Flags, stderr io.Writer) *logger.Logger {
	if !flags.LogJSON {
		return logger.NewCLILogger(appName, stderr, flags.Verbose)
	}

	level := zerolog.InfoLevel
	if flags.Verbose {
		level = zerolog.DebugLevel
	}
	return logger.NewLogger(appName, stderr, level)
}
