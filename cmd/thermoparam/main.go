// thermoparam renders the parameters of a thermostat controller to one or
// more displays.
//
// The device, its parameters and the displays are described in a YAML
// config file (see configs/config.yaml).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nerrad567/thermoparam/internal/display"
	"github.com/nerrad567/thermoparam/internal/infrastructure/config"
	"github.com/nerrad567/thermoparam/internal/infrastructure/logging"
	"github.com/nerrad567/thermoparam/internal/parameter"
	"github.com/nerrad567/thermoparam/internal/thermostat"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand creates the thermoparam command tree.
func newRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "thermoparam",
		Short: "Render thermostat parameters to displays",
		Long: `thermoparam loads a thermostat controller's parameters from a YAML config
and renders every parameter to each configured display.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath, cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", getConfigPath(),
		"Path to config file (env THERMOPARAM_CONFIG)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "thermoparam %s (commit %s, built %s)\n", version, commit, date)
		},
	})

	return rootCmd
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation between displays
//   - configPath: Path to the YAML config file
//   - out: Destination for every display
//
// Returns:
//   - error: nil when every display rendered, or error describing failure
func run(ctx context.Context, configPath string, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logging.New(cfg.Logging, version)
	log.Info("configuration loaded", "path", configPath)

	dev, err := thermostat.FromConfig(cfg.Device, log)
	if err != nil {
		return fmt.Errorf("building device: %w", err)
	}
	log.Info("device ready", "device", dev.Name(), "parameters", len(dev.Parameters()))

	displays := make([]parameter.Display, 0, len(cfg.Displays))
	for _, dc := range cfg.Displays {
		d, err := display.New(dc, out)
		if err != nil {
			return fmt.Errorf("creating display %q: %w", dc.Name, err)
		}
		displays = append(displays, d)
	}

	for i, d := range displays {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := dev.Render(d); err != nil {
			return fmt.Errorf("display %q: %w", cfg.Displays[i].Name, err)
		}
		log.Debug("display rendered", "display", cfg.Displays[i].Name)
	}

	log.Info("render complete", "displays", len(displays))
	return nil
}

// getConfigPath returns the config file path from environment or default.
func getConfigPath() string {
	if path := os.Getenv("THERMOPARAM_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
