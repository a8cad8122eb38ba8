package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/bodycomp/internal/config"
	"github.com/ChicagoDave/bodycomp/internal/logging"
	"github.com/ChicagoDave/bodycomp/internal/server"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	envPath    string
	cfg        *config.Config
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "bodycomp",
		Short:         "Body composition estimates with the U.S. Navy circumference method",
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.load()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a bodycomp YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.envPath, "env", ".env", "env file loaded before the config")

	rootCmd.AddCommand(calcCmd(a))
	rootCmd.AddCommand(runCmd(a))
	rootCmd.AddCommand(validateCmd(a))
	rootCmd.AddCommand(interactiveCmd(a))
	rootCmd.AddCommand(watchCmd(a))
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(serveCmd(a))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func (a *app) load() error {
	cfg, err := config.Load(a.configPath, a.envPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	_, err = logging.Setup(cfg.Logging)
	return err
}

func categoriesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the body fat and BMI category bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printCategories(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, markdown or json")
	return cmd
}

func serveCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP calculator (form, JSON API and metrics)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			srv := server.New(a.cfg, nil)
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port (overrides config)")
	return cmd
}
