package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"ciclo-integrado/core/config"
	"ciclo-integrado/core/logger"
	"ciclo-integrado/feature/preview"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pages directory for local preview",
	Long: `Starts a static file server over the pages directory, opens the entry
page in the default browser and logs every request until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		out := cmd.OutOrStdout()
		preview.PrintBanner(out, cfg.Server, cfg.Server.Root)

		srv, err := preview.New(cfg.Server, logg)
		if err != nil {
			if errors.Is(err, preview.ErrRootNotFound) {
				root, _ := filepath.Abs(cfg.Server.Root)
				fmt.Fprintf(out, "❌ ERRO: Pasta '%s' não encontrada em %s\n", filepath.Base(root), root)
			}
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			logg.Error("Preview server failed", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
