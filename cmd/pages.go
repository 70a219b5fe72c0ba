package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"ciclo-integrado/core/config"
	"ciclo-integrado/core/logger"
	"ciclo-integrado/core/storage"
	"ciclo-integrado/feature/pages"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// pagesCmd groups the batch tools working on the pages directory
var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Batch tools for the HTML pages",
}

// updateCmd represents the pages update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Inject the shared stylesheet, script and footer into every page",
	Long: `Adds the global stylesheet link, the main script tag and the standard
footer to every HTML page that does not reference them yet. Pages are
rewritten in place; a failing page is reported and the run continues.`,
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

		u := pages.NewUpdater(cfg.Pages.Extension, logg, cmd.OutOrStdout())
		if _, err := u.Run(cmd.Context(), cfg.Pages.Dir); err != nil {
			if errors.Is(err, pages.ErrDirNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "Pasta %s não encontrada!\n", cfg.Pages.Dir)
				return nil
			}
			return err
		}
		return nil
	},
}

// unwrapSVGCmd represents the pages unwrap-svg command
var unwrapSVGCmd = &cobra.Command{
	Use:   "unwrap-svg [file...]",
	Short: "Remove icon font span wrappers around inline SVG icons",
	Long: `Replaces <span class="material-symbols-outlined"> wrappers that only
hold an inline <svg> with the <svg> itself. Without arguments the configured
target page inside the pages directory is cleaned.`,
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

		files := args
		if len(files) == 0 {
			files = []string{filepath.Join(cfg.Pages.Dir, cfg.Pages.SVGTarget)}
		}

		out := cmd.OutOrStdout()
		for _, file := range files {
			fmt.Fprintf(out, "📄 Carregando arquivo: %s\n", file)

			n, err := pages.UnwrapSVGFile(file)
			if err != nil {
				return fmt.Errorf("failed to clean %s: %w", file, err)
			}

			if n > 0 {
				fmt.Fprintf(out, "✓ %d wrappers removidos\n", n)
			} else {
				fmt.Fprintln(out, "⚠️ Nenhum wrapper de <span> encontrado")
			}
			logg.Info("SVG wrappers removed", zap.String("file", file), zap.Int("count", n))
		}

		fmt.Fprintln(out, "\n✅ Concluído!")
		return nil
	},
}

// publishCmd represents the pages publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the pages directory to the configured bucket",
	Args:  cobra.NoArgs,
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

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		p := pages.NewPublisher(client, cfg.Storage.Bucket, cfg.Pages.Prefix, logg)
		report, err := p.Publish(cmd.Context(), cfg.Pages.Dir)
		if err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n✓ %d arquivos publicados em %s\n", report.Uploaded, cfg.Storage.Bucket)
		if len(report.Failures) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %d arquivos falharam\n", len(report.Failures))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pagesCmd)
	pagesCmd.AddCommand(updateCmd, unwrapSVGCmd, publishCmd)
}
