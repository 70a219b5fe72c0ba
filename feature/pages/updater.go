package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrDirNotFound is returned when the pages directory does not exist.
var ErrDirNotFound = errors.New("pages directory not found")

// FileError records a page that could not be processed.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Report summarizes an updater run.
type Report struct {
	Attempted int
	Updated   int
	Failures  []FileError
}

// Updater injects the shared fragments into every page of a directory.
type Updater struct {
	extension string
	logger    *zap.Logger
	out       io.Writer
}

// NewUpdater creates an updater for files ending in extension.
// Progress lines are written to out.
func NewUpdater(extension string, logger *zap.Logger, out io.Writer) *Updater {
	if extension == "" {
		extension = ".html"
	}
	return &Updater{
		extension: extension,
		logger:    logger,
		out:       out,
	}
}

// Run processes the pages in dir one after another. A failure on one page is
// reported and counted, and the run moves on to the next page.
func (u *Updater) Run(ctx context.Context, dir string) (Report, error) {
	var report Report

	files, err := u.listPages(dir)
	if err != nil {
		return report, err
	}

	if len(files) == 0 {
		fmt.Fprintf(u.out, "Nenhum arquivo HTML encontrado em %s\n", dir)
		return report, nil
	}

	fmt.Fprintf(u.out, "Processando %d arquivos HTML...\n", len(files))

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		report.Attempted++
		name := filepath.Base(path)

		if err := u.ProcessFile(path); err != nil {
			fmt.Fprintf(u.out, "Erro ao processar %s: %v\n", path, err)
			fmt.Fprintf(u.out, "✗ %s\n", name)
			u.logger.Warn("Failed to update page", zap.String("file", path), zap.Error(err))
			report.Failures = append(report.Failures, FileError{Path: path, Err: err})
			continue
		}

		fmt.Fprintf(u.out, "✓ %s\n", name)
		report.Updated++
	}

	fmt.Fprintf(u.out, "\n✓ %d/%d arquivos processados com sucesso!\n", report.Updated, report.Attempted)
	u.logger.Info("Pages update completed",
		zap.Int("attempted", report.Attempted),
		zap.Int("updated", report.Updated),
		zap.Int("failed", len(report.Failures)),
	)

	return report, nil
}

// ProcessFile applies the injections to a single page and rewrites it in place.
func (u *Updater) ProcessFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read page: %w", err)
	}

	original := string(data)
	updated := Apply(original)

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	u.logger.Debug("Page processed", zap.String("file", path), zap.Bool("changed", updated != original))
	return nil
}

// listPages returns the directory entries named with the configured extension, in listing order.
func (u *Updater) listPages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), u.extension) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
