package pages

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"ciclo-integrado/core/storage"

	"github.com/gofiber/fiber/v2/utils"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// PublishReport summarizes a publish run.
type PublishReport struct {
	Uploaded int
	Failures []FileError
}

// Publisher mirrors the pages tree into an object storage bucket.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewPublisher creates a new publisher.
func NewPublisher(client storage.Client, bucket, prefix string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Publish uploads every regular file under dir. Upload failures are counted
// and logged; the walk carries on with the remaining files.
func (p *Publisher) Publish(ctx context.Context, dir string) (PublishReport, error) {
	var report PublishReport

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return report, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}

	if err := p.ensureBucket(ctx); err != nil {
		return report, err
	}

	err = filepath.WalkDir(dir, func(filePath string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, filePath)
		if err != nil {
			return err
		}
		key := p.objectKey(rel)

		if err := p.upload(ctx, filePath, key); err != nil {
			p.logger.Error("Failed to upload page", zap.String("file", filePath), zap.String("key", key), zap.Error(err))
			report.Failures = append(report.Failures, FileError{Path: filePath, Err: err})
			return nil
		}

		p.logger.Debug("Uploaded page", zap.String("key", key))
		report.Uploaded++
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	p.logger.Info("Publish completed",
		zap.String("bucket", p.bucket),
		zap.Int("uploaded", report.Uploaded),
		zap.Int("failed", len(report.Failures)),
	)
	return report, nil
}

func (p *Publisher) ensureBucket(ctx context.Context) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	p.logger.Info("Creating missing bucket", zap.String("bucket", p.bucket))
	if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
	}
	return nil
}

func (p *Publisher) upload(ctx context.Context, filePath, key string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	_, err = p.client.PutObject(ctx, p.bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: utils.GetMIME(filepath.Ext(filePath)),
	})
	return err
}

// objectKey maps a path relative to the pages dir onto a slash separated key.
func (p *Publisher) objectKey(rel string) string {
	key := filepath.ToSlash(rel)
	if p.prefix == "" {
		return key
	}
	return path.Join(p.prefix, key)
}
