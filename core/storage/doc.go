// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the three operations needed to publish
// the static pages tree: checking the bucket, creating it and uploading
// objects. Both AWS S3 and self-hosted MinIO instances are supported.
//
// The Client interface keeps publishing testable without a live bucket;
// see core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
