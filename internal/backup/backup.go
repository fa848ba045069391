// Package backup ships copies of the SQLite database to object storage.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/bowerhall/sisters/internal/config"
	"github.com/bowerhall/sisters/internal/logger"
)

// Client wraps a MinIO client scoped to the backup bucket.
type Client struct {
	mc     *minio.Client
	bucket string
}

func NewClient(cfg config.BackupConfig) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return &Client{mc: mc, bucket: cfg.Bucket}, nil
}

// Init creates the backup bucket if it doesn't exist.
func (c *Client) Init(ctx context.Context) error {
	exists, err := c.mc.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", c.bucket, err)
	}

	if !exists {
		if err := c.mc.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", c.bucket, err)
		}
		logger.Info("bucket created", "bucket", c.bucket)
	}

	return nil
}

// BackupFile uploads the file at path under a timestamped object name
// and returns the name.
func (c *Client) BackupFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	name := fmt.Sprintf("%s.%s", filepath.Base(path), time.Now().UTC().Format("20060102-150405"))

	_, err = c.mc.PutObject(ctx, c.bucket, name, f, info.Size(), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", c.bucket, name, err)
	}

	logger.Debug("backup uploaded", "bucket", c.bucket, "name", name, "size", info.Size())
	return name, nil
}

// Prune removes backups older than keep days.
func (c *Client) Prune(ctx context.Context, keep int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -keep)
	removed := 0

	for obj := range c.mc.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return removed, fmt.Errorf("list %s: %w", c.bucket, obj.Err)
		}
		if obj.LastModified.After(cutoff) {
			continue
		}
		if err := c.mc.RemoveObject(ctx, c.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("delete %s/%s: %w", c.bucket, obj.Key, err)
		}
		removed++
	}

	return removed, nil
}

// Healthy checks if the object store is reachable.
func (c *Client) Healthy(ctx context.Context) bool {
	_, err := c.mc.BucketExists(ctx, c.bucket)
	return err == nil
}
