package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// UploadPrefix is the bucket folder catalogs are uploaded into
const UploadPrefix = "catalogs/"

// Upload describes a catalog object stored in the bucket
type Upload struct {
	Name    string
	Size    int64
	Updated time.Time
}

// ObjectName returns the bucket object name for a local catalog file
func ObjectName(localPath string) string {
	return UploadPrefix + path.Base(strings.ReplaceAll(localPath, "\\", "/"))
}

func newStorageClient(ctx context.Context) (*storage.Client, error) {
	client, err := storage.NewClient(ctx, option.WithUserAgent("video-catalog"))
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return client, nil
}

// UploadCatalog uploads JSON data to bucket under the given object name
func UploadCatalog(ctx context.Context, bucketName, object string, data []byte) error {
	client, err := newStorageClient(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Printf("Warning: error closing storage client: %v", err)
		}
	}()

	writer := client.Bucket(bucketName).Object(object).NewWriter(ctx)
	writer.ContentType = "application/json"
	writer.CacheControl = "no-cache"

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("write object %s: %w", object, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close object %s: %w", object, err)
	}

	log.Printf("Uploaded gs://%s/%s (%s)", bucketName, object, FormatSize(int64(len(data))))
	return nil
}

// ListUploads returns catalogs under UploadPrefix, newest first
func ListUploads(ctx context.Context, bucketName string) ([]Upload, error) {
	client, err := newStorageClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	uploads := []Upload{}
	it := client.Bucket(bucketName).Objects(ctx, &storage.Query{Prefix: UploadPrefix})
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		if !strings.HasSuffix(attrs.Name, ".json") {
			continue
		}
		uploads = append(uploads, Upload{
			Name:    attrs.Name,
			Size:    attrs.Size,
			Updated: attrs.Updated,
		})
	}

	sort.Slice(uploads, func(i, j int) bool {
		return uploads[i].Updated.After(uploads[j].Updated)
	})

	return uploads, nil
}

// FormatSize converts bytes to a human-readable format
func FormatSize(bytes int64) string {
	const (
		KB int64 = 1024
		MB       = KB * 1024
		GB       = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
