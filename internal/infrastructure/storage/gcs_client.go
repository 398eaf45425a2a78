package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"rentify/internal/domain/service"
)

// downloadTokenKey is the object metadata key the Firebase clients read
// to authorize ?alt=media downloads.
const downloadTokenKey = "firebaseStorageDownloadTokens"

type CloudStorageClient struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewCloudStorageClient wraps the Firebase app's default bucket handle.
func NewCloudStorageClient(bucket *storage.BucketHandle, bucketName string) *CloudStorageClient {
	return &CloudStorageClient{
		bucket:     bucket,
		bucketName: bucketName,
	}
}

func (c *CloudStorageClient) UploadPhoto(ctx context.Context, file io.Reader, contentType, filename string) (*service.UploadResult, error) {
	objectName := buildObjectName(filename)
	token := uuid.New().String()

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wc := c.bucket.Object(objectName).NewWriter(wctx)
	wc.ContentType = contentType
	wc.Metadata = map[string]string{
		downloadTokenKey: token,
	}

	if _, err := io.Copy(wc, file); err != nil {
		// Abort the write so no partial object is committed; a committed
		// partial would never reach the caller's cleanup path.
		cancel()
		wc.Close()
		return nil, fmt.Errorf("failed to copy photo to bucket: %v", err)
	}

	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %v", err)
	}

	return &service.UploadResult{
		URL:        c.publicURL(objectName, token),
		ObjectName: objectName,
		Token:      token,
	}, nil
}

func (c *CloudStorageClient) DeletePhoto(ctx context.Context, objectName string) error {
	if err := c.bucket.Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete photo: %v", err)
	}

	return nil
}

// buildObjectName keeps the upload's original filename, prefixed with a
// millisecond timestamp and a short uuid so simultaneous uploads of the
// same file cannot collide.
func buildObjectName(filename string) string {
	base := filepath.Base(filename)
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.New().String()[:8], base)
}

// The object name is a path segment of the download URL, so it needs
// percent-encoding; query escaping would turn spaces into literal '+'
// characters on the Firebase side.
func (c *CloudStorageClient) publicURL(objectName, token string) string {
	return fmt.Sprintf(
		"https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		c.bucketName, url.PathEscape(objectName), token,
	)
}
