package service

import (
	"context"
	"io"
)

type UploadResult struct {
	URL        string
	ObjectName string
	Token      string
}

// PhotoStorage is the blob store adapter. Uploads return a publicly
// resolvable URL carrying an opaque download token.
type PhotoStorage interface {
	UploadPhoto(ctx context.Context, file io.Reader, contentType, filename string) (*UploadResult, error)
	DeletePhoto(ctx context.Context, objectName string) error
}
