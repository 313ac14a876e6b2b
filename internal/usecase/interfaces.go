package usecase

import (
	"context"
	"io"
)

// FileStorage is the asset side of the remote store. A failed upload must
// not leave a partial reference behind: callers only persist the returned
// URL, and DeleteFile treats URLs it does not own as already absent.
type FileStorage interface {
	UploadFile(ctx context.Context, file io.Reader, filename, folder string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
}
