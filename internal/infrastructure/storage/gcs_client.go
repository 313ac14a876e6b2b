package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"tiendapanel/pkg/errors"
	"tiendapanel/pkg/logger"
)

const publicURLPrefix = "https://storage.googleapis.com/"

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// UploadFile stores the file under <folder>/<unix-millis>_<random>.<ext> and
// returns its public URL. Key uniqueness is probabilistic (time + random);
// a collision would silently overwrite, which matches the source system.
func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	key := buildObjectKey(folder, filename)

	obj := c.client.Bucket(c.bucketName).Object(key)
	wc := obj.NewWriter(ctx)
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return "", errors.Asset("Failed to upload file", err)
	}
	if err := wc.Close(); err != nil {
		return "", errors.Asset("Failed to upload file", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", errors.Asset("Failed to make file public", err)
	}

	return c.PublicURL(key), nil
}

// DeleteFile removes the object behind a public URL. URLs that were never
// uploaded through this client (pasted external links) are a silent no-op,
// treated as "already absent".
func (c *CloudStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	key, ok := c.objectKey(fileURL)
	if !ok {
		logger.Debug("storage: ignoring foreign URL %s", fileURL)
		return nil
	}

	err := c.client.Bucket(c.bucketName).Object(key).Delete(ctx)
	if err == storage.ErrObjectNotExist {
		return nil
	}
	if err != nil {
		return errors.Asset("Failed to delete file", err)
	}

	return nil
}

func (c *CloudStorageClient) PublicURL(key string) string {
	return fmt.Sprintf("%s%s/%s", publicURLPrefix, c.bucketName, key)
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

func (c *CloudStorageClient) objectKey(fileURL string) (string, bool) {
	prefix := publicURLPrefix + c.bucketName + "/"
	if !strings.HasPrefix(fileURL, prefix) {
		return "", false
	}

	key := fileURL[len(prefix):]
	if key == "" {
		return "", false
	}
	return key, true
}

func buildObjectKey(folder, filename string) string {
	ext := path.Ext(filename)
	if ext == "" {
		ext = ".bin"
	}
	random := uuid.New().String()[:8]

	return fmt.Sprintf("%s/%d_%s%s", folder, time.Now().UnixMilli(), random, ext)
}
