// Package storage is the object-store gateway. Blobs are content-addressed:
// the key is derived from the sha-256 of the content, so re-uploading
// identical bytes is idempotent and cheap.
package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"ai-doc-parser/constants"
	"ai-doc-parser/internal/common"
)

// Gateway is the narrow blob interface the pipeline depends on.
type Gateway interface {
	Put(ctx context.Context, key string, content []byte, contentType string) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

// HashContent returns the sha-256 of content as lowercase hex.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// BlobKey builds the deterministic object key for an upload:
// {namespace}/{content_hash}.{ext}. PBM contracts get their own prefix.
func BlobKey(kind constants.DocumentKind, hashHex, ext string) string {
	ns := "documents"
	if kind == constants.KindPBMContract {
		ns = "pbm_documents"
	}
	return fmt.Sprintf("%s/%s.%s", ns, hashHex, constants.NormalizeExt(ext))
}

// Config holds object-store connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type MinioGateway struct {
	client *minio.Client
	bucket string
}

func NewMinioGateway(cfg Config) (*MinioGateway, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinioGateway{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket creates the bucket if it doesn't exist
func (g *MinioGateway) EnsureBucket(ctx context.Context) error {
	exists, err := g.client.BucketExists(ctx, g.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := g.client.MakeBucket(ctx, g.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}
	return nil
}

// Put stores a blob and returns its URI. Writing the same key twice is
// harmless: content addressing guarantees the bytes are identical.
func (g *MinioGateway) Put(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	_, err := g.client.PutObject(ctx, g.bucket, key, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", common.WrapError(common.ErrStorageUnavailable, err.Error())
	}
	return fmt.Sprintf("s3://%s/%s", g.bucket, key), nil
}

// Get fetches a blob by key.
func (g *MinioGateway) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := g.client.GetObject(ctx, g.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, common.WrapError(common.ErrStorageUnavailable, err.Error())
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, common.WrapError(common.ErrStorageUnavailable, err.Error())
	}
	return data, nil
}
