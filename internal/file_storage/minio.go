package filestorage

import (
	"context"
	"strings"

	"github.com/comite-bacias/presenca/internal/config"
	"github.com/comite-bacias/presenca/internal/util"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

func NewMinioClient(cfg *config.MinioConfig) (*minio.Client, error) {
	return minio.New(cfg.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ACCESS_KEY, cfg.SECRET_KEY, ""),
		Secure: cfg.USE_SSL,
		Region: "us-east-1",
	})
}

// Archive keeps a copy of every generated PDF export in a bucket.
type Archive struct {
	s3     *minio.Client
	bucket string
	logger *zap.SugaredLogger
}

// NewArchive returns nil without error when MinIO is not configured.
func NewArchive(cfg *config.MinioConfig, logger *zap.SugaredLogger) (*Archive, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	s3, err := NewMinioClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Archive{s3: s3, bucket: cfg.BUCKET, logger: logger}, nil
}

// Record titles may contain "/", which would otherwise become a directory in the object key
func exportObjectName(filename string) string {
	return strings.ReplaceAll(filename, "/", "-")
}

// StoreExport uploads content under records/<id>/exports and returns a presigned download url.
func (a *Archive) StoreExport(ctx context.Context, recordID, filename string, content []byte) (string, error) {
	info, err := util.UploadBytesToS3(ctx, exportObjectName(filename), content, &util.FileUploadOptions{
		DirectoryPath: util.GetRecordExportDirectoryPath(recordID),
		UniquePrefix:  true,
		Bucket:        a.bucket,
		S3:            a.s3,
	})
	if err != nil {
		return "", err
	}

	a.logger.Debugf("Archived export %s (%d bytes)", info.Key, info.Size)
	return util.PresignedGetURL(ctx, a.s3, a.bucket, info.Key)
}
