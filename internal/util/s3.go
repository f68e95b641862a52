package util

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
)

func GetRecordDirectoryPath(recordId string) string {
	return fmt.Sprintf("records/%s", recordId)
}

func GetRecordExportDirectoryPath(recordId string) string {
	return GetRecordDirectoryPath(recordId) + "/exports"
}

func createBucketIfNotExists(ctx context.Context, s3 *minio.Client, bucketName string) error {
	exists, err := s3.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}

	if !exists {
		err = s3.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	return nil
}

type FileUploadOptions struct {
	// Add a prefix to the file name
	// For example, if the file name is "lista.pdf" and the prefix is "records/123/exports",
	// the resulting name will be "records/123/exports/lista.pdf"
	DirectoryPath string
	UniquePrefix  bool
	Bucket        string
	S3            *minio.Client
}

// uploads an in-memory file to S3
func UploadBytesToS3(ctx context.Context, name string, data []byte, fuo *FileUploadOptions) (minio.UploadInfo, error) {
	if err := createBucketIfNotExists(ctx, fuo.S3, fuo.Bucket); err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to create bucket: %w", err)
	}

	fileName := prepareFileName(filepath.Base(name), fuo)

	info, err := fuo.S3.PutObject(
		ctx,
		fuo.Bucket,
		fileName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: detectContentType(name, data),
		},
	)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return info, nil
}

func PresignedGetURL(ctx context.Context, s3 *minio.Client, bucket, key string) (string, error) {
	// 60min expiration time
	u, err := s3.PresignedGetObject(ctx, bucket, key, time.Minute*60, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Generates the final file name with uniqueness and prefix
func prepareFileName(originalName string, fuo *FileUploadOptions) string {
	fileName := originalName

	if fuo != nil {
		if fuo.UniquePrefix {
			fileName = AddUniquePrefixToFileName(originalName)
		}

		if fuo.DirectoryPath != "" {
			fileName = filepath.Join(fuo.DirectoryPath, fileName)
		}
	}

	return fileName
}

// Determines the content type by extension first, then by sniffing the content
func detectContentType(name string, data []byte) string {
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType != "" {
		return contentType
	}

	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}
