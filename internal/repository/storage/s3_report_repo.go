package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	cfg "github.com/dafibh/budget-planner/internal/config"
	"github.com/google/uuid"
)

// ReportRepository archives exported reports
type ReportRepository interface {
	Archive(ctx context.Context, fileName string, data []byte, contentType string) (string, error)
	PresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error)
}

// Ensure S3ReportRepository implements ReportRepository
var _ ReportRepository = (*S3ReportRepository)(nil)

// S3ReportRepository implements ReportRepository using AWS S3
type S3ReportRepository struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	now       func() time.Time
}

// NewS3ReportRepository creates a new S3 report repository
func NewS3ReportRepository(ctx context.Context, s3cfg cfg.S3Config) (*S3ReportRepository, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(s3cfg.Region),
	}

	// Static credentials when given, otherwise the default AWS chain
	if s3cfg.AccessKeyID != "" && s3cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3cfg.AccessKeyID, s3cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO
		}
	})

	repo := &S3ReportRepository{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    s3cfg.Bucket,
		now:       time.Now,
	}

	if err := repo.ensureBucket(ctx); err != nil {
		return nil, err
	}

	return repo, nil
}

// ensureBucket creates the private bucket when it does not exist yet
func (r *S3ReportRepository) ensureBucket(ctx context.Context) error {
	_, err := r.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(r.bucket),
	})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("failed to check report bucket: %w", err)
	}

	if _, err := r.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(r.bucket),
	}); err != nil {
		return fmt.Errorf("failed to create report bucket: %w", err)
	}
	return nil
}

// Archive stores an exported report and returns its object path
func (r *S3ReportRepository) Archive(ctx context.Context, fileName string, data []byte, contentType string) (string, error) {
	objectPath := ReportObjectPath(r.now(), uuid.New(), fileName)

	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(r.bucket),
		Key:                aws.String(objectPath),
		Body:               bytes.NewReader(data),
		ContentType:        aws.String(contentType),
		ContentLength:      aws.Int64(int64(len(data))),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", fileName)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive report: %w", err)
	}

	return objectPath, nil
}

// PresignedURL returns a temporary download link for an archived report
func (r *S3ReportRepository) PresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error) {
	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(objectPath),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign report URL: %w", err)
	}
	return req.URL, nil
}

// ReportObjectPath builds the archive key: reports/YYYY/MM/<id>-<fileName>
func ReportObjectPath(t time.Time, id uuid.UUID, fileName string) string {
	return path.Join("reports", t.Format("2006"), t.Format("01"), id.String()+"-"+path.Base(fileName))
}
