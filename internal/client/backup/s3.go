package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// objectAPI is the subset of the S3 client used by S3Sink.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3Client = func(cfg aws.Config, optFns ...func(*s3.Options)) objectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // empty for AWS itself
	AccessKey string
	SecretKey string
}

// S3Sink keeps backups as objects in a bucket. With an endpoint set it
// talks path-style to S3-compatible storage such as MinIO.
type S3Sink struct {
	bucket string
	api    objectAPI
}

func NewS3Sink(ctx context.Context, c S3Config) (*S3Sink, error) {
	if c.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(c.Region)}
	if c.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	api := newS3Client(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Sink{bucket: c.Bucket, api: api}, nil
}

func (s *S3Sink) Put(ctx context.Context, name string, data []byte) (string, error) {
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, name, err)
	}
	return "s3://" + s.bucket + "/" + name, nil
}

func (s *S3Sink) Get(ctx context.Context, name string) ([]byte, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, name, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", s.bucket, name, err)
	}
	return data, nil
}

var _ Sink = (*S3Sink)(nil)
