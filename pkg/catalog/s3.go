package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Config configures an S3Source. Endpoint and PathStyle target
// S3-compatible services such as MinIO.
type S3Config struct {
	Bucket    string `env:"INTL_S3_BUCKET"`
	Prefix    string `env:"INTL_S3_PREFIX" envDefault:"locales/"`
	Region    string `env:"INTL_S3_REGION" envDefault:"us-east-1"`
	AccessKey string `env:"INTL_S3_ACCESS_KEY"`
	SecretKey string `env:"INTL_S3_SECRET_KEY"`
	Endpoint  string `env:"INTL_S3_ENDPOINT"`
	PathStyle bool   `env:"INTL_S3_PATH_STYLE"`
}

// S3API is the part of *s3.Client the source needs.
type S3API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads catalog files stored under a key prefix, using the same
// layout as FSSource: {prefix}{locale}.ext or {prefix}{locale}/{namespace}.ext.
type S3Source struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Source creates an S3 client with static credentials.
func NewS3Source(cfg S3Config) (*S3Source, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", ErrLoadFailed)
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			if cfg.AccessKey != "" {
				o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
			}
		},
	}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return NewS3SourceFromClient(s3.New(s3.Options{}, opts...), cfg.Bucket, cfg.Prefix), nil
}

// NewS3SourceFromClient uses an existing client.
func NewS3SourceFromClient(client S3API, bucket, prefix string) *S3Source {
	return &S3Source{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Source) Load(ctx context.Context) (Messages, error) {
	set := make(Messages)

	pages := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			name := strings.TrimPrefix(key, s.prefix)
			if name == "" || strings.HasSuffix(name, "/") || !IsSupported(name) {
				continue
			}

			data, err := s.read(ctx, key)
			if err != nil {
				return nil, err
			}
			if err := addFile(set, name, data); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}

func (s *S3Source) read(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %v", ErrLoadFailed, key, err)
	}
	return data, nil
}

// wrapS3Error maps S3 failures to package sentinels. The AWS error is kept
// as text only.
func wrapS3Error(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}

	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %v", ErrLoadFailed, err)
}
