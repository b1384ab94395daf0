package catalog_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/catalog"
)

type fakeS3 struct {
	objects map[string]string
	listErr error
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := &s3.ListObjectsV2Output{}
	for key := range f.objects {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(key)})
	}
	return out, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte(body)))}, nil
}

func TestS3Source(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("loads files under prefix", func(t *testing.T) {
		t.Parallel()
		client := &fakeS3{objects: map[string]string{
			"locales/en.json":        `{"hello": "Hello"}`,
			"locales/de/common.yaml": "hello: Hallo\n",
			"locales/":               "",
			"locales/notes.txt":      "ignored",
		}}

		set, err := catalog.NewS3SourceFromClient(client, "bucket", "locales/").Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, catalog.Messages{
			"en": {"hello": "Hello"},
			"de": {"common.hello": "Hallo"},
		}, set)
	})

	t.Run("maps access errors", func(t *testing.T) {
		t.Parallel()
		client := &fakeS3{listErr: &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}}
		_, err := catalog.NewS3SourceFromClient(client, "bucket", "").Load(ctx)
		require.ErrorIs(t, err, catalog.ErrAccessDenied)
	})

	t.Run("maps missing bucket", func(t *testing.T) {
		t.Parallel()
		client := &fakeS3{listErr: &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "gone"}}
		_, err := catalog.NewS3SourceFromClient(client, "bucket", "").Load(ctx)
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("requires bucket", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.NewS3Source(catalog.S3Config{})
		require.ErrorIs(t, err, catalog.ErrLoadFailed)
	})

	t.Run("builds client", func(t *testing.T) {
		t.Parallel()
		src, err := catalog.NewS3Source(catalog.S3Config{
			Bucket:    "intl",
			Region:    "us-east-1",
			AccessKey: "key",
			SecretKey: "secret",
			Endpoint:  "http://localhost:9000",
			PathStyle: true,
		})
		require.NoError(t, err)
		require.NotNil(t, src)
	})
}
