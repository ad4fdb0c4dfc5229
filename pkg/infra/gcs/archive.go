package gcs

import (
	"context"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

// Archive stores raw diffs as objects in a Cloud Storage bucket.
type Archive struct {
	client *storage.Client
	bucket types.GCSBucket
	prefix string
}

var _ interfaces.DiffArchive = (*Archive)(nil)

func New(ctx context.Context, bucket types.GCSBucket, prefix string, options ...option.ClientOption) (*Archive, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket is empty")
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client", goerr.V("bucket", bucket))
	}

	return &Archive{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

// ObjectName joins prefix and key into an object name.
func ObjectName(prefix, key string) string {
	return path.Join(strings.Trim(prefix, "/"), strings.TrimLeft(key, "/"))
}

// Put implements interfaces.DiffArchive and returns a gs:// URI of the written object.
func (x *Archive) Put(ctx context.Context, key string, data []byte) (string, error) {
	name := ObjectName(x.prefix, key)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := x.client.Bucket(x.bucket.String()).Object(name).NewWriter(ctx)
	w.ContentType = "text/x-diff; charset=utf-8"

	if _, err := w.Write(data); err != nil {
		// Canceling the context aborts the upload.
		cancel()
		_ = w.Close()
		return "", goerr.Wrap(err, "failed to write diff object",
			goerr.V("bucket", x.bucket),
			goerr.V("object", name),
		)
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to close diff object",
			goerr.V("bucket", x.bucket),
			goerr.V("object", name),
		)
	}

	return "gs://" + x.bucket.String() + "/" + name, nil
}

func (x *Archive) Close() error {
	return x.client.Close()
}
