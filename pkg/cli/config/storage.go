package config

import (
	"context"
	"log/slog"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

type Storage struct {
	bucket types.GCSBucket
	prefix string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "diff-archive-bucket",
			Usage:       "Cloud Storage bucket to archive raw diffs (optional)",
			Category:    "Storage",
			Sources:     cli.EnvVars("CODEDIFF_DIFF_ARCHIVE_BUCKET"),
			Destination: (*string)(&x.bucket),
		},
		&cli.StringFlag{
			Name:        "diff-archive-prefix",
			Usage:       "Object name prefix of archived diffs",
			Category:    "Storage",
			Sources:     cli.EnvVars("CODEDIFF_DIFF_ARCHIVE_PREFIX"),
			Value:       "diffs",
			Destination: &x.prefix,
		},
	}
}

func (x *Storage) Enabled() bool {
	return x.bucket != ""
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Bucket", x.bucket),
		slog.String("Prefix", x.prefix),
	)
}

func (x *Storage) NewArchive(ctx context.Context) (*gcs.Archive, error) {
	return gcs.New(ctx, x.bucket, x.prefix)
}
