package config

import (
	"context"
	"log/slog"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra/bq"
	"github.com/urfave/cli/v3"
)

type BigQuery struct {
	projectID types.GoogleProjectID
	datasetID types.BQDatasetID
	tableID   types.BQTableID
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID for the analysis audit table",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("CODEDIFF_BIGQUERY_PROJECT_ID"),
			Destination: (*string)(&x.projectID),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("CODEDIFF_BIGQUERY_DATASET_ID"),
			Destination: (*string)(&x.datasetID),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("CODEDIFF_BIGQUERY_TABLE_ID"),
			Value:       "analyses",
			Destination: (*string)(&x.tableID),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != "" && x.datasetID != ""
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.Any("DatasetID", x.datasetID),
		slog.Any("TableID", x.tableID),
	)
}

// NewClient returns nil without error when BigQuery is not configured.
func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if !x.Enabled() {
		return nil, nil
	}

	client, err := bq.New(ctx, x.projectID, x.datasetID, x.tableID)
	if err != nil {
		return nil, err
	}
	return client, nil
}
