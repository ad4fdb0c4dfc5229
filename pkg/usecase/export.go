package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/errutil"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
)

// exportAnalysis appends the analysis to the BigQuery audit table. The stored analysis is the source of
// truth, so failures are only reported.
func (x *UseCase) exportAnalysis(ctx context.Context, analysis *model.Analysis) {
	bq := x.clients.BigQuery()
	if bq == nil {
		return
	}

	schema, err := createOrUpdateBigQueryTable(ctx, bq)
	if err != nil {
		errutil.HandleError(ctx, "failed to prepare BigQuery table", err)
		return
	}

	if err := bq.Insert(ctx, schema, analysis.ToRecord(), analysis.ID.String()); err != nil {
		errutil.HandleError(ctx, "failed to export analysis", goerr.Wrap(err, "insert analysis record",
			goerr.V("analysis_id", analysis.ID),
		))
	}
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery) (bigquery.Schema, error) {
	schema, err := bqs.Infer(&model.AnalysisRecord{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer analysis schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
