package safe

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/jackc/pgx/v5"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// Rollback safely rolls back the transaction and logs error if any. Committed transactions are ignored.
func Rollback(ctx context.Context, tx pgx.Tx) {
	if tx != nil {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logging.From(ctx).Warn("Fail to rollback transaction", slog.Any("error", err))
		}
	}
}
