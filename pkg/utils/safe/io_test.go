package safe_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/safe"
	"github.com/m-mizutani/gt"
	"github.com/pashagolub/pgxmock/v2"
)

func TestClose(t *testing.T) {
	t.Run("close valid reader", func(t *testing.T) {
		reader := io.NopCloser(bytes.NewReader([]byte("test")))
		safe.Close(reader) // Should not panic
	})

	t.Run("close nil reader", func(t *testing.T) {
		safe.Close(nil) // Should not panic
	})

	t.Run("close reader that returns error", func(t *testing.T) {
		safe.Close(&errorCloser{})
	})

	t.Run("close reader that returns EOF", func(t *testing.T) {
		safe.Close(&eofCloser{})
	})
}

func TestRollback(t *testing.T) {
	t.Run("rollback with nil transaction", func(t *testing.T) {
		safe.Rollback(context.Background(), nil) // Should not panic
	})

	t.Run("rollback open transaction", func(t *testing.T) {
		ctx := context.Background()
		pool := gt.R1(pgxmock.NewPool()).NoError(t)
		defer pool.Close()

		pool.ExpectBegin()
		pool.ExpectRollback()

		tx := gt.R1(pool.Begin(ctx)).NoError(t)
		safe.Rollback(ctx, tx)

		gt.NoError(t, pool.ExpectationsWereMet())
	})
}

type errorCloser struct{}

func (e *errorCloser) Close() error {
	return io.ErrUnexpectedEOF
}

type eofCloser struct{}

func (e *eofCloser) Close() error {
	return io.EOF
}
