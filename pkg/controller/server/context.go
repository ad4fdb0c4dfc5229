package server

import (
	"context"

	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
)

// DetachContext returns a background context carrying the logger, request ID and time function of ctx.
// Webhook handlers use it to start analyses that outlive the HTTP request.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(bgCtx, ctx)
}
