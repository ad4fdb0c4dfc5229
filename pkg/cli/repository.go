package cli

import (
	"context"

	"github.com/ikshantshukla123/Codediff.ai/pkg/cli/config"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository/memory"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// store is the repository backend selected from the command line. One implementation serves both
// analyses and webhook deliveries.
type store interface {
	interfaces.AnalysisRepository
	interfaces.DeliveryRepository
}

// openStore prefers PostgreSQL, then Firestore. With neither configured it falls back to memory only when
// allowMemory is set. The returned function releases the backend.
func openStore(ctx context.Context, pg *config.Postgres, fs *config.Firestore, allowMemory bool) (store, func(), error) {
	switch {
	case pg.Enabled():
		repo, err := pg.NewRepository(ctx)
		if err != nil {
			return nil, nil, err
		}
		logging.From(ctx).Info("using PostgreSQL repository")
		return repo, repo.Close, nil

	case fs.Enabled():
		repo, err := fs.NewRepository(ctx)
		if err != nil {
			return nil, nil, err
		}
		logging.From(ctx).Info("using Firestore repository", "firestore", fs)
		return repo, func() { safe.Close(repo) }, nil

	case allowMemory:
		logging.From(ctx).Warn("no database is configured, analyses and deliveries are kept in memory only")
		return memory.New(), func() {}, nil

	default:
		return nil, nil, errNoStore
	}
}

var errNoStore = goerr.New("PostgreSQL or Firestore must be configured")
