package memory

import (
	"sync"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
)

// Repository is an in-memory implementation of AnalysisRepository and DeliveryRepository.
type Repository struct {
	mu         sync.RWMutex
	repos      map[types.RepositoryID]*model.Repository
	nameIndex  map[string]types.RepositoryID
	analyses   map[types.AnalysisID]*model.Analysis
	deliveries map[types.DeliveryID]*model.WebhookDelivery
}

var (
	_ interfaces.AnalysisRepository = (*Repository)(nil)
	_ interfaces.DeliveryRepository = (*Repository)(nil)
)

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		repos:      make(map[types.RepositoryID]*model.Repository),
		nameIndex:  make(map[string]types.RepositoryID),
		analyses:   make(map[types.AnalysisID]*model.Analysis),
		deliveries: make(map[types.DeliveryID]*model.WebhookDelivery),
	}
}
