package planet

import (
	"context"
	"log/slog"

	"planets-api/internal/shared/errors"
)

type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	logger.Debug("Initializing planet service")

	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetByID returns the first planet whose id matches, or nil when none does.
func (s *Service) GetByID(ctx context.Context, id int64) (*Planet, error) {
	planet, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errors.WrapExternal("planet store query failed", err)
	}

	if planet == nil {
		s.logger.Debug("Planet not found", "component", "planet_service", "planet_id", id)
	}

	return planet, nil
}
