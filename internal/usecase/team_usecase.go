package usecase

import (
	"context"

	"aiclub/internal/domain/entity"
)

// TeamUsecase reads team rosters.
type TeamUsecase interface {
	List(ctx context.Context) ([]*entity.Team, error)
}
