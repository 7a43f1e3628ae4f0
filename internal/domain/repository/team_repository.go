package repository

import (
	"context"

	"aiclub/internal/domain/entity"
)

// TeamRepository reads team rosters.
type TeamRepository interface {
	// List retrieves every team ordered by its order field.
	List(ctx context.Context) ([]*entity.Team, error)
}
