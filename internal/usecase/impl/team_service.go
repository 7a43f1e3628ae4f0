package impl

import (
	"context"

	"aiclub/internal/domain/entity"
	"aiclub/internal/domain/repository"
	"aiclub/internal/errors"
	"aiclub/internal/usecase"
)

type teamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService is the constructor for teamService.
func NewTeamService(teamRepo repository.TeamRepository) usecase.TeamUsecase {
	return &teamService{teamRepo: teamRepo}
}

// List returns every team in display order.
func (srv *teamService) List(ctx context.Context) ([]*entity.Team, error) {
	teams, err := srv.teamRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list teams")
	}

	return teams, nil
}
