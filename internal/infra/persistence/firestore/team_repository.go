package firestore

import (
	"context"

	"aiclub/internal/domain/entity"
	"aiclub/internal/domain/repository"
	"aiclub/internal/errors"
	"aiclub/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
)

type teamRepository struct {
	client *fs.Client
}

// NewTeamRepository is the constructor for teamRepository.
func NewTeamRepository(client *fs.Client) repository.TeamRepository {
	return &teamRepository{client: client}
}

// List retrieves every team ordered by its order field.
func (repo *teamRepository) List(ctx context.Context) ([]*entity.Team, error) {
	snaps, err := repo.client.Collection(entity.CollectionTeams.String()).OrderBy("order", fs.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list teams")
	}

	teams := make([]*entity.Team, 0, len(snaps))
	for _, snap := range snaps {
		var teamM model.TeamModel
		if err := snap.DataTo(&teamM); err != nil {
			return nil, errors.Wrapf(err, "failed to decode team %s", snap.Ref.ID)
		}
		teamM.ID = snap.Ref.ID
		teams = append(teams, teamM.ToDomain())
	}

	return teams, nil
}
