package impl

import (
	"context"
	"testing"

	"aiclub/internal/domain/entity"
	"aiclub/internal/errors"
	"aiclub/internal/infra/persistence/memory"
	mockRepo "aiclub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_List(t *testing.T) {
	store, err := memory.New(newDiscardLogger())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.PutTeam(ctx, &entity.Team{ID: "tech", Name: "Tech", Order: 2}))
	require.NoError(t, store.PutTeam(ctx, &entity.Team{ID: "board", Name: "Board", Order: 1,
		Members: []entity.TeamMember{{Name: "Ada", Position: "President"}}}))

	teams, err := NewTeamService(store.TeamRepo()).List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, "board", teams[0].ID)
	assert.Equal(t, "tech", teams[1].ID)
	assert.Equal(t, "President", teams[0].Members[0].Position)
}

func TestTeamService_ListError(t *testing.T) {
	teamRepo := mockRepo.NewMockTeamRepository(t)
	teamRepo.EXPECT().List(context.Background()).Return(nil, errors.New("unavailable"))

	_, err := NewTeamService(teamRepo).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list teams")
}
