package auth

import (
	"testing"

	"aiclub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAuthState_SubscribeReceivesCurrentThenChanges(t *testing.T) {
	state := NewAuthState()

	var seen []*entity.Identity
	unsubscribe := state.Subscribe(func(identity *entity.Identity) {
		seen = append(seen, identity)
	})

	state.Set(&entity.Identity{UID: "u1"})
	state.Set(nil)

	assert.Len(t, seen, 3)
	assert.Nil(t, seen[0])
	assert.Equal(t, "u1", seen[1].UID)
	assert.Nil(t, seen[2])

	unsubscribe()
	unsubscribe()
	state.Set(&entity.Identity{UID: "u2"})
	assert.Len(t, seen, 3)
	assert.Equal(t, "u2", state.Current().UID)
}

func TestAuthState_CurrentIsACopy(t *testing.T) {
	state := NewAuthState()
	state.Set(&entity.Identity{UID: "u1", Email: "a@b.c"})

	current := state.Current()
	current.Email = "changed"

	assert.Equal(t, "a@b.c", state.Current().Email)
}
