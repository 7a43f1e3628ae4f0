package knowledge

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"aiclub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	kb, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Artificial Intelligence Club", kb.Club.Name)
	assert.NotEmpty(t, kb.Club.JoinSteps)
	assert.NotEmpty(t, kb.Club.Email)
	assert.NotEmpty(t, kb.Teams)
	assert.Equal(t, "https://instagram.com/aiclub", kb.Club.Socials.Instagram)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown key", data: "club:\n  name: X\n  mascot: owl\n"},
		{name: "missing name", data: "club:\n  email: a@b.c\n"},
		{name: "empty document", data: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestNew_FromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("club:\n  name: Test Club\nteams:\n  - name: Core\n"), 0o600))

	kb, err := New(Params{
		Config: &config.Config{KnowledgeBase: &config.KnowledgeBaseConfig{Path: path}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.Equal(t, "Test Club", kb.Club.Name)
	require.Len(t, kb.Teams, 1)
	assert.Equal(t, "Core", kb.Teams[0].Name)

	_, err = New(Params{
		Config: &config.Config{KnowledgeBase: &config.KnowledgeBaseConfig{Path: filepath.Join(t.TempDir(), "missing.yaml")}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
