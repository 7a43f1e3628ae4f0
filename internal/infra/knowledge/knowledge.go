// Package knowledge loads the static club knowledge base used by the FAQ responder.
package knowledge

import (
	"bytes"
	_ "embed"
	"log/slog"
	"os"

	"aiclub/config"
	"aiclub/internal/domain/entity"
	"aiclub/internal/errors"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var defaultKnowledgeBase []byte

// Params defines the parameters required for loading the knowledge base
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New loads the knowledge base from the configured path, or the embedded
// default when no path is set.
func New(params Params) (*entity.KnowledgeBase, error) {
	if params.Config.KnowledgeBase == nil || params.Config.KnowledgeBase.Path == "" {
		return Default()
	}

	path := params.Config.KnowledgeBase.Path
	kb, err := Load(path)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Knowledge base loaded",
		slog.String("path", path),
		slog.Int("teams", len(kb.Teams)),
	)

	return kb, nil
}

// Default parses the embedded knowledge base.
func Default() (*entity.KnowledgeBase, error) {
	return Parse(defaultKnowledgeBase)
}

// Load reads a knowledge base from a YAML file.
func Load(path string) (*entity.KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read knowledge base %s", path)
	}

	return Parse(data)
}

// Parse decodes YAML into a knowledge base. Unknown keys are rejected.
func Parse(data []byte) (*entity.KnowledgeBase, error) {
	var kb entity.KnowledgeBase

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&kb); err != nil {
		return nil, errors.Wrap(err, "decode knowledge base")
	}
	if kb.Club.Name == "" {
		return nil, errors.New("knowledge base: club.name is required")
	}

	return &kb, nil
}
