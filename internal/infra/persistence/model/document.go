package model

import (
	"aiclub/internal/domain/entity"
	"aiclub/internal/errors"
)

// DecodeDocument decodes one stored document of collection into its domain form.
// decode fills the model passed to it; a non-empty id is stamped afterwards.
func DecodeDocument(collection entity.Collection, id string, decode func(dst any) error) (entity.Document, error) {
	if kind, ok := collection.Kind(); ok {
		doc := NewContentDocument(kind)
		if err := decode(doc); err != nil {
			return nil, errors.Wrapf(err, "decode %s/%s", collection, id)
		}
		if id != "" {
			doc.Base().ID = id
		}

		return doc.ToDomain(), nil
	}

	switch collection {
	case entity.CollectionTeams:
		var m TeamModel
		if err := decode(&m); err != nil {
			return nil, errors.Wrapf(err, "decode %s/%s", collection, id)
		}
		if id != "" {
			m.ID = id
		}

		return m.ToDomain(), nil
	case entity.CollectionUsers:
		var m RoleModel
		if err := decode(&m); err != nil {
			return nil, errors.Wrapf(err, "decode %s/%s", collection, id)
		}
		if id != "" {
			m.UID = id
		}

		return m.ToDomain(), nil
	default:
		return nil, errors.Errorf("unknown collection %q", collection)
	}
}
