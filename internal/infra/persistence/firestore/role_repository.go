package firestore

import (
	"context"

	"aiclub/internal/domain/entity"
	"aiclub/internal/domain/repository"
	"aiclub/internal/errors"
	"aiclub/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
)

// roleRepository implements the domain.RoleRepository interface on the 'users' collection.
type roleRepository struct {
	accessor
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(client *fs.Client) repository.RoleRepository {
	return &roleRepository{accessor: accessor{client: client}}
}

func (repo *roleRepository) ref(uid string) *fs.DocumentRef {
	return repo.client.Collection(entity.CollectionUsers.String()).Doc(uid)
}

// FindByUID retrieves the role record stored under uid.
func (repo *roleRepository) FindByUID(ctx context.Context, uid string) (*entity.UserRoleRecord, error) {
	snap, err := repo.get(ctx, repo.ref(uid))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrRoleRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find role record")
	}

	var roleM model.RoleModel
	if err := snap.DataTo(&roleM); err != nil {
		return nil, errors.Wrap(err, "failed to decode role record")
	}
	roleM.UID = snap.Ref.ID

	return roleM.ToDomain(), nil
}

// Create writes a new role record.
func (repo *roleRepository) Create(ctx context.Context, record *entity.UserRoleRecord) error {
	if err := repo.create(ctx, repo.ref(record.UID), model.NewRoleModel(record)); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrRoleRecordExists
		}

		return errors.Wrap(err, "failed to create role record")
	}

	return nil
}

// Save overwrites the role record of record.UID.
func (repo *roleRepository) Save(ctx context.Context, record *entity.UserRoleRecord) error {
	if err := repo.set(ctx, repo.ref(record.UID), model.NewRoleModel(record)); err != nil {
		return errors.Wrap(err, "failed to save role record")
	}

	return nil
}
