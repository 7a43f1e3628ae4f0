package model

import (
	"time"

	"aiclub/internal/domain/entity"
)

// RoleModel mirrors a document of the 'users' collection, keyed by uid.
type RoleModel struct {
	UID       string    `firestore:"-" docstore:"uid"`
	Roles     []string  `firestore:"roles" docstore:"roles"`
	CreatedAt time.Time `firestore:"createdAt" docstore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" docstore:"updatedAt"`
}

// NewRoleModel converts a role record to its storage model.
func NewRoleModel(record *entity.UserRoleRecord) *RoleModel {
	return &RoleModel{
		UID:       record.UID,
		Roles:     record.Roles.ToStrings(),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// ToDomain converts the model to a role record. Unknown role strings are dropped
// and an empty role set reads as the default user role.
func (m *RoleModel) ToDomain() *entity.UserRoleRecord {
	roles := entity.RolesFromStrings(m.Roles)
	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleUser}
	}

	return &entity.UserRoleRecord{
		UID:       m.UID,
		Roles:     roles,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
