// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"aiclub/internal/domain/entity"
	"aiclub/internal/errors"
)

// ErrRoleRecordNotFound is returned when a uid has no role record.
var ErrRoleRecordNotFound = errors.New("role record not found")

// ErrRoleRecordExists is returned when creating a record for a uid that already has one.
var ErrRoleRecordExists = errors.New("role record already exists")

// RoleRepository persists UserRoleRecords keyed by uid.
type RoleRepository interface {
	// FindByUID retrieves the record of a uid.
	FindByUID(ctx context.Context, uid string) (*entity.UserRoleRecord, error)

	// Create writes a new record and fails with ErrRoleRecordExists if one is present.
	Create(ctx context.Context, record *entity.UserRoleRecord) error

	// Save overwrites the record of record.UID.
	Save(ctx context.Context, record *entity.UserRoleRecord) error
}
