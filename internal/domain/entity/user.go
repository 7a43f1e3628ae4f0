// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Identity is an authenticated principal as reported by the identity provider.
type Identity struct {
	UID         string `json:"uid"`                   // Provider-assigned user id.
	Email       string `json:"email"`                 // Sign-in email.
	DisplayName string `json:"displayName,omitempty"` // Optional display name.
}

// UserRoleRecord stores the roles of one identity. Stored under the uid as document id.
type UserRoleRecord struct {
	UID       string    // The identity this record belongs to.
	Roles     Roles     // Granted roles. Never empty once written.
	CreatedAt time.Time // Timestamp of when the record was created.
	UpdatedAt time.Time // Timestamp of the last role change.
}

// NewUserRoleRecord builds the default record written on first admin login.
func NewUserRoleRecord(uid string, now time.Time) *UserRoleRecord {
	return &UserRoleRecord{
		UID:       uid,
		Roles:     Roles{RoleUser},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin reports whether the record grants the admin role.
func (r *UserRoleRecord) IsAdmin() bool {
	return r != nil && r.Roles.Contains(RoleAdmin)
}

// DocumentID implements Document.
func (r *UserRoleRecord) DocumentID() string {
	return r.UID
}

// FieldValue implements Document.
func (r *UserRoleRecord) FieldValue(field string) (any, bool) {
	switch field {
	case "uid":
		return r.UID, true
	case "createdAt":
		return r.CreatedAt, !r.CreatedAt.IsZero()
	case "updatedAt":
		return r.UpdatedAt, !r.UpdatedAt.IsZero()
	default:
		return nil, false
	}
}
