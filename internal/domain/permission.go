package domain

import (
	"fmt"
	"time"
)

// Permission grants a user an access level over exactly one organization or workspace.
// swagger:model Permission
type Permission struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	PermissionType string    `json:"permission_type"`
	OrganizationID *string   `json:"organization_id,omitempty"`
	WorkspaceID    *string   `json:"workspace_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewPermissionForScope builds the permission an accepted invitation grants.
// Exactly one of OrganizationID or WorkspaceID is set. An unrecognized scope
// type returns ErrUnknownScopeType.
func NewPermissionForScope(id, userID, permissionType string, scope Scope, createdAt time.Time) (*Permission, error) {
	p := &Permission{
		ID:             id,
		UserID:         userID,
		PermissionType: permissionType,
		CreatedAt:      createdAt,
	}
	scopeID := scope.ID
	switch scope.Type {
	case ScopeTypeOrganization:
		p.OrganizationID = &scopeID
	case ScopeTypeWorkspace:
		p.WorkspaceID = &scopeID
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScopeType, scope.Type)
	}
	return p, nil
}
