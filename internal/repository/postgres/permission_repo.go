package postgres

import (
	"context"
	"database/sql"

	"accessinvites/internal/domain"
)

func (r *invitationRepository) SavePermission(ctx context.Context, p *domain.Permission) error {
	query := `
		INSERT INTO permissions (id, user_id, permission_type, organization_id, workspace_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.UserID, p.PermissionType, nullStringPtr(p.OrganizationID), nullStringPtr(p.WorkspaceID), p.CreatedAt)
	return err
}

func (r *invitationRepository) ListPermissionsByUser(ctx context.Context, userID string) ([]*domain.Permission, error) {
	query := `
		SELECT id, user_id, permission_type, organization_id, workspace_id, created_at
		FROM permissions
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perms := make([]*domain.Permission, 0)
	for rows.Next() {
		p := &domain.Permission{}
		var orgID, wsID sql.NullString
		if err := rows.Scan(&p.ID, &p.UserID, &p.PermissionType, &orgID, &wsID, &p.CreatedAt); err != nil {
			return nil, err
		}
		if orgID.Valid {
			p.OrganizationID = &orgID.String
		}
		if wsID.Valid {
			p.WorkspaceID = &wsID.String
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
