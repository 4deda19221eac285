package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"accessinvites/internal/domain"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type invitationRepository struct {
	DB dbtx
	// lockRows makes invite code lookups take a row lock; only set inside a transaction.
	lockRows bool
}

// NewInvitationRepository returns a domain.InvitationStore backed by Postgres.
// Lookups through this store do not lock; use NewTxManager for the locking variant.
func NewInvitationRepository(db *sql.DB) domain.InvitationStore {
	return &invitationRepository{DB: db}
}

const invitationColumns = `id, invite_code, scope_type, scope_id, permission_type, status,
		inviter_user_id, invited_email, accepted_by_user_id, expires_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(row rowScanner) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	var inviter, email, acceptedBy sql.NullString
	err := row.Scan(
		&inv.ID, &inv.InviteCode, &inv.Scope.Type, &inv.Scope.ID, &inv.PermissionType, &inv.Status,
		&inviter, &email, &acceptedBy, &inv.ExpiresAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.InviterUserID = inviter.String
	inv.InvitedEmail = email.String
	if acceptedBy.Valid {
		id := acceptedBy.String
		inv.AcceptedByUserID = &id
	}
	return inv, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *invitationRepository) FindByInviteCode(ctx context.Context, code string) (*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE invite_code = $1
	`
	if r.lockRows {
		query += "FOR UPDATE"
	}
	inv, err := scanInvitation(r.DB.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) FindPending(ctx context.Context, scopeType domain.ScopeType, scopeID string) ([]*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE scope_type = $1 AND scope_id = $2 AND status = $3
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, scopeType, scopeID, domain.InvitationStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invs := make([]*domain.Invitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}

func (r *invitationRepository) Save(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (invite_code, scope_type, scope_id, permission_type, status,
			inviter_user_id, invited_email, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		inv.InviteCode, inv.Scope.Type, inv.Scope.ID, inv.PermissionType, inv.Status,
		nullString(inv.InviterUserID), nullString(inv.InvitedEmail), inv.ExpiresAt, inv.CreatedAt, inv.UpdatedAt,
	).Scan(&inv.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateInviteCode
		}
		return err
	}
	return nil
}

func (r *invitationRepository) Update(ctx context.Context, inv *domain.Invitation) error {
	query := `
		UPDATE invitations
		SET status = $2, accepted_by_user_id = $3, updated_at = $4
		WHERE id = $1
	`
	var acceptedBy sql.NullString
	if inv.AcceptedByUserID != nil {
		acceptedBy = sql.NullString{String: *inv.AcceptedByUserID, Valid: true}
	}
	result, err := r.DB.ExecContext(ctx, query, inv.ID, inv.Status, acceptedBy, inv.UpdatedAt)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
