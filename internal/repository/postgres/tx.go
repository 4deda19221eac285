package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"accessinvites/internal/domain"
)

type txManager struct {
	DB *sql.DB
}

// NewTxManager returns a domain.TxManager that runs units of work in a
// read committed Postgres transaction. Invite code lookups inside the unit of
// work use SELECT ... FOR UPDATE, so concurrent writers on one invitation queue.
func NewTxManager(db *sql.DB) domain.TxManager {
	return &txManager{DB: db}
}

func (m *txManager) WithinTx(ctx context.Context, fn func(store domain.InvitationStore) error) error {
	tx, err := m.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	rollbackWith := func(cause error) error {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("%w: rollback: %v", cause, rollbackErr)
		}
		return cause
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&invitationRepository{DB: tx, lockRows: true}); err != nil {
		return rollbackWith(err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
