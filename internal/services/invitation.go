package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"accessinvites/internal/domain"
)

const (
	defaultInvitationTTL  = 7 * 24 * time.Hour
	defaultContextTimeout = 10 * time.Second
)

// InvitationServiceConfig holds tunables for the invitation service. Zero values
// fall back to defaults.
type InvitationServiceConfig struct {
	InvitationTTL  time.Duration
	ContextTimeout time.Duration
	// AcceptURLBase is prefixed to the invite code in invitation emails.
	AcceptURLBase string
	Now           func() time.Time
}

type invitationService struct {
	store          domain.InvitationStore
	txManager      domain.TxManager
	emailService   domain.EmailService
	policy         domain.InvitationPolicy
	recorder       domain.TransitionRecorder
	logger         *slog.Logger
	invitationTTL  time.Duration
	contextTimeout time.Duration
	acceptURLBase  string
	now            func() time.Time
}

// NewInvitationService creates an InvitationService. emailService may be nil, in
// which case no invitation emails are sent. A nil policy authorizes every
// decline and cancel; a nil recorder discards transitions.
func NewInvitationService(
	store domain.InvitationStore,
	txManager domain.TxManager,
	emailService domain.EmailService,
	policy domain.InvitationPolicy,
	recorder domain.TransitionRecorder,
	logger *slog.Logger,
	cfg InvitationServiceConfig,
) domain.InvitationService {
	if policy == nil {
		policy = PermissivePolicy{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.InvitationTTL <= 0 {
		cfg.InvitationTTL = defaultInvitationTTL
	}
	if cfg.ContextTimeout <= 0 {
		cfg.ContextTimeout = defaultContextTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &invitationService{
		store:          store,
		txManager:      txManager,
		emailService:   emailService,
		policy:         policy,
		recorder:       recorder,
		logger:         logger,
		invitationTTL:  cfg.InvitationTTL,
		contextTimeout: cfg.ContextTimeout,
		acceptURLBase:  strings.TrimSuffix(cfg.AcceptURLBase, "/"),
		now:            cfg.Now,
	}
}

func (s *invitationService) GetByInviteCode(ctx context.Context, code string) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	inv, err := s.store.FindByInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return inv, nil
}

func (s *invitationService) ListPending(ctx context.Context, scopeType domain.ScopeType, scopeID string) ([]*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	invs, err := s.store.FindPending(ctx, scopeType, scopeID)
	if err != nil {
		return nil, fmt.Errorf("list pending invitations: %w", err)
	}
	if invs == nil {
		invs = []*domain.Invitation{}
	}
	return invs, nil
}

func (s *invitationService) Create(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if inv == nil {
		return nil, domain.ErrInvalidInput
	}
	now := s.now()
	if inv.InviteCode == "" {
		inv.InviteCode = uuid.NewString()
	}
	if inv.Status == "" {
		inv.Status = domain.InvitationStatusPending
	}
	if inv.ExpiresAt.IsZero() {
		inv.ExpiresAt = now.Add(s.invitationTTL)
	}
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if err := s.store.Save(ctx, inv); err != nil {
		if errors.Is(err, domain.ErrDuplicateInviteCode) {
			return nil, err
		}
		return nil, fmt.Errorf("create invitation: %w", err)
	}

	if s.emailService != nil && inv.InvitedEmail != "" {
		data := &domain.InvitationEmailData{
			Email:      inv.InvitedEmail,
			InviteCode: inv.InviteCode,
			AcceptURL:  s.acceptURL(inv.InviteCode),
			ScopeType:  inv.Scope.Type,
			ScopeID:    inv.Scope.ID,
			Permission: inv.PermissionType,
			ExpiresAt:  inv.ExpiresAt,
		}
		// The invitation stays valid without the email; the code can be shared by other means.
		if err := s.emailService.SendInvitation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "invitation email not sent", "invite_code", inv.InviteCode, "err", err)
		}
	}
	return inv, nil
}

func (s *invitationService) acceptURL(code string) string {
	if s.acceptURLBase == "" {
		return ""
	}
	return s.acceptURLBase + "/" + code
}

func (s *invitationService) Accept(ctx context.Context, code, userID string) (*domain.Invitation, error) {
	return s.transition(ctx, code, domain.InvitationStatusAccepted,
		func(ctx context.Context, store domain.InvitationStore, inv *domain.Invitation, now time.Time) error {
			perm, err := domain.NewPermissionForScope(uuid.NewString(), userID, inv.PermissionType, inv.Scope, now)
			if err != nil {
				return err
			}
			if err := store.SavePermission(ctx, perm); err != nil {
				return fmt.Errorf("save permission: %w", err)
			}
			inv.AcceptedByUserID = &userID
			return nil
		})
}

func (s *invitationService) Decline(ctx context.Context, code, userID string) (*domain.Invitation, error) {
	return s.transition(ctx, code, domain.InvitationStatusDeclined,
		func(ctx context.Context, _ domain.InvitationStore, inv *domain.Invitation, _ time.Time) error {
			return s.policy.AuthorizeDecline(ctx, inv, userID)
		})
}

func (s *invitationService) Cancel(ctx context.Context, code, userID string) (*domain.Invitation, error) {
	return s.transition(ctx, code, domain.InvitationStatusCancelled,
		func(ctx context.Context, _ domain.InvitationStore, inv *domain.Invitation, _ time.Time) error {
			return s.policy.AuthorizeCancel(ctx, inv, userID)
		})
}

type transitionFunc func(ctx context.Context, store domain.InvitationStore, inv *domain.Invitation, now time.Time) error

// transition moves a pending invitation to status `to` inside one unit of work.
// An invitation found past its expiry is marked expired and that write is
// committed, while the caller receives an InvitationStatusUnexpectedError.
// Any error from apply or the store rolls back every write.
func (s *invitationService) transition(ctx context.Context, code string, to domain.InvitationStatus, apply transitionFunc) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var (
		result    *domain.Invitation
		statusErr error
		expired   *domain.Invitation
	)
	err := s.txManager.WithinTx(ctx, func(store domain.InvitationStore) error {
		result, statusErr, expired = nil, nil, nil

		inv, err := store.FindByInviteCode(ctx, code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("find invitation: %w", err)
		}

		now := s.now()
		if inv.Status == domain.InvitationStatusPending && domain.IsExpired(inv, now) {
			if err := s.markExpired(ctx, store, inv, now); err != nil {
				return err
			}
			expired = inv
		}
		if inv.Status != domain.InvitationStatusPending {
			statusErr = domain.NewInvitationStatusUnexpectedError(inv)
			return nil
		}

		if err := apply(ctx, store, inv, now); err != nil {
			return err
		}
		inv.Status = to
		inv.UpdatedAt = now
		if err := store.Update(ctx, inv); err != nil {
			return fmt.Errorf("update invitation: %w", err)
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	if expired != nil {
		s.recorder.RecordTransition(expired.Scope.Type, domain.InvitationStatusPending, domain.InvitationStatusExpired)
		s.logger.InfoContext(ctx, "invitation expired on access", "invite_code", code)
	}
	if statusErr != nil {
		return nil, statusErr
	}
	s.recorder.RecordTransition(result.Scope.Type, domain.InvitationStatusPending, to)
	return result, nil
}

// markExpired persists the derived expired status. It is kept separate from
// domain.IsExpired so the predicate stays free of side effects.
func (s *invitationService) markExpired(ctx context.Context, store domain.InvitationStore, inv *domain.Invitation, now time.Time) error {
	inv.Status = domain.InvitationStatusExpired
	inv.UpdatedAt = now
	if err := store.Update(ctx, inv); err != nil {
		return fmt.Errorf("mark invitation expired: %w", err)
	}
	return nil
}

func (s *invitationService) ListPermissions(ctx context.Context, userID string) ([]*domain.Permission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	perms, err := s.store.ListPermissionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	if perms == nil {
		perms = []*domain.Permission{}
	}
	return perms, nil
}

type noopRecorder struct{}

func (noopRecorder) RecordTransition(domain.ScopeType, domain.InvitationStatus, domain.InvitationStatus) {}
