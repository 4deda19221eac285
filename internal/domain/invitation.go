package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ScopeType is the kind of resource an invitation or permission applies to.
type ScopeType string

const (
	ScopeTypeOrganization ScopeType = "organization"
	ScopeTypeWorkspace    ScopeType = "workspace"
)

// Valid reports whether t is one of the known scope types.
func (t ScopeType) Valid() bool {
	switch t {
	case ScopeTypeOrganization, ScopeTypeWorkspace:
		return true
	}
	return false
}

// InvitationStatus is the lifecycle state of an invitation.
type InvitationStatus string

const (
	InvitationStatusPending   InvitationStatus = "pending"
	InvitationStatusAccepted  InvitationStatus = "accepted"
	InvitationStatusDeclined  InvitationStatus = "declined"
	InvitationStatusCancelled InvitationStatus = "cancelled"
	InvitationStatusExpired   InvitationStatus = "expired"
)

// Terminal reports whether no operation may move an invitation out of s.
func (s InvitationStatus) Terminal() bool {
	return s != InvitationStatusPending
}

var (
	// ErrInvitationStatusUnexpected matches any InvitationStatusUnexpectedError via errors.Is.
	ErrInvitationStatusUnexpected = errors.New("invitation status unexpected")
	// ErrUnknownScopeType is returned when an invitation carries a scope type the
	// service cannot map to a permission. It indicates corrupted upstream data.
	ErrUnknownScopeType = errors.New("unknown scope type")
	// ErrDuplicateInviteCode is returned by the store when the invite code is already taken.
	ErrDuplicateInviteCode = errors.New("invite code already exists")
)

// Scope identifies the resource an invitation grants access to.
type Scope struct {
	Type ScopeType `json:"scope_type"`
	ID   string    `json:"scope_id"`
}

// Invitation grants a prospective user access to a scope once accepted.
// swagger:model Invitation
type Invitation struct {
	ID               string           `json:"id"`
	InviteCode       string           `json:"invite_code"`
	Scope            Scope            `json:"scope"`
	PermissionType   string           `json:"permission_type"`
	Status           InvitationStatus `json:"status"`
	InviterUserID    string           `json:"inviter_user_id,omitempty"`
	InvitedEmail     string           `json:"invited_email,omitempty"`
	AcceptedByUserID *string          `json:"accepted_by_user_id,omitempty"`
	ExpiresAt        time.Time        `json:"expires_at"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// IsExpired reports whether inv's expiry lies strictly before now. It does not
// look at or change the status.
func IsExpired(inv *Invitation, now time.Time) bool {
	return inv.ExpiresAt.Before(now)
}

// InvitationStatusUnexpectedError reports an invitation that is not actionable
// because it is no longer pending.
type InvitationStatusUnexpectedError struct {
	ScopeType ScopeType
	ScopeID   string
	Status    InvitationStatus
}

func (e *InvitationStatusUnexpectedError) Error() string {
	return fmt.Sprintf("invitation for %s %s is %s, expected %s",
		e.ScopeType, e.ScopeID, e.Status, InvitationStatusPending)
}

// Is lets errors.Is(err, ErrInvitationStatusUnexpected) match.
func (e *InvitationStatusUnexpectedError) Is(target error) bool {
	return target == ErrInvitationStatusUnexpected
}

// NewInvitationStatusUnexpectedError builds the diagnostic for inv's current state.
func NewInvitationStatusUnexpectedError(inv *Invitation) *InvitationStatusUnexpectedError {
	return &InvitationStatusUnexpectedError{
		ScopeType: inv.Scope.Type,
		ScopeID:   inv.Scope.ID,
		Status:    inv.Status,
	}
}

// InvitationStore defines storage operations for invitations and the
// permissions they grant.
type InvitationStore interface {
	FindByInviteCode(ctx context.Context, code string) (*Invitation, error)
	FindPending(ctx context.Context, scopeType ScopeType, scopeID string) ([]*Invitation, error)
	Save(ctx context.Context, inv *Invitation) error
	Update(ctx context.Context, inv *Invitation) error
	SavePermission(ctx context.Context, p *Permission) error
	ListPermissionsByUser(ctx context.Context, userID string) ([]*Permission, error)
}

// TxManager runs fn inside one transaction. The store passed to fn is bound to
// that transaction and locks invitation rows it reads by invite code.
// The transaction commits when fn returns nil and rolls back otherwise.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(store InvitationStore) error) error
}

// InvitationPolicy decides who may decline or cancel an invitation.
// A nil return authorizes the action; ErrForbidden should be returned otherwise.
type InvitationPolicy interface {
	AuthorizeDecline(ctx context.Context, inv *Invitation, userID string) error
	AuthorizeCancel(ctx context.Context, inv *Invitation, userID string) error
}

// TransitionRecorder observes status transitions performed by the service.
type TransitionRecorder interface {
	RecordTransition(scopeType ScopeType, from, to InvitationStatus)
}

// InvitationService defines the invitation lifecycle operations.
type InvitationService interface {
	GetByInviteCode(ctx context.Context, code string) (*Invitation, error)
	ListPending(ctx context.Context, scopeType ScopeType, scopeID string) ([]*Invitation, error)
	Create(ctx context.Context, inv *Invitation) (*Invitation, error)
	// Accept redeems the invitation for userID and grants its permission.
	Accept(ctx context.Context, code, userID string) (*Invitation, error)
	Decline(ctx context.Context, code, userID string) (*Invitation, error)
	Cancel(ctx context.Context, code, userID string) (*Invitation, error)
	ListPermissions(ctx context.Context, userID string) ([]*Permission, error)
}
