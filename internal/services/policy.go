package services

import (
	"context"
	"fmt"

	"accessinvites/internal/domain"
)

// PermissivePolicy authorizes every decline and cancel. It leaves the decision
// to whatever sits in front of the service.
type PermissivePolicy struct{}

func (PermissivePolicy) AuthorizeDecline(context.Context, *domain.Invitation, string) error { return nil }

func (PermissivePolicy) AuthorizeCancel(context.Context, *domain.Invitation, string) error { return nil }

// InviterCancelPolicy only lets the user who created an invitation cancel it.
// Declines are open to any caller holding the invite code, since invitations
// address an email rather than a user id.
type InviterCancelPolicy struct{}

func (InviterCancelPolicy) AuthorizeDecline(context.Context, *domain.Invitation, string) error {
	return nil
}

func (InviterCancelPolicy) AuthorizeCancel(_ context.Context, inv *domain.Invitation, userID string) error {
	if inv.InviterUserID == "" || inv.InviterUserID != userID {
		return fmt.Errorf("%w: only the inviter may cancel this invitation", domain.ErrForbidden)
	}
	return nil
}

// PolicyByName returns the invitation policy registered under name.
func PolicyByName(name string) (domain.InvitationPolicy, error) {
	switch name {
	case "", "permissive":
		return PermissivePolicy{}, nil
	case "inviter":
		return InviterCancelPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown invitation policy %q", name)
	}
}
