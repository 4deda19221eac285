package services

import (
	"context"
	"errors"
	"testing"

	"accessinvites/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

type fakeRenderer struct {
	name string
	err  error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.name = templateName
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("renders invitation template and sends", func(t *testing.T) {
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		svc := NewEmailService(mailer, renderer)

		err := svc.SendInvitation(ctx, &domain.InvitationEmailData{Email: "new@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "invitation", renderer.name)
		assert.Equal(t, "new@example.com", mailer.to)
		assert.Equal(t, "subject", mailer.subject)
	})

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{})
		require.Error(t, svc.SendInvitation(ctx, nil))
	})

	t.Run("render failure is not sent", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, &fakeRenderer{err: errors.New("bad template")})
		require.Error(t, svc.SendInvitation(ctx, &domain.InvitationEmailData{Email: "new@example.com"}))
		assert.Empty(t, mailer.to)
	})

	t.Run("mailer failure is wrapped", func(t *testing.T) {
		boom := errors.New("ses down")
		svc := NewEmailService(&fakeMailer{err: boom}, &fakeRenderer{})
		err := svc.SendInvitation(ctx, &domain.InvitationEmailData{Email: "new@example.com"})
		require.ErrorIs(t, err, boom)
	})
}
