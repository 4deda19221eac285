package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"accessinvites/internal/delivery/http/controllers"
	"accessinvites/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (string, error) {
	if token == "good" {
		return "user-1", nil
	}
	return "", errors.New("bad token")
}

type stubService struct {
	domain.InvitationService
	acceptedBy string
}

func (s *stubService) Accept(_ context.Context, code, userID string) (*domain.Invitation, error) {
	s.acceptedBy = userID
	return &domain.Invitation{InviteCode: code, Status: domain.InvitationStatusAccepted}, nil
}

func newTestRouter(svc domain.InvitationService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(RouterDeps{
		Logger:             logger,
		Invitations:        controllers.NewInvitationController(logger, svc),
		Verifier:           stubVerifier{},
		Metrics:            http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("metrics")) }),
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	})
}

func TestRouter_AuthenticatedRoute(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/invitations/code-1/accept", nil)
	req.Header.Set("Authorization", "Bearer good")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-1", svc.acceptedBy)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/invitations/code-1/accept", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, svc.acceptedBy)
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := newTestRouter(&stubService{})

	for path, want := range map[string]string{"/healthz": "ok", "/metrics": "metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, path)
		assert.Equal(t, want, rr.Body.String(), path)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodOptions, "/invitations", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}
