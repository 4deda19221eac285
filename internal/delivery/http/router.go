package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "accessinvites/docs"
	"accessinvites/internal/delivery/http/controllers"
	"accessinvites/internal/delivery/http/middleware"
	"accessinvites/internal/domain"
)

// RouterDeps carries what NewRouter needs to mount the API.
type RouterDeps struct {
	Logger             *slog.Logger
	Invitations        *controllers.InvitationController
	Verifier           domain.TokenVerifier
	Metrics            http.Handler
	CORSAllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes, wrapped in
// request ID, logging and CORS middleware.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(deps.Verifier, deps.Logger)
	inv := deps.Invitations

	// Invitations
	mux.HandleFunc("POST /invitations", auth(inv.CreateInvitation))
	mux.HandleFunc("GET /invitations", auth(inv.ListPendingInvitations))
	mux.HandleFunc("GET /invitations/{inviteCode}", auth(inv.GetInvitation))
	mux.HandleFunc("POST /invitations/{inviteCode}/accept", auth(inv.AcceptInvitation))
	mux.HandleFunc("POST /invitations/{inviteCode}/decline", auth(inv.DeclineInvitation))
	mux.HandleFunc("POST /invitations/{inviteCode}/cancel", auth(inv.CancelInvitation))

	// Users
	mux.HandleFunc("GET /users/me/permissions", auth(inv.ListMyPermissions))

	// Ops
	mux.HandleFunc("GET /healthz", healthz)
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	handler := middleware.CORS(deps.CORSAllowedOrigins, mux)
	handler = middleware.LoggingMiddleware(deps.Logger, handler)
	return middleware.RequestID(handler)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
