package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"accessinvites/internal/delivery/http/helpers"
	"accessinvites/internal/delivery/http/middleware"
	"accessinvites/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// CreateInvitationRequest is the request body for POST /invitations. The invite
// code, status and timestamps are server-generated.
type CreateInvitationRequest struct {
	ScopeType      domain.ScopeType `json:"scope_type"`
	ScopeID        string           `json:"scope_id"`
	PermissionType string           `json:"permission_type"`
	InvitedEmail   string           `json:"invited_email"`
	ExpiresAt      *time.Time       `json:"expires_at"`
}

// Validate implements Validator.
func (c CreateInvitationRequest) Validate() []string {
	var errs []string
	if !c.ScopeType.Valid() {
		errs = append(errs, "scope_type must be organization or workspace")
	}
	if c.ScopeID == "" {
		errs = append(errs, "scope_id is required")
	}
	if c.PermissionType == "" {
		errs = append(errs, "permission_type is required")
	}
	if c.InvitedEmail != "" && !emailRegex.MatchString(c.InvitedEmail) {
		errs = append(errs, "invited_email is not a valid email")
	}
	return errs
}

// ListPendingQuery holds the query parameters of GET /invitations.
type ListPendingQuery struct {
	ScopeType domain.ScopeType
	ScopeID   string
}

// Validate implements Validator.
func (q ListPendingQuery) Validate() []string {
	var errs []string
	if !q.ScopeType.Valid() {
		errs = append(errs, "scope_type must be organization or workspace")
	}
	if q.ScopeID == "" {
		errs = append(errs, "scope_id is required")
	}
	return errs
}

// InvitationSuccessResponse is the success envelope for endpoints returning one invitation.
type InvitationSuccessResponse struct {
	Data  *domain.Invitation `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// InvitationListSuccessResponse is the success envelope for GET /invitations.
type InvitationListSuccessResponse struct {
	Data  []*domain.Invitation `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// PermissionListSuccessResponse is the success envelope for GET /users/me/permissions.
type PermissionListSuccessResponse struct {
	Data  []*domain.Permission `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateInvitation godoc
// @Summary Create an invitation
// @Description Creates a pending invitation to an organization or workspace. The caller is recorded as the inviter. When invited_email is set an invitation email is sent; expires_at defaults to the configured TTL.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invitation body CreateInvitationRequest true "Invitation data"
// @Success 201 {object} controllers.InvitationSuccessResponse "data contains the created invitation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations [post]
func (c *InvitationController) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	var req CreateInvitationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	inv := &domain.Invitation{
		Scope:          domain.Scope{Type: req.ScopeType, ID: req.ScopeID},
		PermissionType: req.PermissionType,
		InviterUserID:  userID,
		InvitedEmail:   req.InvitedEmail,
	}
	if req.ExpiresAt != nil {
		inv.ExpiresAt = *req.ExpiresAt
	}
	created, err := c.Service.Create(r.Context(), inv)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListPendingInvitations godoc
// @Summary List pending invitations of a scope
// @Description Returns the pending invitations of exactly one organization or workspace, newest first.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param scope_type query string true "organization or workspace"
// @Param scope_id query string true "Scope ID"
// @Success 200 {object} controllers.InvitationListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations [get]
func (c *InvitationController) ListPendingInvitations(w http.ResponseWriter, r *http.Request) {
	q := ListPendingQuery{
		ScopeType: domain.ScopeType(r.URL.Query().Get("scope_type")),
		ScopeID:   r.URL.Query().Get("scope_id"),
	}
	if !helpers.ValidateQuery(w, q) {
		return
	}
	invs, err := c.Service.ListPending(r.Context(), q.ScopeType, q.ScopeID)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, invs)
}

// GetInvitation godoc
// @Summary Get an invitation by invite code
// @Description Looks up an invitation by its invite code. The lookup never changes the invitation.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param inviteCode path string true "Invite code"
// @Success 200 {object} controllers.InvitationSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{inviteCode} [get]
func (c *InvitationController) GetInvitation(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("inviteCode")
	if code == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing inviteCode")
		return
	}
	inv, err := c.Service.GetByInviteCode(r.Context(), code)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inv)
}

// AcceptInvitation godoc
// @Summary Accept an invitation
// @Description Accepts a pending invitation for the caller and grants the caller the invitation's permission on its scope. An invitation past its expiry is marked expired and answered with 409.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param inviteCode path string true "Invite code"
// @Success 200 {object} controllers.InvitationSuccessResponse "data contains the accepted invitation"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invitation_not_actionable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{inviteCode}/accept [post]
func (c *InvitationController) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.Service.Accept)
}

// DeclineInvitation godoc
// @Summary Decline an invitation
// @Description Declines a pending invitation on behalf of the caller.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param inviteCode path string true "Invite code"
// @Success 200 {object} controllers.InvitationSuccessResponse "data contains the declined invitation"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invitation_not_actionable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{inviteCode}/decline [post]
func (c *InvitationController) DeclineInvitation(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.Service.Decline)
}

// CancelInvitation godoc
// @Summary Cancel an invitation
// @Description Withdraws a pending invitation. Depending on the configured policy only the inviter may cancel.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param inviteCode path string true "Invite code"
// @Success 200 {object} controllers.InvitationSuccessResponse "data contains the cancelled invitation"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invitation_not_actionable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{inviteCode}/cancel [post]
func (c *InvitationController) CancelInvitation(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.Service.Cancel)
}

type transitionCall func(ctx context.Context, code, userID string) (*domain.Invitation, error)

func (c *InvitationController) transition(w http.ResponseWriter, r *http.Request, call transitionCall) {
	code := r.PathValue("inviteCode")
	if code == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing inviteCode")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	inv, err := call(r.Context(), code, userID)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inv)
}

// ListMyPermissions godoc
// @Summary List the caller's permissions
// @Description Returns the access grants held by the authenticated user, newest first.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.PermissionListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me/permissions [get]
func (c *InvitationController) ListMyPermissions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	perms, err := c.Service.ListPermissions(r.Context(), userID)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, perms)
}

func (c *InvitationController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if helpers.WriteDomainError(w, err) {
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
}
