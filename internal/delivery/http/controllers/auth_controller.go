package controllers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	h "gdhealth/internal/delivery/http/helpers"
	"gdhealth/internal/delivery/http/middleware"
	"gdhealth/internal/domain"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=employee customer"`
	LoginID  string `json:"login_id" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	l.LoginID = strings.TrimSpace(l.LoginID)
	return h.ValidateStruct(l)
}

// LoginResponse is the response body for POST /auth/login.
type LoginResponse struct {
	Token     string            `json:"token"`
	TokenType string            `json:"token_type"`
	Principal *domain.Principal `json:"principal"`
}

// LoginSuccessResponse is the success envelope for POST /auth/login (200).
type LoginSuccessResponse struct {
	Data  LoginResponse `json:"data"`
	Error *h.APIError   `json:"error"`
}

// ChangePasswordRequest is the request body for PUT /auth/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
}

// Validate implements Validator.
func (c ChangePasswordRequest) Validate() []string {
	return h.ValidateStruct(c)
}

type AuthController struct {
	Logger  *zap.Logger
	Service domain.AuthService
}

func NewAuthController(logger *zap.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Log in
// @Description Authenticates an employee or customer and returns a bearer token carrying the account's roles.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} controllers.LoginSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, principal, err := c.Service.Login(r.Context(), req.Kind, req.LoginID, req.Password)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", Principal: principal})
}

// ChangePassword godoc
// @Summary Change password
// @Description Replaces the caller's own password. The current password must match.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangePasswordRequest true "Current and new password"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/password [put]
func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req ChangePasswordRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.ChangePassword(r.Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
