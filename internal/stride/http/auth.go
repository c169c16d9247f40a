package http

import (
	"net/http"
	"strings"

	"github.com/strideapp/stride/internal/stride/service"
	"github.com/strideapp/stride/pkg/api"
	"github.com/strideapp/stride/pkg/httpx"
)

// RegisterHandler serves POST /v1/register
type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates an account with the default "user" role. Emails are unique.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		api.RegisterRequest	true	"Account details"
//	@Success		201		{object}	api.UserResponse
//	@Failure		400		{object}	api.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	api.ErrorResponse	"error, error_description"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// LoginHandler serves POST /v1/login
// Accepts application/x-www-form-urlencoded in the OAuth2 password-grant
// style; the "username" field carries the account email.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Exchanges an email/password pair for an access and refresh token.
//	@Tags			Auth
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Account email"
//	@Param			password	formData	string	true	"Account password"
//	@Success		200			{object}	api.TokenResponse	"access_token, refresh_token, token_type, expires_in"
//	@Failure		400			{object}	api.ErrorResponse	"error, error_description"
//	@Failure		401			{object}	api.ErrorResponse	"error, error_description"
//	@Header			200			{string}	Cache-Control		"no-store"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	form, ok := parseForm(w, r)
	if !ok {
		return
	}

	email := strings.TrimSpace(form("username"))
	password := form("password")
	if email == "" || password == "" {
		api.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AuthService.Login(r.Context(), email, password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTokenResponse(pair))
}

// RefreshHandler serves POST /v1/refresh
type RefreshHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Refresh the access token
//	@Description	Exchanges a refresh token for a new access token carrying the account's current role. The refresh token is not rotated.
//	@Tags			Auth
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			refresh_token	formData	string	true	"Refresh token"
//	@Success		200				{object}	api.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400				{object}	api.ErrorResponse	"error, error_description"
//	@Failure		401				{object}	api.ErrorResponse	"error, error_description"
//	@Header			200				{string}	Cache-Control		"no-store"
//	@Router			/v1/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	form, ok := parseForm(w, r)
	if !ok {
		return
	}

	token := strings.TrimSpace(form("refresh_token"))
	if token == "" {
		api.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AuthService.Refresh(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTokenResponse(pair))
}

// parseForm enforces the form content type and parses the body. On false
// the error response has already been written.
func parseForm(w http.ResponseWriter, r *http.Request) (func(string) string, bool) {
	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		api.ErrInvalidRequest.WriteError(w)
		return nil, false
	}
	if err := r.ParseForm(); err != nil {
		api.ErrInvalidRequest.WriteError(w)
		return nil, false
	}
	return r.Form.Get, true
}
