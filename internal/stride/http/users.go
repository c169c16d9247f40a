package http

import (
	"net/http"

	"github.com/strideapp/stride/internal/stride/domain"
	"github.com/strideapp/stride/internal/stride/service"
	"github.com/strideapp/stride/pkg/api"
	"github.com/strideapp/stride/pkg/httpx"
)

// MeHandler serves GET /v1/me
type MeHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Current profile
//	@Description	Returns the profile of the authenticated account.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	api.UserResponse
//	@Failure		401	{object}	api.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		api.ErrInvalidToken.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, api.UserResponse{
		ID:       p.ID,
		Username: p.Username,
		Email:    p.Email,
		Role:     p.Role,
	})
}

// UsersHandler serves the admin-only /v1/users endpoints. The scope
// middleware filters on the token; requireAdmin re-checks the principal's
// current role so a demoted admin is locked out before token expiry.
type UsersHandler struct {
	UserService *service.UserService
}

func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		api.ErrInvalidToken.WriteError(w)
		return false
	}
	if err := service.RequireRole(domain.Role(p.Role), domain.RoleAdmin); err != nil {
		api.ErrAccessDenied.WriteError(w)
		return false
	}
	return true
}

// List godoc
//
//	@Summary	List accounts
//	@Tags		Users
//	@Produce	json
//	@Success	200	{array}		api.UserResponse
//	@Failure	403	{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/users [get].
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]api.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// Create godoc
//
//	@Summary	Create an account
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		body	body		api.CreateUserRequest	true	"Account details"
//	@Success	201		{object}	api.UserResponse
//	@Failure	400		{object}	api.ErrorResponse	"error, error_description"
//	@Failure	403		{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/users [post].
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req api.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.Create(r.Context(), req.Username, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// Get godoc
//
//	@Summary	Fetch an account
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	api.UserResponse
//	@Failure	404	{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/users/{id} [get].
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	user, err := h.UserService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// Update godoc
//
//	@Summary	Update an account
//	@Description	Applies the provided fields only. A role change takes effect on the next token mint.
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"User id"
//	@Param		body	body		api.UpdateUserRequest	true	"Fields to change"
//	@Success	200		{object}	api.UserResponse
//	@Failure	400		{object}	api.ErrorResponse	"error, error_description"
//	@Failure	404		{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/users/{id} [put].
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req api.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id := r.PathValue("id")

	var role *domain.Role
	if req.Role != nil {
		v := domain.Role(*req.Role)
		role = &v
	}

	user, err := h.UserService.Update(r.Context(), id, req.Username, req.Email, role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if req.Password != nil {
		if err := h.UserService.UpdatePassword(r.Context(), id, *req.Password); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// Delete godoc
//
//	@Summary	Delete an account
//	@Description	Removes the account and all of its calendar entries in one transaction.
//	@Tags		Users
//	@Param		id	path	string	true	"User id"
//	@Success	204
//	@Failure	404	{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/users/{id} [delete].
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	if err := h.UserService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
