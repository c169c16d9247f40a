package http

import (
	"net/http"

	"github.com/strideapp/stride/internal/stride/service"
	"github.com/strideapp/stride/pkg/api"
	"github.com/strideapp/stride/pkg/httpx"
)

// CalendarHandler serves the /v1/calendar endpoints. Entries are private:
// every operation is scoped to the authenticated principal.
type CalendarHandler struct {
	CalendarService *service.CalendarService
}

func principalID(w http.ResponseWriter, r *http.Request) (string, bool) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		api.ErrInvalidToken.WriteError(w)
		return "", false
	}
	return p.ID, true
}

// List godoc
//
//	@Summary	List own calendar entries
//	@Tags		Calendar
//	@Produce	json
//	@Success	200	{array}	api.CalendarEntryResponse
//	@Security	BearerAuth
//	@Router		/v1/calendar [get].
func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := principalID(w, r)
	if !ok {
		return
	}

	entries, err := h.CalendarService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]api.CalendarEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toCalendarEntryResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// Create godoc
//
//	@Summary	Add a calendar entry
//	@Tags		Calendar
//	@Accept		json
//	@Produce	json
//	@Param		body	body		api.CalendarEntryRequest	true	"Entry details"
//	@Success	201		{object}	api.CalendarEntryResponse
//	@Failure	400		{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/calendar [post].
func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := principalID(w, r)
	if !ok {
		return
	}

	var req api.CalendarEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.CalendarService.Create(r.Context(), userID, req.EntryDate, req.ExerciseID, req.Steps, req.Notes)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCalendarEntryResponse(e))
}

// Get godoc
//
//	@Summary	Fetch a calendar entry
//	@Tags		Calendar
//	@Produce	json
//	@Param		id	path		string	true	"Entry id"
//	@Success	200	{object}	api.CalendarEntryResponse
//	@Failure	404	{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/calendar/{id} [get].
func (h *CalendarHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := principalID(w, r)
	if !ok {
		return
	}

	e, err := h.CalendarService.Get(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCalendarEntryResponse(e))
}

// Update godoc
//
//	@Summary	Update a calendar entry
//	@Tags		Calendar
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Entry id"
//	@Param		body	body		api.CalendarEntryRequest	true	"Entry details"
//	@Success	200		{object}	api.CalendarEntryResponse
//	@Failure	400		{object}	api.ErrorResponse	"error, error_description"
//	@Failure	404		{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/calendar/{id} [put].
func (h *CalendarHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := principalID(w, r)
	if !ok {
		return
	}

	var req api.CalendarEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.CalendarService.Update(r.Context(), userID, r.PathValue("id"), req.EntryDate, req.ExerciseID, req.Steps, req.Notes)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCalendarEntryResponse(e))
}

// Delete godoc
//
//	@Summary	Delete a calendar entry
//	@Tags		Calendar
//	@Param		id	path	string	true	"Entry id"
//	@Success	204
//	@Failure	404	{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/calendar/{id} [delete].
func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := principalID(w, r)
	if !ok {
		return
	}

	if err := h.CalendarService.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
