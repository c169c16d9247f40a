package http

import (
	"net/http"

	"github.com/strideapp/stride/internal/stride/domain"
	"github.com/strideapp/stride/internal/stride/service"
	"github.com/strideapp/stride/pkg/api"
	"github.com/strideapp/stride/pkg/httpx"
)

// ExercisesHandler serves the /v1/exercises endpoints. The catalog is
// shared and editable by any authenticated user.
type ExercisesHandler struct {
	ExerciseService *service.ExerciseService
}

// List godoc
//
//	@Summary	List the exercise catalog
//	@Tags		Exercises
//	@Produce	json
//	@Success	200	{array}	api.ExerciseResponse
//	@Security	BearerAuth
//	@Router		/v1/exercises [get].
func (h *ExercisesHandler) List(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.ExerciseService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]api.ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, toExerciseResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// Create godoc
//
//	@Summary	Add an exercise
//	@Tags		Exercises
//	@Accept		json
//	@Produce	json
//	@Param		body	body		api.ExerciseRequest	true	"Exercise details"
//	@Success	201		{object}	api.ExerciseResponse
//	@Failure	400		{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/exercises [post].
func (h *ExercisesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.ExerciseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.ExerciseService.Create(r.Context(), req.Name, domain.ExerciseType(req.Type), domain.Difficulty(req.Difficulty), req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toExerciseResponse(e))
}

// Types godoc
//
//	@Summary	List the known exercise types
//	@Tags		Exercises
//	@Produce	json
//	@Success	200	{array}	string
//	@Security	BearerAuth
//	@Router		/v1/exercises/types [get].
func (h *ExercisesHandler) Types(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, domain.ExerciseTypes())
}

// Difficulties godoc
//
//	@Summary	List the known difficulty levels
//	@Tags		Exercises
//	@Produce	json
//	@Success	200	{array}	string
//	@Security	BearerAuth
//	@Router		/v1/exercises/difficulties [get].
func (h *ExercisesHandler) Difficulties(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, domain.Difficulties())
}

// Get godoc
//
//	@Summary	Fetch an exercise
//	@Tags		Exercises
//	@Produce	json
//	@Param		id	path		string	true	"Exercise id"
//	@Success	200	{object}	api.ExerciseResponse
//	@Failure	404	{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/exercises/{id} [get].
func (h *ExercisesHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.ExerciseService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toExerciseResponse(e))
}

// Update godoc
//
//	@Summary	Update an exercise
//	@Tags		Exercises
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Exercise id"
//	@Param		body	body		api.ExerciseRequest	true	"Exercise details"
//	@Success	200		{object}	api.ExerciseResponse
//	@Failure	400		{object}	api.ErrorResponse	"error, error_description"
//	@Failure	404		{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/exercises/{id} [put].
func (h *ExercisesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req api.ExerciseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.ExerciseService.Update(r.Context(), r.PathValue("id"), req.Name, domain.ExerciseType(req.Type), domain.Difficulty(req.Difficulty), req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toExerciseResponse(e))
}

// Delete godoc
//
//	@Summary	Delete an exercise
//	@Tags		Exercises
//	@Param		id	path	string	true	"Exercise id"
//	@Success	204
//	@Failure	404	{object}	api.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/exercises/{id} [delete].
func (h *ExercisesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ExerciseService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
