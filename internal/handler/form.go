package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/form"
	"github.com/passform/passform-go/internal/middleware"
	"github.com/passform/passform-go/internal/model"
	"github.com/passform/passform-go/internal/service"
)

// FormHandler exposes the password form over HTTP. Every route except
// HandleOpen expects the form state from middleware.FormToken.
type FormHandler struct {
	service *service.FormService
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(svc *service.FormService) *FormHandler {
	return &FormHandler{service: svc}
}

// submitFailure is returned when Generate fails; the token records the error.
type submitFailure struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	model.FormResponse
}

// HandleOpen handles POST /api/v1/form.
func (h *FormHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Open()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// HandleShow handles GET /api/v1/form.
func (h *FormHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	state, ok := stateOrFail(w, r)
	if !ok {
		return
	}
	h.reply(w)(h.service.Show(state))
}

// HandleSetLength handles PUT /api/v1/form/length.
func (h *FormHandler) HandleSetLength(w http.ResponseWriter, r *http.Request) {
	state, ok := stateOrFail(w, r)
	if !ok {
		return
	}

	var req model.SetLengthRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.reply(w)(h.service.SetLength(state, req.Length))
}

// HandleToggle handles POST /api/v1/form/toggle/{class}.
func (h *FormHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	state, ok := stateOrFail(w, r)
	if !ok {
		return
	}
	h.reply(w)(h.service.Toggle(state, chi.URLParam(r, "class")))
}

// HandleSubmit handles POST /api/v1/form/submit.
func (h *FormHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	state, ok := stateOrFail(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Submit(state)
	if err == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, submitFailure{Error: verr.Message, Field: verr.Field, FormResponse: resp})
	case errors.Is(err, crypto.ErrEmptyPool):
		writeJSON(w, http.StatusBadRequest, submitFailure{Error: err.Error(), FormResponse: resp})
	default:
		writeError(w, err)
	}
}

// HandleReset handles POST /api/v1/form/reset.
func (h *FormHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	state, ok := stateOrFail(w, r)
	if !ok {
		return
	}
	h.reply(w)(h.service.Reset(state))
}

func (h *FormHandler) reply(w http.ResponseWriter) func(model.FormResponse, error) {
	return func(resp model.FormResponse, err error) {
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func stateOrFail(w http.ResponseWriter, r *http.Request) (model.FormState, bool) {
	state, ok := middleware.FormStateFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("missing form token"))
	}
	return state, ok
}
