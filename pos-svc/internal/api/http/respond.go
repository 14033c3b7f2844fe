package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/cahuala/ordersApi/logger"
	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/validation"
)

const (
	msgValidation = "Erro de validação"
	msgInternal   = "Erro interno do servidor"
	msgBadJSON    = "JSON inválido"
	msgBadType    = "Tipo inválido"
)

type errorBody struct {
	Status  int                 `json:"status"`
	Message string              `json:"message"`
	Issues  []domain.FieldError `json:"issues,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError is the one place domain errors become HTTP responses.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr   *domain.ValidationError
		appErr *domain.AppError
	)
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{
			Status:  http.StatusBadRequest,
			Message: msgValidation,
			Issues:  verr.Issues,
		})
	case errors.As(err, &appErr):
		writeJSON(w, appErr.Status, errorBody{Status: appErr.Status, Message: appErr.Message})
	default:
		h.log.Error("http_request", logger.RequestID(r.Context()), "unhandled error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Status:  http.StatusInternalServerError,
			Message: msgInternal,
		})
	}
}

// decodeJSON reads the body into dst. An empty body decodes to the zero
// request so the validators report the missing fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return domain.NewValidationError(field, msgBadType)
	}
	return domain.NewValidationError("body", msgBadJSON)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return validation.ID(mux.Vars(r)["id"])
}

func listQuery(r *http.Request, legacy string) validation.ListQuery {
	values := r.URL.Query()
	return validation.ListQuery{
		Q:       values.Get("q"),
		Legacy:  values.Get(legacy),
		Page:    values.Get("page"),
		PerPage: values.Get("perPage"),
	}
}
