package httpapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/pagination"
	"github.com/cahuala/ordersApi/pos-svc/internal/validation"
)

// The helpers below hold the request flow shared by every CRUD resource:
// decode, validate, call one service operation, render.

func createHandler[Req, In, Out any](
	h *Handler,
	validate func(Req) (In, error),
	create func(context.Context, In) (Out, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := decodeJSON(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		in, err := validate(req)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		out, err := create(r.Context(), in)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

func listHandler[T any](
	h *Handler,
	collection, legacyParam string,
	list func(context.Context, domain.TextFilter, pagination.Params) (pagination.Page[T], error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, params, err := validation.List(listQuery(r, legacyParam))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		page, err := list(r.Context(), filter, params)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page.Envelope(collection))
	}
}

func idHandler[Out any](h *Handler, get func(context.Context, uuid.UUID) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		out, err := get(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func updateHandler[Req, Patch, Out any](
	h *Handler,
	validate func(Req) (Patch, error),
	update func(context.Context, uuid.UUID, Patch) (Out, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		var req Req
		if err := decodeJSON(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		patch, err := validate(req)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		out, err := update(r.Context(), id, patch)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func deleteHandler(h *Handler, del func(context.Context, uuid.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if err := del(r.Context(), id); err != nil {
			h.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
