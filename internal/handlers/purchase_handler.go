package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"caderneta-backend/internal/middleware"
	"caderneta-backend/internal/models"
	"caderneta-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

type PurchaseHandler struct {
	Service *services.PurchaseService
}

func NewPurchaseHandler(service *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{Service: service}
}

// ListByPerson serves the full purchase history of one record; the
// detail view re-fetches through here after every mutation.
func (h *PurchaseHandler) ListByPerson(w http.ResponseWriter, r *http.Request) {
	personID := mux.Vars(r)["id"]

	purchases, err := h.Service.ListByPerson(r.Context(), personID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			http.Error(w, "Record not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(purchases)
}

func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	personID := mux.Vars(r)["id"]

	var in models.PurchaseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	purchase, err := h.Service.Create(r.Context(), personID, &in, userID)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			http.Error(w, "Record not found", http.StatusNotFound)
		case errors.Is(err, services.ErrNegativeAmount), errors.Is(err, services.ErrInvalidDate):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(purchase)
}

func (h *PurchaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	personID, purchaseID := vars["id"], vars["purchase_id"]

	var in models.PurchaseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	purchase, err := h.Service.Update(r.Context(), personID, purchaseID, &in)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			http.Error(w, "Purchase not found", http.StatusNotFound)
		case errors.Is(err, services.ErrNegativeAmount), errors.Is(err, services.ErrInvalidDate):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(purchase)
}

func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.Service.Delete(r.Context(), vars["id"], vars["purchase_id"]); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			http.Error(w, "Purchase not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
