package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"caderneta-backend/internal/cep"

	"github.com/gorilla/mux"
)

// CEPHandler proxies the postal-code lookup so the forms can auto-fill
// address fields. Best-effort only: the client ignores failures.
type CEPHandler struct {
	Client *cep.Client
}

func NewCEPHandler(client *cep.Client) *CEPHandler {
	return &CEPHandler{Client: client}
}

func (h *CEPHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["cep"]

	addr, err := h.Client.Lookup(r.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, cep.ErrInvalidCEP):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, cep.ErrNotFound):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]bool{"found": false})
		default:
			http.Error(w, "Address lookup unavailable", http.StatusBadGateway)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(addr)
}
