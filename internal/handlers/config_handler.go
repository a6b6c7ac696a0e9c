package handlers

import (
	"encoding/json"
	"net/http"

	"caderneta-backend/internal/config"
)

// ConfigHandler tells the login view whether the store credentials are
// present. When they are not, the client shows a fixed warning and
// keeps authentication disabled.
type ConfigHandler struct {
	Cfg *config.Config
}

func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{Cfg: cfg}
}

func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"configured": h.Cfg.Configured(),
	}
	if !h.Cfg.Configured() {
		resp["warning"] = h.Cfg.MissingConfigWarning()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Unavailable answers every authenticated flow while the server runs
// without store credentials.
func Unavailable(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Server is not configured", http.StatusServiceUnavailable)
}
