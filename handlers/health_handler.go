package handlers

import (
	"context"
	"net/http"
	"time"

	"hrmsproject/utils"
)

// DBPinger is satisfied by the Mongo client; tests substitute a fake.
type DBPinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db DBPinger
}

func NewHealthHandler(db DBPinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.HandleMessageResponse(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	utils.HandleMessageResponse(w, "ETHARA HRMS API is running", http.StatusOK)
}
