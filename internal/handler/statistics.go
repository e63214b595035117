package handler

import (
	"log/slog"
	"net/http"

	"cafecalmo/internal/service"
)

func StatisticsHandler(statsSvc *service.StatisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := statsSvc.Get(r.Context())
		if err != nil {
			slog.Error("get statistics failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
