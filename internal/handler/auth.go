package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"cafecalmo/internal/mw"
	"cafecalmo/internal/service"
)

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func LoginHandler(staffSvc *service.StaffService, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		staff, err := staffSvc.Authenticate(r.Context(), req.Login, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidCredentials):
				http.Error(w, "invalid login or password", http.StatusUnauthorized)
			default:
				slog.Error("staff login failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeToken(w, staff.ID, secret)
	}
}

func writeToken(w http.ResponseWriter, staffID int64, secret string) {
	tokenString, err := mw.IssueToken(staffID, secret)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		http.Error(w, "token generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+tokenString)
	w.WriteHeader(http.StatusOK)
}
