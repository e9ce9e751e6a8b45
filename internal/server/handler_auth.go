package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

type authRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	StoreName string `json:"storeName"`
}

type authResponse struct {
	Token     string `json:"token"`
	ID        int    `json:"id"`
	Email     string `json:"email"`
	StoreName string `json:"storeName"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "email and a password of at least 8 characters are required")
		return
	}

	token, m, err := s.merchants.Register(r.Context(), req.Email, req.Password, req.StoreName)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	setAuthCookie(w, token)
	respondJSON(w, http.StatusCreated, authResponse{
		Token:     token,
		ID:        m.ID,
		Email:     m.Email,
		StoreName: m.StoreName,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, m, err := s.merchants.Login(r.Context(), strings.TrimSpace(strings.ToLower(req.Email)), req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	setAuthCookie(w, token)
	respondJSON(w, http.StatusOK, authResponse{
		Token:     token,
		ID:        m.ID,
		Email:     m.Email,
		StoreName: m.StoreName,
	})
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   24 * 60 * 60,
	})
}
