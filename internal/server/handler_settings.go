package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"tajer-be/internal/finance"
	"tajer-be/internal/settings"
)

func (s *Server) handleGetGlobalSettings(w http.ResponseWriter, r *http.Request) {
	g, err := s.settings.GetGlobal(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, g)
}

func (s *Server) handleUpdateGlobalSettings(w http.ResponseWriter, r *http.Request) {
	var g finance.GlobalSettings
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated := &settings.Global{GlobalSettings: g}
	if err := s.settings.UpdateGlobal(r.Context(), updated); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	list, err := s.settings.ListCompanies(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if list == nil {
		list = []*settings.ShippingCompany{}
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleUpsertCompany(w http.ResponseWriter, r *http.Request) {
	var override finance.CompanyOverride
	if err := json.NewDecoder(r.Body).Decode(&override); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c := &settings.ShippingCompany{
		Name:     mux.Vars(r)["name"],
		Override: override,
	}
	if err := s.settings.UpsertCompany(r.Context(), c); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := s.settings.DeleteCompany(r.Context(), mux.Vars(r)["name"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "company deleted"})
}
