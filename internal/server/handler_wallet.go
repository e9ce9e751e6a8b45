package server

import (
	"encoding/json"
	"net/http"

	"tajer-be/internal/wallet"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	var category *wallet.Category
	if v := r.URL.Query().Get("category"); v != "" {
		c := wallet.Category(v)
		if !c.Valid() {
			respondError(w, http.StatusBadRequest, "unknown category: "+v)
			return
		}
		category = &c
	}

	list, err := s.wallets.List(r.Context(), category, queryInt32(r, "limit", 50), queryInt32(r, "offset", 0))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if list == nil {
		list = []*wallet.Transaction{}
	}
	respondJSON(w, http.StatusOK, list)
}

// handleRecordTransaction covers manual wallet adjustments: expenses,
// inventory purchases, capital deposits. Order-driven entries are posted by
// the order service, never through this endpoint.
func (s *Server) handleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type     wallet.Type     `json:"type"`
		Category wallet.Category `json:"category"`
		Amount   float64         `json:"amount"`
		Note     string          `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Category == "" {
		req.Category = wallet.CategoryManual
	}

	t := &wallet.Transaction{
		Type:     req.Type,
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
	}
	if err := s.wallets.Record(r.Context(), t); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, t)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := s.wallets.Balance(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]float64{"balance": balance})
}
