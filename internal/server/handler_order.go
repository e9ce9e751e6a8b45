package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"tajer-be/internal/finance"
	"tajer-be/internal/order"
)

type createOrderRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	Address         string `json:"address"`
	ProductName     string `json:"productName"`
	ShippingCompany string `json:"shippingCompany"`

	ProductPrice float64 `json:"productPrice"`
	ProductCost  float64 `json:"productCost"`
	ShippingFee  float64 `json:"shippingFee"`
	Discount     float64 `json:"discount"`

	Insured                     *bool `json:"insured"`
	IncludeInspectionFee        bool  `json:"includeInspectionFee"`
	InspectionFeePaidByCustomer bool  `json:"inspectionFeePaidByCustomer"`
}

func (req createOrderRequest) toInput() order.CreateInput {
	return order.CreateInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		Address:         req.Address,
		ProductName:     req.ProductName,
		ShippingCompany: req.ShippingCompany,

		ProductPrice: req.ProductPrice,
		ProductCost:  req.ProductCost,
		ShippingFee:  req.ShippingFee,
		Discount:     req.Discount,

		Insured:                     req.Insured,
		IncludeInspectionFee:        req.IncludeInspectionFee,
		InspectionFeePaidByCustomer: req.InspectionFeePaidByCustomer,
	}
}

func (req createOrderRequest) validate() string {
	if req.CustomerName == "" {
		return "customerName is required"
	}
	if req.ProductName == "" {
		return "productName is required"
	}
	if req.ProductPrice < 0 || req.ProductCost < 0 || req.ShippingFee < 0 || req.Discount < 0 {
		return "amounts must not be negative"
	}
	return ""
}

func orderID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	return id, err == nil
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	o, err := s.orders.Create(r.Context(), req.toInput())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, o)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	var f order.Filter

	if v := r.URL.Query().Get("status"); v != "" {
		st := finance.OrderStatus(v)
		if !st.Valid() {
			respondError(w, http.StatusBadRequest, "unknown status: "+v)
			return
		}
		f.Status = &st
	}
	if v := r.URL.Query().Get("company"); v != "" {
		f.ShippingCompany = &v
	}
	f.Limit = queryInt32(r, "limit", 50)
	f.Offset = queryInt32(r, "offset", 0)

	list, err := s.orders.List(r.Context(), f)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if list == nil {
		list = []*order.Order{}
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	o, err := s.orders.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	if err := s.orders.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "order deleted"})
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := s.orders.UpdateStatus(r.Context(), id, finance.OrderStatus(req.Status))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (s *Server) handleCollect(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req struct {
		Total *float64 `json:"total"`
	}
	if r.Body != nil {
		// An empty body means the computed amount due is collected as-is.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	o, err := s.orders.Collect(r.Context(), id, req.Total)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (s *Server) handleReturnAfterCollection(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	o, err := s.orders.ReturnAfterCollection(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (s *Server) handleCreateExchange(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	o, err := s.orders.CreateExchange(r.Context(), req.toInput(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, o)
}

func (s *Server) handleProfitLoss(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	b, err := s.orders.ProfitLoss(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, b)
}

func (s *Server) handleOrderTransactions(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	list, err := s.wallets.ListByOrder(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func queryInt32(r *http.Request, name string, def int32) int32 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n < 0 {
		return def
	}
	return int32(n)
}
