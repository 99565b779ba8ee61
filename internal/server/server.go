//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hammerbid/ordertrack/internal/actions"
	"github.com/hammerbid/ordertrack/internal/backend"
	"github.com/hammerbid/ordertrack/internal/lifecycle"
)

type Tracker interface {
	Get(ctx context.Context, productID string) (*backend.OrderView, error)
}

type OrderActions interface {
	SubmitShipping(ctx context.Context, orderID string, info backend.ShippingInfo) (*backend.OrderView, error)
	ConfirmShipment(ctx context.Context, orderID string, info backend.ShipmentInfo) (*backend.OrderView, error)
	ConfirmReceived(ctx context.Context, orderID string) (*backend.OrderView, error)
	CancelOrder(ctx context.Context, orderID, reason string) (*backend.OrderView, error)
	CreateRating(ctx context.Context, productID string, req backend.RatingRequest) (*backend.Rating, error)
	UpdateRating(ctx context.Context, productID, orderID, ratingID string, req backend.RatingUpdate) (*backend.Rating, error)
}

// Server exposes the order lifecycle view to UI clients: one read endpoint
// that projects the cached order onto the fixed step bar, and one endpoint
// per backend state transition.
type Server struct {
	tracker      Tracker
	actions      OrderActions
	server       *http.Server
	AuditManager *AuditManager
}

func New(tracker Tracker, orderActions OrderActions, auditManager *AuditManager) *Server {
	return &Server{
		tracker:      tracker,
		actions:      orderActions,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.AuditManager.Start(ctx)

	log.Printf("Server starting on port %s", port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("HTTP server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	log.Println("Server shutdown completed successfully")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.HandleFunc("/track/{productId}", s.handleTrackOrder).Methods(http.MethodGet)

	audited := router.NewRoute().Subrouter()
	audited.Use(s.auditLogMiddleware)
	audited.HandleFunc("/orders/{id}/shipping", s.handleSubmitShipping).Methods(http.MethodPost)
	audited.HandleFunc("/orders/{id}/confirm-shipment", s.handleConfirmShipment).Methods(http.MethodPost)
	audited.HandleFunc("/orders/{id}/confirm-received", s.handleConfirmReceived).Methods(http.MethodPost)
	audited.HandleFunc("/orders/{id}/cancel", s.handleCancelOrder).Methods(http.MethodPost)
	audited.HandleFunc("/ratings", s.handleCreateRating).Methods(http.MethodPost)
	audited.HandleFunc("/ratings/{ratingId}", s.handleUpdateRating).Methods(http.MethodPatch)

	return s.bearerMiddleware(router)
}

// bearerMiddleware lifts the inbound credential into the context so the
// backend client attaches it to the outbound call. Validation happens on
// the backend; the gateway only passes the token through.
func (s *Server) bearerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			token := strings.TrimPrefix(auth, "Bearer ")
			r = r.WithContext(backend.WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// writeActionError maps a failed action onto the gateway's response: an
// in-flight clash is a conflict, a backend rejection keeps the backend's
// status and wording, anything else is a bad gateway with the generic
// message.
func writeActionError(w http.ResponseWriter, err error) {
	if errors.Is(err, actions.ErrActionInFlight) {
		respondError(w, http.StatusConflict, err.Error())
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		respondError(w, apiErr.StatusCode, apiErr.Message)
		return
	}

	respondError(w, http.StatusBadGateway, backend.GenericErrMsg)
}

type trackResponse struct {
	Order    *backend.OrderView `json:"order"`
	Progress lifecycle.Progress `json:"progress"`
}

func (s *Server) handleTrackOrder(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]
	if productID == "" {
		respondError(w, http.StatusBadRequest, "Missing product ID")
		return
	}

	view, err := s.tracker.Get(r.Context(), productID)
	if err != nil {
		writeActionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trackResponse{
		Order:    view,
		Progress: lifecycle.BuildProgress(view.Status),
	})
}

func (s *Server) handleSubmitShipping(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var info backend.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Form validation stays on this side of the network: an incomplete
	// address never reaches the backend.
	if info.Recipient == "" || info.Line1 == "" || info.City == "" ||
		info.PostalCode == "" || info.Country == "" {
		respondError(w, http.StatusBadRequest, "Missing required shipping fields")
		return
	}

	view, err := s.actions.SubmitShipping(r.Context(), orderID, info)
	if err != nil {
		writeActionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleConfirmShipment(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var info backend.ShipmentInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if info.TrackingNumber == "" || info.Carrier == "" {
		respondError(w, http.StatusBadRequest, "Missing tracking_number or carrier")
		return
	}

	view, err := s.actions.ConfirmShipment(r.Context(), orderID, info)
	if err != nil {
		writeActionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleConfirmReceived(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	view, err := s.actions.ConfirmReceived(r.Context(), orderID)
	if err != nil {
		writeActionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if body.Reason == "" {
		respondError(w, http.StatusBadRequest, "Missing cancellation reason")
		return
	}

	view, err := s.actions.CancelOrder(r.Context(), orderID, body.Reason)
	if err != nil {
		writeActionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

type ratingRequest struct {
	ProductID string `json:"product_id"`
	OrderID   string `json:"order_id"`
	Value     int    `json:"value"`
	Comment   string `json:"comment,omitempty"`
}

func (r ratingRequest) validate() string {
	if r.ProductID == "" || r.OrderID == "" {
		return "Missing product_id or order_id"
	}
	if r.Value != 1 && r.Value != -1 {
		return "Rating value must be +1 or -1"
	}
	return ""
}

func (s *Server) handleCreateRating(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	rating, err := s.actions.CreateRating(r.Context(), req.ProductID, backend.RatingRequest{
		OrderID: req.OrderID,
		Value:   req.Value,
		Comment: req.Comment,
	})
	if err != nil {
		writeActionError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, rating)
}

func (s *Server) handleUpdateRating(w http.ResponseWriter, r *http.Request) {
	ratingID := mux.Vars(r)["ratingId"]

	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	rating, err := s.actions.UpdateRating(r.Context(), req.ProductID, req.OrderID, ratingID, backend.RatingUpdate{
		Value:   req.Value,
		Comment: req.Comment,
	})
	if err != nil {
		writeActionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rating)
}
