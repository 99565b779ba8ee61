package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hammerbid/ordertrack/internal/actions"
	"github.com/hammerbid/ordertrack/internal/backend"
	"github.com/hammerbid/ordertrack/internal/kafka"
	"github.com/hammerbid/ordertrack/internal/lifecycle"
	mock_server "github.com/hammerbid/ordertrack/internal/server/mocks"
)

func newTestServer(t *testing.T) (*Server, *mock_server.MockTracker, *mock_server.MockOrderActions) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockTracker := mock_server.NewMockTracker(ctrl)
	mockActions := mock_server.NewMockOrderActions(ctrl)
	auditManager := NewAuditManager(1, 1, time.Second, kafka.NewConsoleProducer())

	return New(mockTracker, mockActions, auditManager), mockTracker, mockActions
}

func TestHandleTrackOrder(t *testing.T) {
	tests := []struct {
		name           string
		productID      string
		setupMocks     func(tracker *mock_server.MockTracker)
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:      "mid lifecycle order renders step 3 at 50 percent",
			productID: "prod-42",
			setupMocks: func(tracker *mock_server.MockTracker) {
				tracker.EXPECT().
					Get(gomock.Any(), "prod-42").
					Return(&backend.OrderView{
						OrderID:   "order-1",
						ProductID: "prod-42",
						Status:    lifecycle.StatusSellerConfirmationPending,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp trackResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "order-1", resp.Order.OrderID)
				assert.False(t, resp.Progress.Cancelled)
				assert.Equal(t, 3, resp.Progress.CurrentStep)
				assert.InDelta(t, 50, resp.Progress.FillPercent, 0.001)
				assert.Len(t, resp.Progress.Steps, lifecycle.TotalSteps)
			},
		},
		{
			name:      "completed order renders step 5 at 100 percent",
			productID: "prod-42",
			setupMocks: func(tracker *mock_server.MockTracker) {
				tracker.EXPECT().
					Get(gomock.Any(), "prod-42").
					Return(&backend.OrderView{
						OrderID:   "order-1",
						ProductID: "prod-42",
						Status:    lifecycle.StatusCompleted,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp trackResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, 5, resp.Progress.CurrentStep)
				assert.InDelta(t, 100, resp.Progress.FillPercent, 0.001)
				for _, step := range resp.Progress.Steps[:lifecycle.TotalSteps-1] {
					assert.Equal(t, lifecycle.StepCompleted, step.State)
				}
			},
		},
		{
			name:      "cancelled order renders the cancelled branch without a step bar",
			productID: "prod-42",
			setupMocks: func(tracker *mock_server.MockTracker) {
				tracker.EXPECT().
					Get(gomock.Any(), "prod-42").
					Return(&backend.OrderView{
						OrderID:   "order-1",
						ProductID: "prod-42",
						Status:    lifecycle.StatusCancelled,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp trackResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.True(t, resp.Progress.Cancelled)
				assert.Empty(t, resp.Progress.Steps)
				assert.Zero(t, resp.Progress.FillPercent)
			},
		},
		{
			name:      "backend not found is forwarded",
			productID: "prod-missing",
			setupMocks: func(tracker *mock_server.MockTracker) {
				tracker.EXPECT().
					Get(gomock.Any(), "prod-missing").
					Return(nil, &backend.APIError{StatusCode: http.StatusNotFound, Message: "product not found"})
			},
			expectedStatus: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"product not found"}`, string(body))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, tracker, _ := newTestServer(t)
			tc.setupMocks(tracker)

			req := httptest.NewRequest(http.MethodGet, "/track/"+tc.productID, nil)
			req = mux.SetURLVars(req, map[string]string{"productId": tc.productID})

			rr := httptest.NewRecorder()
			srv.handleTrackOrder(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.check(t, rr.Body.Bytes())
		})
	}
}

func TestHandleSubmitShipping(t *testing.T) {
	validBody := map[string]interface{}{
		"recipient":   "Jordan Lee",
		"line1":       "1 Main St",
		"city":        "Springfield",
		"postal_code": "12345",
		"country":     "US",
	}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(mockActions *mock_server.MockOrderActions)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "successful submission",
			requestBody: validBody,
			setupMocks: func(mockActions *mock_server.MockOrderActions) {
				mockActions.EXPECT().
					SubmitShipping(gomock.Any(), "order-1", gomock.Any()).
					Return(&backend.OrderView{
						OrderID:   "order-1",
						ProductID: "prod-42",
						Status:    lifecycle.StatusSellerConfirmationPending,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"SELLER_CONFIRMATION_PENDING"`,
		},
		{
			name: "incomplete address never reaches the backend",
			requestBody: map[string]interface{}{
				"recipient": "Jordan Lee",
			},
			setupMocks:     func(*mock_server.MockOrderActions) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Missing required shipping fields"`,
		},
		{
			name:        "in-flight clash is a conflict",
			requestBody: validBody,
			setupMocks: func(mockActions *mock_server.MockOrderActions) {
				mockActions.EXPECT().
					SubmitShipping(gomock.Any(), "order-1", gomock.Any()).
					Return(nil, actions.ErrActionInFlight)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"another action for this order is still in flight"`,
		},
		{
			name:        "backend rejection keeps its status and wording",
			requestBody: validBody,
			setupMocks: func(mockActions *mock_server.MockOrderActions) {
				mockActions.EXPECT().
					SubmitShipping(gomock.Any(), "order-1", gomock.Any()).
					Return(nil, &backend.APIError{
						StatusCode: http.StatusConflict,
						Message:    "order is not in SHIPPING_INFO_PENDING status",
					})
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"order is not in SHIPPING_INFO_PENDING status"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, _, mockActions := newTestServer(t)
			tc.setupMocks(mockActions)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/orders/order-1/shipping", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = mux.SetURLVars(req, map[string]string{"id": "order-1"})

			rr := httptest.NewRecorder()
			srv.handleSubmitShipping(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}

func TestHandleConfirmShipment(t *testing.T) {
	t.Run("missing tracking data never reaches the backend", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		body := []byte(`{"carrier":"DHL"}`)
		req := httptest.NewRequest(http.MethodPost, "/orders/order-1/confirm-shipment", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})

		rr := httptest.NewRecorder()
		srv.handleConfirmShipment(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Missing tracking_number or carrier")
	})

	t.Run("successful confirmation", func(t *testing.T) {
		srv, _, mockActions := newTestServer(t)
		mockActions.EXPECT().
			ConfirmShipment(gomock.Any(), "order-1", backend.ShipmentInfo{
				TrackingNumber: "TRACK-9",
				Carrier:        "DHL",
			}).
			Return(&backend.OrderView{Status: lifecycle.StatusInTransit}, nil)

		body := []byte(`{"tracking_number":"TRACK-9","carrier":"DHL"}`)
		req := httptest.NewRequest(http.MethodPost, "/orders/order-1/confirm-shipment", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})

		rr := httptest.NewRecorder()
		srv.handleConfirmShipment(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"IN_TRANSIT"`)
	})
}

func TestHandleConfirmReceived(t *testing.T) {
	srv, _, mockActions := newTestServer(t)
	mockActions.EXPECT().
		ConfirmReceived(gomock.Any(), "order-1").
		Return(&backend.OrderView{Status: lifecycle.StatusCompleted}, nil)

	req := httptest.NewRequest(http.MethodPost, "/orders/order-1/confirm-received", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "order-1"})

	rr := httptest.NewRecorder()
	srv.handleConfirmReceived(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"COMPLETED"`)
}

func TestHandleCancelOrder(t *testing.T) {
	t.Run("missing reason never reaches the backend", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/orders/order-1/cancel", bytes.NewReader([]byte(`{}`)))
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})

		rr := httptest.NewRecorder()
		srv.handleCancelOrder(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Missing cancellation reason")
	})

	t.Run("successful cancellation", func(t *testing.T) {
		srv, _, mockActions := newTestServer(t)
		mockActions.EXPECT().
			CancelOrder(gomock.Any(), "order-1", "item damaged before shipment").
			Return(&backend.OrderView{Status: lifecycle.StatusCancelled}, nil)

		body := []byte(`{"reason":"item damaged before shipment"}`)
		req := httptest.NewRequest(http.MethodPost, "/orders/order-1/cancel", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})

		rr := httptest.NewRecorder()
		srv.handleCancelOrder(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"CANCELLED"`)
	})
}

func TestHandleCreateRating(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		setupMocks     func(mockActions *mock_server.MockOrderActions)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "successful creation",
			requestBody: `{"product_id":"prod-42","order_id":"order-1","value":1,"comment":"great seller"}`,
			setupMocks: func(mockActions *mock_server.MockOrderActions) {
				mockActions.EXPECT().
					CreateRating(gomock.Any(), "prod-42", backend.RatingRequest{
						OrderID: "order-1",
						Value:   1,
						Comment: "great seller",
					}).
					Return(&backend.Rating{ID: "rating-7", OrderID: "order-1", Value: 1}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"rating-7"`,
		},
		{
			name:           "value outside plus or minus one is rejected",
			requestBody:    `{"product_id":"prod-42","order_id":"order-1","value":5}`,
			setupMocks:     func(*mock_server.MockOrderActions) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Rating value must be +1 or -1"`,
		},
		{
			name:           "missing identifiers are rejected",
			requestBody:    `{"value":1}`,
			setupMocks:     func(*mock_server.MockOrderActions) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Missing product_id or order_id"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, _, mockActions := newTestServer(t)
			tc.setupMocks(mockActions)

			req := httptest.NewRequest(http.MethodPost, "/ratings", bytes.NewReader([]byte(tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			srv.handleCreateRating(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}

func TestHandleUpdateRating(t *testing.T) {
	srv, _, mockActions := newTestServer(t)
	mockActions.EXPECT().
		UpdateRating(gomock.Any(), "prod-42", "order-1", "rating-7", backend.RatingUpdate{
			Value:   -1,
			Comment: "item arrived broken",
		}).
		Return(&backend.Rating{ID: "rating-7", Value: -1}, nil)

	body := []byte(`{"product_id":"prod-42","order_id":"order-1","value":-1,"comment":"item arrived broken"}`)
	req := httptest.NewRequest(http.MethodPatch, "/ratings/rating-7", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"ratingId": "rating-7"})

	rr := httptest.NewRecorder()
	srv.handleUpdateRating(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"rating-7"`)
}
