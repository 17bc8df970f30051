package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/pickmate/fulfillment-api/internal/auth"
	"github.com/pickmate/fulfillment-api/internal/repository"
	mock_server "github.com/pickmate/fulfillment-api/internal/server/mocks"
	"github.com/pickmate/fulfillment-api/internal/storage"
)

const testSecret = "test-signing-secret"

type noopSink struct{}

func (noopSink) Persist(context.Context, []AuditLogEntry) error { return nil }

func newTestServer(t *testing.T) (*Server, *mock_server.MockFulfillment, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockFulfillment := mock_server.NewMockFulfillment(ctrl)
	manager := NewAuditManager(1, 5, 100*time.Millisecond, noopSink{})
	srv := New(mockFulfillment, Config{Port: "0", JWTSecret: testSecret}, manager, zap.NewNop())
	return srv, mockFulfillment, srv.setupRoutes()
}

func authHeader(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, "picker-7", "a.petrova", "scanner-12")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestProtectMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		_, _, router := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"success":false,"message":"Missing or invalid authorization header","statusCode":401}`, rr.Body.String())
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, router := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"success":false,"message":"Invalid token","statusCode":401}`, rr.Body.String())
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		_, _, router := newTestServer(t)

		token, err := auth.GenerateToken("some-other-secret", "picker-7", "a.petrova", "")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token reaches handler with claims", func(t *testing.T) {
		_, mockFulfillment, router := newTestServer(t)

		mockFulfillment.EXPECT().Profile(gomock.Any(), "picker-7").
			Return(&storage.Profile{ID: "picker-7", Username: "a.petrova"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		req.Header.Set("Authorization", authHeader(t))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestHandleGetProfile_UnknownUser(t *testing.T) {
	_, mockFulfillment, router := newTestServer(t)

	mockFulfillment.EXPECT().Profile(gomock.Any(), "picker-7").
		Return(nil, repository.ErrObjectNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", authHeader(t))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Not found","statusCode":404}`, rr.Body.String())
}

func TestHandleUpdateProfile(t *testing.T) {
	_, mockFulfillment, router := newTestServer(t)

	mockFulfillment.EXPECT().UpdateProfile(gomock.Any(), "picker-7", gomock.Any()).
		DoAndReturn(func(_ context.Context, userID string, patch storage.ProfilePatch) (*storage.Profile, error) {
			require.NotNil(t, patch.Name)
			assert.Equal(t, "Anna P.", *patch.Name)
			assert.Nil(t, patch.DeviceID)
			return &storage.Profile{ID: userID, Name: *patch.Name}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/api/users/profile",
		bytes.NewBufferString(`{"name":"Anna P."}`))
	req.Header.Set("Authorization", authHeader(t))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(m *mock_server.MockFulfillment)
		expectedStatus int
	}{
		{
			name: "successful login",
			body: `{"username":"a.petrova","password":"correct-horse"}`,
			setupMocks: func(m *mock_server.MockFulfillment) {
				m.EXPECT().Authenticate(gomock.Any(), "a.petrova", "correct-horse").
					Return(&storage.Profile{ID: "picker-7", Username: "a.petrova"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			body:           `{"username":`,
			setupMocks:     func(m *mock_server.MockFulfillment) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			body:           `{"username":"a.petrova"}`,
			setupMocks:     func(m *mock_server.MockFulfillment) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad credentials",
			body: `{"username":"a.petrova","password":"wrong"}`,
			setupMocks: func(m *mock_server.MockFulfillment) {
				m.EXPECT().Authenticate(gomock.Any(), "a.petrova", "wrong").
					Return(nil, repository.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, mockFulfillment, router := newTestServer(t)
			tc.setupMocks(mockFulfillment)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tc.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp struct {
					Success bool `json:"success"`
					Data    struct {
						Token string `json:"token"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Success)

				claims, err := auth.ValidateToken(testSecret, resp.Data.Token)
				require.NoError(t, err)
				assert.Equal(t, "picker-7", claims.UserID)
			}
		})
	}
}

func TestHandleCompleteOrder(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(m *mock_server.MockFulfillment)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "order completed",
			body: `{"order_id":"ord-1001","user_id":"picker-7","zone":"chilled","item_count":12}`,
			setupMocks: func(m *mock_server.MockFulfillment) {
				m.EXPECT().CompleteOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req storage.CompleteOrderRequest) (*repository.CompletedOrder, error) {
						assert.Equal(t, "ord-1001", req.OrderID)
						assert.Equal(t, 12, req.ItemCount)
						return &repository.CompletedOrder{ID: 1, OrderID: req.OrderID, Status: "completed"}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate completion",
			body: `{"order_id":"ord-1001","user_id":"picker-7","zone":"chilled","item_count":12}`,
			setupMocks: func(m *mock_server.MockFulfillment) {
				m.EXPECT().CompleteOrder(gomock.Any(), gomock.Any()).
					Return(nil, repository.ErrDuplicateOrderID)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"success":false,"message":"Order already completed","statusCode":409}`,
		},
		{
			name: "validation failure",
			body: `{"order_id":"ord-1001","user_id":"picker-7","zone":"chilled","item_count":0}`,
			setupMocks: func(m *mock_server.MockFulfillment) {
				m.EXPECT().CompleteOrder(gomock.Any(), gomock.Any()).
					Return(nil, &storage.ValidationError{Field: "item_count", Reason: "must be at least 1"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"invalid item_count: must be at least 1","statusCode":400}`,
		},
		{
			name:           "malformed body",
			body:           `{"order_id":`,
			setupMocks:     func(m *mock_server.MockFulfillment) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Invalid request body","statusCode":400}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, mockFulfillment, router := newTestServer(t)
			tc.setupMocks(mockFulfillment)

			req := httptest.NewRequest(http.MethodPost, "/api/orders/complete", bytes.NewBufferString(tc.body))
			req.Header.Set("Authorization", authHeader(t))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestHandleGetCompletedOrder(t *testing.T) {
	t.Run("order found", func(t *testing.T) {
		_, mockFulfillment, router := newTestServer(t)

		mockFulfillment.EXPECT().CompletedOrderByID(gomock.Any(), "ord-1001").
			Return(&repository.CompletedOrder{ID: 1, OrderID: "ord-1001", Status: "completed"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/ord-1001", nil)
		req.Header.Set("Authorization", authHeader(t))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("order not found", func(t *testing.T) {
		_, mockFulfillment, router := newTestServer(t)

		mockFulfillment.EXPECT().CompletedOrderByID(gomock.Any(), "ord-missing").
			Return(nil, repository.ErrObjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/ord-missing", nil)
		req.Header.Set("Authorization", authHeader(t))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"success":false,"message":"Not found","statusCode":404}`, rr.Body.String())
	})
}

func TestHandleListScans(t *testing.T) {
	t.Run("by barcode", func(t *testing.T) {
		_, mockFulfillment, router := newTestServer(t)

		mockFulfillment.EXPECT().ScansByBarcode(gomock.Any(), "4006381333931", 25).
			Return([]*repository.ScannedItem{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/scans?barcode=4006381333931&limit=25", nil)
		req.Header.Set("Authorization", authHeader(t))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing filter", func(t *testing.T) {
		_, _, router := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/scans", nil)
		req.Header.Set("Authorization", authHeader(t))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		_, _, router := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/scans?barcode=x&limit=nope", nil)
		req.Header.Set("Authorization", authHeader(t))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleRecordScan(t *testing.T) {
	t.Run("defaults user id from token", func(t *testing.T) {
		_, mockFulfillment, router := newTestServer(t)

		mockFulfillment.EXPECT().RecordScan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req storage.ScanRequest) (*repository.ScannedItem, error) {
				require.NotNil(t, req.UserID)
				assert.Equal(t, "picker-7", *req.UserID)
				return &repository.ScannedItem{BarcodeData: req.BarcodeData}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/scans",
			bytes.NewBufferString(`{"barcode_data":"4006381333931","barcode_type":"ean13"}`))
		req.Header.Set("Authorization", authHeader(t))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("explicit user id wins", func(t *testing.T) {
		_, mockFulfillment, router := newTestServer(t)

		mockFulfillment.EXPECT().RecordScan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req storage.ScanRequest) (*repository.ScannedItem, error) {
				require.NotNil(t, req.UserID)
				assert.Equal(t, "picker-9", *req.UserID)
				return &repository.ScannedItem{}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/scans",
			bytes.NewBufferString(`{"barcode_data":"x","user_id":"picker-9"}`))
		req.Header.Set("Authorization", authHeader(t))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})
}

func TestHandleBagScan(t *testing.T) {
	_, mockFulfillment, router := newTestServer(t)

	mockFulfillment.EXPECT().RecordBagScan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req storage.BagScanRequest) (*repository.Bag, *repository.ScannedItem, error) {
			assert.Equal(t, "BAG-0042", req.BagID)
			require.NotNil(t, req.UserID)
			assert.Equal(t, "picker-7", *req.UserID)
			return &repository.Bag{BagID: req.BagID, Status: "available"},
				&repository.ScannedItem{BarcodeData: req.BarcodeData}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/bags/scan",
		bytes.NewBufferString(`{"bag_id":"BAG-0042","barcode_data":"BAG-0042","barcode_type":"code128"}`))
	req.Header.Set("Authorization", authHeader(t))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Bag  *repository.Bag         `json:"bag"`
			Scan *repository.ScannedItem `json:"scan"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "BAG-0042", resp.Data.Bag.BagID)
}

func TestHandleUpdateBag(t *testing.T) {
	_, mockFulfillment, router := newTestServer(t)

	mockFulfillment.EXPECT().UpdateBag(gomock.Any(), "BAG-0042", gomock.Any()).
		DoAndReturn(func(_ context.Context, bagID string, patch storage.BagPatch) (*repository.Bag, error) {
			require.NotNil(t, patch.Status)
			assert.Equal(t, "packed", *patch.Status)
			assert.Nil(t, patch.OrderID)
			return &repository.Bag{BagID: bagID, Status: *patch.Status}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/api/bags/BAG-0042",
		bytes.NewBufferString(`{"status":"packed"}`))
	req.Header.Set("Authorization", authHeader(t))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleUserCompletedOrders(t *testing.T) {
	_, mockFulfillment, router := newTestServer(t)

	mockFulfillment.EXPECT().UserCompletedOrders(gomock.Any(), "picker-7", "partial", 2, 10).
		Return([]*repository.CompletedOrder{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/picker-7/orders?status=partial&page=2&limit=10", nil)
	req.Header.Set("Authorization", authHeader(t))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNotFoundHandler(t *testing.T) {
	_, _, router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Not found - /nope","statusCode":404}`, rr.Body.String())
}

func TestHealthz(t *testing.T) {
	_, _, router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"data":{"status":"ok"}}`, rr.Body.String())
}
