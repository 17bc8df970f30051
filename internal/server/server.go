//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pickmate/fulfillment-api/internal/auth"
	"github.com/pickmate/fulfillment-api/internal/repository"
	"github.com/pickmate/fulfillment-api/internal/storage"
)

// Fulfillment is the slice of the domain facade the HTTP layer needs.
type Fulfillment interface {
	RecordScan(ctx context.Context, req storage.ScanRequest) (*repository.ScannedItem, error)
	ScansByBarcode(ctx context.Context, barcode string, limit int) ([]*repository.ScannedItem, error)
	ScansByOrder(ctx context.Context, orderID string, limit int) ([]*repository.ScannedItem, error)
	ScansByUser(ctx context.Context, userID string, limit int) ([]*repository.ScannedItem, error)
	ScansByDevice(ctx context.Context, deviceID string, limit int) ([]*repository.ScannedItem, error)
	CompleteOrder(ctx context.Context, req storage.CompleteOrderRequest) (*repository.CompletedOrder, error)
	CompletedOrderByID(ctx context.Context, orderID string) (*repository.CompletedOrder, error)
	UserCompletedOrders(ctx context.Context, userID, status string, page, limit int) ([]*repository.CompletedOrder, error)
	CompletedOrdersByStatus(ctx context.Context, status string, page, limit int) ([]*repository.CompletedOrder, error)
	Bag(ctx context.Context, bagID string) (*repository.Bag, error)
	UpdateBag(ctx context.Context, bagID string, patch storage.BagPatch) (*repository.Bag, error)
	RecordBagScan(ctx context.Context, req storage.BagScanRequest) (*repository.Bag, *repository.ScannedItem, error)
	ReportPickIssue(ctx context.Context, req storage.PickIssueRequest) (*repository.PickIssue, error)
	Profile(ctx context.Context, userID string) (*storage.Profile, error)
	UpdateProfile(ctx context.Context, userID string, patch storage.ProfilePatch) (*storage.Profile, error)
	Authenticate(ctx context.Context, username, password string) (*storage.Profile, error)
}

type Config struct {
	Port      string
	JWTSecret string
}

type Server struct {
	fulfillment  Fulfillment
	config       Config
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(fulfillment Fulfillment, config Config, auditManager *AuditManager, logger *zap.Logger) *Server {
	return &Server{
		fulfillment:  fulfillment,
		config:       config,
		logger:       logger,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", s.config.Port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.AuditManager.Shutdown(ctx)
	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Not found - %s", r.URL.Path))
	})

	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(s.protectMiddleware, s.auditLogMiddleware)

	protected.HandleFunc("/users/profile", s.handleGetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/users/profile", s.handleUpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/users/{userId}/orders", s.handleUserCompletedOrders).Methods(http.MethodGet)

	protected.HandleFunc("/bags/scan", s.handleBagScan).Methods(http.MethodPost)
	protected.HandleFunc("/bags/{bagId}", s.handleGetBag).Methods(http.MethodGet)
	protected.HandleFunc("/bags/{bagId}", s.handleUpdateBag).Methods(http.MethodPut)

	protected.HandleFunc("/picks/report-issue", s.handleReportPickIssue).Methods(http.MethodPost)

	protected.HandleFunc("/scans", s.handleRecordScan).Methods(http.MethodPost)
	protected.HandleFunc("/scans", s.handleListScans).Methods(http.MethodGet)

	protected.HandleFunc("/orders/complete", s.handleCompleteOrder).Methods(http.MethodPost)
	protected.HandleFunc("/orders/{orderId}", s.handleGetCompletedOrder).Methods(http.MethodGet)
	protected.HandleFunc("/orders", s.handleCompletedOrdersByStatus).Methods(http.MethodGet)

	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&loginRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if loginRequest.Username == "" || loginRequest.Password == "" {
		respondError(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	profile, err := s.fulfillment.Authenticate(r.Context(), loginRequest.Username, loginRequest.Password)
	if err != nil {
		s.respondFailure(w, err)
		return
	}

	token, err := auth.GenerateToken(s.config.JWTSecret, profile.ID, profile.Username, profile.DeviceID)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  profile,
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	profile, err := s.fulfillment.Profile(r.Context(), claims.UserID)
	if err != nil {
		s.respondFailure(w, err)
		return
	}

	respondData(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var patch storage.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := s.fulfillment.UpdateProfile(r.Context(), claims.UserID, patch)
	if err != nil {
		s.respondFailure(w, err)
		return
	}

	respondData(w, http.StatusOK, profile)
}

func (s *Server) handleUserCompletedOrders(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	status := r.URL.Query().Get("status")

	page, limit, err := parsePagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	orders, err := s.fulfillment.UserCompletedOrders(r.Context(), userID, status, page, limit)
	if err != nil {
		s.respondFailure(w, err)
		return
	}

	respondData(w, http.StatusOK, orders)
}

func (s *Server) handleBagScan(w http.ResponseWriter, r *http.Request) {
	var scanRequest storage.BagScanRequest
	if err := json.NewDecoder(r.Body).Decode(&scanRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if scanRequest.UserID == nil {
		claims := GetClaims(r.Context())
		scanRequest.UserID = &claims.UserID
	}

	bag, item, err := s.fulfillment.RecordBagScan(r.Context(), scanRequest)
	if err != nil {
		s.respondFailure(w, err)
		return
	}

	respondData(w, http.StatusCreated, map[string]interface{}{
		"bag":  bag,
		"scan": item,
	})
}

func (s *Server) handleGetBag(w http.ResponseWriter, r *http.Request) {
	bagID := mux.Vars(r)["bagId"]

	bag, err := s.fulfillment.Bag(r.Context(), bagID)
	if err != nil {
		s.respondFailure(w, err)
		return
	}

	respondData(w, http.StatusOK, bag)
}

func (s *Server) handleUpdateBag(w http.ResponseWriter, r *http.Request) {
	bagID := mux.Vars(r)["bagId"]

	var patch storage.BagPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bag, err := s.fulfillment.UpdateBag(r.Context(), bagID, patch)
	if err != nil {
		s.respondFailure(w, err)
		return
	}

	respondData(w, http.StatusOK, bag)
}

func (s *Server) handleReportPickIssue(w http.ResponseWriter, r *http.Request) {
	var issueRequest storage.PickIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&issueRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if issueRequest.UserID == "" {
		issueRequest.UserID = GetClaims(r.Context()).UserID
	}

	issue, err := s.fulfillment.ReportPickIssue(r.Context(), issueRequest)
	if err != nil {
		s.respondFailure(w, err)
		return
	}

	respondData(w, http.StatusCreated, issue)
}

func (s *Server) handleRecordScan(w http.ResponseWriter, r *http.Request) {
	var scanRequest storage.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&scanRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if scanRequest.UserID == nil {
		claims := GetClaims(r.Context())
		scanRequest.UserID = &claims.UserID
	}

	item, err := s.fulfillment.RecordScan(r.Context(), scanRequest)
	if err != nil {
		s.respondFailure(w, err)
		return
	}

	respondData(w, http.StatusCreated, item)
}

func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'limit' parameter")
			return
		}
	}

	var (
		items []*repository.ScannedItem
		err   error
	)

	query := r.URL.Query()
	switch {
	case query.Get("barcode") != "":
		items, err = s.fulfillment.ScansByBarcode(r.Context(), query.Get("barcode"), limit)
	case query.Get("order_id") != "":
		items, err = s.fulfillment.ScansByOrder(r.Context(), query.Get("order_id"), limit)
	case query.Get("user_id") != "":
		items, err = s.fulfillment.ScansByUser(r.Context(), query.Get("user_id"), limit)
	case query.Get("device_id") != "":
		items, err = s.fulfillment.ScansByDevice(r.Context(), query.Get("device_id"), limit)
	default:
		respondError(w, http.StatusBadRequest, "Missing one of barcode, order_id, user_id, device_id")
		return
	}

	if err != nil {
		s.respondFailure(w, err)
		return
	}

	respondData(w, http.StatusOK, items)
}

func (s *Server) handleCompleteOrder(w http.ResponseWriter, r *http.Request) {
	var completeRequest storage.CompleteOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&completeRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := s.fulfillment.CompleteOrder(r.Context(), completeRequest)
	if err != nil {
		s.respondFailure(w, err)
		return
	}

	respondData(w, http.StatusCreated, order)
}

func (s *Server) handleGetCompletedOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	order, err := s.fulfillment.CompletedOrderByID(r.Context(), orderID)
	if err != nil {
		s.respondFailure(w, err)
		return
	}

	respondData(w, http.StatusOK, order)
}

func (s *Server) handleCompletedOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	page, limit, err := parsePagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	orders, err := s.fulfillment.CompletedOrdersByStatus(r.Context(), status, page, limit)
	if err != nil {
		s.respondFailure(w, err)
		return
	}

	respondData(w, http.StatusOK, orders)
}

func parsePagination(r *http.Request) (int, int, error) {
	page := 0
	limit := 0

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		var err error
		page, err = strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			return 0, 0, errors.New("Invalid value for 'page' parameter")
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return 0, 0, errors.New("Invalid value for 'limit' parameter")
		}
	}

	return page, limit, nil
}
