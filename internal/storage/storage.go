//go:generate mockgen -source ./storage.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pickmate/fulfillment-api/internal/metrics"
	"github.com/pickmate/fulfillment-api/internal/repository"
)

type ScanRepository interface {
	Create(ctx context.Context, item *repository.ScannedItem) error
	GetByBarcode(ctx context.Context, barcode string, limit int) ([]*repository.ScannedItem, error)
	GetByOrderID(ctx context.Context, orderID string, limit int) ([]*repository.ScannedItem, error)
	GetByUserID(ctx context.Context, userID string, limit int) ([]*repository.ScannedItem, error)
	GetByDeviceID(ctx context.Context, deviceID string, limit int) ([]*repository.ScannedItem, error)
}

type CompletedOrderRepository interface {
	Create(ctx context.Context, order *repository.CompletedOrder) error
	GetByOrderID(ctx context.Context, orderID string) (*repository.CompletedOrder, error)
	GetByUserAndStatus(ctx context.Context, userID, status string, page, limit int) ([]*repository.CompletedOrder, error)
	GetByStatus(ctx context.Context, status string, page, limit int) ([]*repository.CompletedOrder, error)
}

type BagRepository interface {
	GetByID(ctx context.Context, bagID string) (*repository.Bag, error)
	Update(ctx context.Context, bag *repository.Bag) error
	TouchScan(ctx context.Context, bagID string, scannedAt time.Time) (*repository.Bag, error)
	GetActiveBags(ctx context.Context) ([]*repository.Bag, error)
}

type PickIssueRepository interface {
	Create(ctx context.Context, issue *repository.PickIssue) error
	GetByOrderID(ctx context.Context, orderID string) ([]*repository.PickIssue, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*repository.User, error)
	Authenticate(ctx context.Context, username, password string) (*repository.User, error)
	Update(ctx context.Context, user *repository.User) error
	EnsureSeedUser(ctx context.Context, username, password string) error
}

type BagCache interface {
	Get(bagID string) (*repository.Bag, bool)
	Set(bag *repository.Bag)
	Delete(bagID string)
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	defaultScanLimit = 50
)

// Fulfillment is the domain facade over the persistence layer. All
// enum/range/ordering validation happens here, before anything is
// handed to a repository.
type Fulfillment struct {
	scans    ScanRepository
	orders   CompletedOrderRepository
	bags     BagRepository
	issues   PickIssueRepository
	users    UserRepository
	bagCache BagCache
}

func NewFulfillment(
	scans ScanRepository,
	orders CompletedOrderRepository,
	bags BagRepository,
	issues PickIssueRepository,
	users UserRepository,
	bagCache BagCache,
) *Fulfillment {
	return &Fulfillment{
		scans:    scans,
		orders:   orders,
		bags:     bags,
		issues:   issues,
		users:    users,
		bagCache: bagCache,
	}
}

func newScannedItem(barcodeData, barcodeType string, orderID, userID, deviceID *string, metadata map[string]interface{}, scannedAt *time.Time) (*repository.ScannedItem, error) {
	if barcodeData == "" {
		return nil, &ValidationError{Field: "barcode_data", Reason: "required"}
	}

	symbology := BarcodeType(barcodeType)
	if barcodeType == "" {
		symbology = BarcodeOther
	} else if !ValidBarcodeType(symbology) {
		return nil, &ValidationError{Field: "barcode_type", Reason: fmt.Sprintf("unknown symbology %q", barcodeType)}
	}

	now := time.Now().UTC()
	at := now
	if scannedAt != nil {
		at = scannedAt.UTC()
	}

	var meta json.RawMessage
	if len(metadata) > 0 {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return nil, &ValidationError{Field: "metadata", Reason: "not serializable"}
		}
		meta = raw
	}

	return &repository.ScannedItem{
		ID:          uuid.New(),
		BarcodeData: barcodeData,
		BarcodeType: string(symbology),
		OrderID:     orderID,
		UserID:      userID,
		DeviceID:    deviceID,
		Metadata:    meta,
		ScannedAt:   at,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// RecordScan appends one immutable scan record. Business state (unknown
// order ids, repeated barcodes) is deliberately not checked: the scan
// log has audit semantics.
func (f *Fulfillment) RecordScan(ctx context.Context, req ScanRequest) (*repository.ScannedItem, error) {
	item, err := newScannedItem(req.BarcodeData, req.BarcodeType, req.OrderID, req.UserID, req.DeviceID, req.Metadata, req.ScannedAt)
	if err != nil {
		return nil, err
	}

	if err := f.scans.Create(ctx, item); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("record_scan").Inc()
		return nil, fmt.Errorf("failed to record scan: %w", err)
	}

	metrics.ScansRecordedTotal.Inc()
	return item, nil
}

func (f *Fulfillment) ScansByBarcode(ctx context.Context, barcode string, limit int) ([]*repository.ScannedItem, error) {
	if barcode == "" {
		return nil, &ValidationError{Field: "barcode", Reason: "required"}
	}
	return f.scans.GetByBarcode(ctx, barcode, normalizeScanLimit(limit))
}

func (f *Fulfillment) ScansByOrder(ctx context.Context, orderID string, limit int) ([]*repository.ScannedItem, error) {
	if orderID == "" {
		return nil, &ValidationError{Field: "order_id", Reason: "required"}
	}
	return f.scans.GetByOrderID(ctx, orderID, normalizeScanLimit(limit))
}

func (f *Fulfillment) ScansByUser(ctx context.Context, userID string, limit int) ([]*repository.ScannedItem, error) {
	if userID == "" {
		return nil, &ValidationError{Field: "user_id", Reason: "required"}
	}
	return f.scans.GetByUserID(ctx, userID, normalizeScanLimit(limit))
}

func (f *Fulfillment) ScansByDevice(ctx context.Context, deviceID string, limit int) ([]*repository.ScannedItem, error) {
	if deviceID == "" {
		return nil, &ValidationError{Field: "device_id", Reason: "required"}
	}
	return f.scans.GetByDeviceID(ctx, deviceID, normalizeScanLimit(limit))
}

// CompleteOrder persists the terminal record of an order. A duplicate
// order id surfaces as repository.ErrDuplicateOrderID so the caller can
// treat completion as already done.
func (f *Fulfillment) CompleteOrder(ctx context.Context, req CompleteOrderRequest) (*repository.CompletedOrder, error) {
	order, err := newCompletedOrder(req)
	if err != nil {
		return nil, err
	}

	if err := f.orders.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicateOrderID) {
			metrics.CompletionConflictsTotal.Inc()
			return nil, err
		}
		metrics.OperationErrorsTotal.WithLabelValues("complete_order").Inc()
		return nil, fmt.Errorf("failed to complete order %s: %w", req.OrderID, err)
	}

	metrics.OrdersCompletedTotal.Inc()
	return order, nil
}

func newCompletedOrder(req CompleteOrderRequest) (*repository.CompletedOrder, error) {
	if req.OrderID == "" {
		return nil, &ValidationError{Field: "order_id", Reason: "required"}
	}
	if req.UserID == "" {
		return nil, &ValidationError{Field: "user_id", Reason: "required"}
	}
	if !ValidZone(Zone(req.Zone)) {
		return nil, &ValidationError{Field: "zone", Reason: fmt.Sprintf("unknown zone %q", req.Zone)}
	}

	status := OrderStatus(req.Status)
	if req.Status == "" {
		status = StatusCompleted
	} else if !ValidOrderStatus(status) {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", req.Status)}
	}

	if req.ItemCount < 1 {
		return nil, &ValidationError{Field: "item_count", Reason: "must be at least 1"}
	}
	if req.TargetTimeMins != nil && *req.TargetTimeMins < 0 {
		return nil, &ValidationError{Field: "target_time_mins", Reason: "must not be negative"}
	}
	if req.ActualPickTimeMins != nil && *req.ActualPickTimeMins < 0 {
		return nil, &ValidationError{Field: "actual_pick_time_mins", Reason: "must not be negative"}
	}
	if req.StartedAt != nil && req.CompletedAt != nil && req.CompletedAt.Before(*req.StartedAt) {
		return nil, &ValidationError{Field: "completed_at", Reason: "precedes started_at"}
	}

	now := time.Now().UTC()
	return &repository.CompletedOrder{
		OrderID:            req.OrderID,
		UserID:             req.UserID,
		Zone:               req.Zone,
		Status:             string(status),
		ItemCount:          req.ItemCount,
		TargetTimeMins:     req.TargetTimeMins,
		ActualPickTimeMins: req.ActualPickTimeMins,
		BagID:              req.BagID,
		RackLocation:       req.RackLocation,
		RiderName:          req.RiderName,
		RiderPhone:         req.RiderPhone,
		StartedAt:          req.StartedAt,
		CompletedAt:        req.CompletedAt,
		RackAssignedAt:     req.RackAssignedAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

func (f *Fulfillment) CompletedOrderByID(ctx context.Context, orderID string) (*repository.CompletedOrder, error) {
	if orderID == "" {
		return nil, &ValidationError{Field: "order_id", Reason: "required"}
	}
	return f.orders.GetByOrderID(ctx, orderID)
}

func (f *Fulfillment) UserCompletedOrders(ctx context.Context, userID, status string, page, limit int) ([]*repository.CompletedOrder, error) {
	if userID == "" {
		return nil, &ValidationError{Field: "user_id", Reason: "required"}
	}
	if status == "" {
		status = string(StatusCompleted)
	} else if !ValidOrderStatus(OrderStatus(status)) {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}
	page, limit = normalizePage(page, limit)
	return f.orders.GetByUserAndStatus(ctx, userID, status, page, limit)
}

func (f *Fulfillment) CompletedOrdersByStatus(ctx context.Context, status string, page, limit int) ([]*repository.CompletedOrder, error) {
	if status == "" {
		status = string(StatusCompleted)
	} else if !ValidOrderStatus(OrderStatus(status)) {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}
	page, limit = normalizePage(page, limit)
	return f.orders.GetByStatus(ctx, status, page, limit)
}

// Bag reads through the in-process cache.
func (f *Fulfillment) Bag(ctx context.Context, bagID string) (*repository.Bag, error) {
	if bagID == "" {
		return nil, &ValidationError{Field: "bag_id", Reason: "required"}
	}

	if bag, ok := f.bagCache.Get(bagID); ok {
		return bag, nil
	}

	bag, err := f.bags.GetByID(ctx, bagID)
	if err != nil {
		return nil, err
	}
	f.bagCache.Set(bag)
	return bag, nil
}

// UpdateBag patches only the fields present in the request.
func (f *Fulfillment) UpdateBag(ctx context.Context, bagID string, patch BagPatch) (*repository.Bag, error) {
	if bagID == "" {
		return nil, &ValidationError{Field: "bag_id", Reason: "required"}
	}
	if patch.Status != nil && !ValidBagStatus(BagStatus(*patch.Status)) {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", *patch.Status)}
	}

	bag, err := f.bags.GetByID(ctx, bagID)
	if err != nil {
		return nil, err
	}

	if patch.OrderID != nil {
		bag.OrderID = patch.OrderID
	}
	if patch.Status != nil {
		bag.Status = *patch.Status
	}
	if patch.Zone != nil {
		bag.Zone = *patch.Zone
	}
	bag.UpdatedAt = time.Now().UTC()

	if err := f.bags.Update(ctx, bag); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_bag").Inc()
		return nil, fmt.Errorf("failed to update bag %s: %w", bagID, err)
	}

	f.bagCache.Set(bag)
	return bag, nil
}

// RecordBagScan appends a scan record tagged with the bag id and stamps
// the bag's last_scanned_at, creating the bag row on first sight.
func (f *Fulfillment) RecordBagScan(ctx context.Context, req BagScanRequest) (*repository.Bag, *repository.ScannedItem, error) {
	if req.BagID == "" {
		return nil, nil, &ValidationError{Field: "bag_id", Reason: "required"}
	}

	metadata := make(map[string]interface{}, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	metadata["bag_id"] = req.BagID

	item, err := newScannedItem(req.BarcodeData, req.BarcodeType, nil, req.UserID, req.DeviceID, metadata, req.ScannedAt)
	if err != nil {
		return nil, nil, err
	}

	if err := f.scans.Create(ctx, item); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("bag_scan").Inc()
		return nil, nil, fmt.Errorf("failed to record bag scan: %w", err)
	}
	metrics.ScansRecordedTotal.Inc()

	bag, err := f.bags.TouchScan(ctx, req.BagID, item.ScannedAt)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("bag_scan").Inc()
		return nil, nil, fmt.Errorf("failed to stamp bag %s: %w", req.BagID, err)
	}

	f.bagCache.Set(bag)
	return bag, item, nil
}

func (f *Fulfillment) ReportPickIssue(ctx context.Context, req PickIssueRequest) (*repository.PickIssue, error) {
	if req.OrderID == "" {
		return nil, &ValidationError{Field: "order_id", Reason: "required"}
	}
	if req.UserID == "" {
		return nil, &ValidationError{Field: "user_id", Reason: "required"}
	}
	if !ValidIssueReason(IssueReason(req.Reason)) {
		return nil, &ValidationError{Field: "reason", Reason: fmt.Sprintf("unknown reason %q", req.Reason)}
	}

	issue := &repository.PickIssue{
		ID:        uuid.New(),
		OrderID:   req.OrderID,
		UserID:    req.UserID,
		Reason:    req.Reason,
		Details:   req.Details,
		CreatedAt: time.Now().UTC(),
	}

	if err := f.issues.Create(ctx, issue); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("report_pick_issue").Inc()
		return nil, fmt.Errorf("failed to report pick issue: %w", err)
	}

	metrics.PickIssuesTotal.Inc()
	return issue, nil
}

func (f *Fulfillment) Profile(ctx context.Context, userID string) (*Profile, error) {
	user, err := f.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfile(user), nil
}

// UpdateProfile patches name and device id; absent fields stay untouched.
func (f *Fulfillment) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*Profile, error) {
	user, err := f.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.DeviceID != nil {
		user.DeviceID = *patch.DeviceID
	}
	user.UpdatedAt = time.Now().UTC()

	if err := f.users.Update(ctx, user); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_profile").Inc()
		return nil, fmt.Errorf("failed to update profile for %s: %w", userID, err)
	}
	return toProfile(user), nil
}

func (f *Fulfillment) Authenticate(ctx context.Context, username, password string) (*Profile, error) {
	user, err := f.users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return toProfile(user), nil
}

func toProfile(user *repository.User) *Profile {
	return &Profile{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		DeviceID:  user.DeviceID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func normalizeScanLimit(limit int) int {
	if limit < 1 {
		return defaultScanLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}
