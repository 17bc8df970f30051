package storage

import (
	"fmt"
	"time"
)

type BarcodeType string

const (
	BarcodeQR      BarcodeType = "qr"
	BarcodeEAN13   BarcodeType = "ean13"
	BarcodeEAN8    BarcodeType = "ean8"
	BarcodeCode128 BarcodeType = "code128"
	BarcodeCode39  BarcodeType = "code39"
	BarcodeUPC     BarcodeType = "upc"
	BarcodeOther   BarcodeType = "other"
)

func ValidBarcodeType(t BarcodeType) bool {
	switch t {
	case BarcodeQR, BarcodeEAN13, BarcodeEAN8, BarcodeCode128, BarcodeCode39, BarcodeUPC, BarcodeOther:
		return true
	}
	return false
}

type Zone string

const (
	ZoneAmbient Zone = "ambient"
	ZoneChilled Zone = "chilled"
	ZoneFrozen  Zone = "frozen"
	ZoneProduce Zone = "produce"
	ZoneBulk    Zone = "bulk"
)

func ValidZone(z Zone) bool {
	switch z {
	case ZoneAmbient, ZoneChilled, ZoneFrozen, ZoneProduce, ZoneBulk:
		return true
	}
	return false
}

type OrderStatus string

const (
	StatusCompleted OrderStatus = "completed"
	StatusPartial   OrderStatus = "partial"
	StatusCancelled OrderStatus = "cancelled"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusCompleted, StatusPartial, StatusCancelled:
		return true
	}
	return false
}

type BagStatus string

const (
	BagAvailable  BagStatus = "available"
	BagAssigned   BagStatus = "assigned"
	BagPacked     BagStatus = "packed"
	BagRacked     BagStatus = "racked"
	BagDispatched BagStatus = "dispatched"
)

func ValidBagStatus(s BagStatus) bool {
	switch s {
	case BagAvailable, BagAssigned, BagPacked, BagRacked, BagDispatched:
		return true
	}
	return false
}

type IssueReason string

const (
	IssueMissingItem       IssueReason = "missing_item"
	IssueDamagedItem       IssueReason = "damaged_item"
	IssueWrongItem         IssueReason = "wrong_item"
	IssueBarcodeUnreadable IssueReason = "barcode_unreadable"
	IssueOther             IssueReason = "other"
)

func ValidIssueReason(r IssueReason) bool {
	switch r {
	case IssueMissingItem, IssueDamagedItem, IssueWrongItem, IssueBarcodeUnreadable, IssueOther:
		return true
	}
	return false
}

// ValidationError reports a request field that failed construction-time
// validation. Handlers map it to a 400 response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type ScanRequest struct {
	BarcodeData string                 `json:"barcode_data"`
	BarcodeType string                 `json:"barcode_type"`
	OrderID     *string                `json:"order_id"`
	UserID      *string                `json:"user_id"`
	DeviceID    *string                `json:"device_id"`
	Metadata    map[string]interface{} `json:"metadata"`
	ScannedAt   *time.Time             `json:"scanned_at"`
}

type CompleteOrderRequest struct {
	OrderID            string     `json:"order_id"`
	UserID             string     `json:"user_id"`
	Zone               string     `json:"zone"`
	Status             string     `json:"status"`
	ItemCount          int        `json:"item_count"`
	TargetTimeMins     *int       `json:"target_time_mins"`
	ActualPickTimeMins *int       `json:"actual_pick_time_mins"`
	BagID              *string    `json:"bag_id"`
	RackLocation       *string    `json:"rack_location"`
	RiderName          *string    `json:"rider_name"`
	RiderPhone         *string    `json:"rider_phone"`
	StartedAt          *time.Time `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	RackAssignedAt     *time.Time `json:"rack_assigned_at"`
}

type BagScanRequest struct {
	BagID       string                 `json:"bag_id"`
	BarcodeData string                 `json:"barcode_data"`
	BarcodeType string                 `json:"barcode_type"`
	UserID      *string                `json:"user_id"`
	DeviceID    *string                `json:"device_id"`
	Metadata    map[string]interface{} `json:"metadata"`
	ScannedAt   *time.Time             `json:"scanned_at"`
}

// BagPatch carries the fields a bag update may touch. Nil means
// "leave untouched".
type BagPatch struct {
	OrderID *string `json:"order_id"`
	Status  *string `json:"status"`
	Zone    *string `json:"zone"`
}

type PickIssueRequest struct {
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
	Reason  string `json:"reason"`
	Details string `json:"details"`
}

type ProfilePatch struct {
	Name     *string `json:"name"`
	DeviceID *string `json:"device_id"`
}

// Profile is a user row with the credential stripped.
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	DeviceID  string    `json:"device_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
