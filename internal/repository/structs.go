package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound     = errors.New("not found")
	ErrDuplicateOrderID   = errors.New("order already completed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type ScannedItem struct {
	ID          uuid.UUID       `db:"id"`
	BarcodeData string          `db:"barcode_data"`
	BarcodeType string          `db:"barcode_type"`
	OrderID     *string         `db:"order_id"`
	UserID      *string         `db:"user_id"`
	DeviceID    *string         `db:"device_id"`
	Metadata    json.RawMessage `db:"metadata"`
	ScannedAt   time.Time       `db:"scanned_at"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type CompletedOrder struct {
	ID                 int64      `db:"id"`
	OrderID            string     `db:"order_id"`
	UserID             string     `db:"user_id"`
	Zone               string     `db:"zone"`
	Status             string     `db:"status"`
	ItemCount          int        `db:"item_count"`
	TargetTimeMins     *int       `db:"target_time_mins"`
	ActualPickTimeMins *int       `db:"actual_pick_time_mins"`
	BagID              *string    `db:"bag_id"`
	RackLocation       *string    `db:"rack_location"`
	RiderName          *string    `db:"rider_name"`
	RiderPhone         *string    `db:"rider_phone"`
	StartedAt          *time.Time `db:"started_at"`
	CompletedAt        *time.Time `db:"completed_at"`
	RackAssignedAt     *time.Time `db:"rack_assigned_at"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

type Bag struct {
	BagID         string     `db:"bag_id"`
	OrderID       *string    `db:"order_id"`
	Status        string     `db:"status"`
	Zone          string     `db:"zone"`
	LastScannedAt *time.Time `db:"last_scanned_at"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

type PickIssue struct {
	ID        uuid.UUID `db:"id"`
	OrderID   string    `db:"order_id"`
	UserID    string    `db:"user_id"`
	Reason    string    `db:"reason"`
	Details   string    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}

type User struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	Name      string    `db:"name"`
	DeviceID  string    `db:"device_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
