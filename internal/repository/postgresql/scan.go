package postgresql

import (
	"context"

	"github.com/pickmate/fulfillment-api/internal/db"
	"github.com/pickmate/fulfillment-api/internal/repository"
	"github.com/pickmate/fulfillment-api/internal/storage"
)

// ScanRepo is the append-only scan log. No update or delete statements
// exist here on purpose.
type ScanRepo struct {
	db db.DB
}

func NewScanRepo(db db.DB) storage.ScanRepository {
	return &ScanRepo{db: db}
}

func (r *ScanRepo) Create(ctx context.Context, item *repository.ScannedItem) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO scanned_items (
            id, barcode_data, barcode_type, order_id, user_id, device_id, metadata, scanned_at, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, item.ID, item.BarcodeData, item.BarcodeType, item.OrderID, item.UserID, item.DeviceID, item.Metadata, item.ScannedAt, item.CreatedAt, item.UpdatedAt)
	return err
}

func (r *ScanRepo) GetByBarcode(ctx context.Context, barcode string, limit int) ([]*repository.ScannedItem, error) {
	var items []*repository.ScannedItem
	err := r.db.Select(ctx, &items, `
        SELECT * FROM scanned_items
        WHERE barcode_data = $1
        ORDER BY scanned_at DESC
        LIMIT $2
    `, barcode, limit)
	return items, err
}

func (r *ScanRepo) GetByOrderID(ctx context.Context, orderID string, limit int) ([]*repository.ScannedItem, error) {
	var items []*repository.ScannedItem
	err := r.db.Select(ctx, &items, `
        SELECT * FROM scanned_items
        WHERE order_id = $1
        ORDER BY scanned_at DESC
        LIMIT $2
    `, orderID, limit)
	return items, err
}

func (r *ScanRepo) GetByUserID(ctx context.Context, userID string, limit int) ([]*repository.ScannedItem, error) {
	var items []*repository.ScannedItem
	err := r.db.Select(ctx, &items, `
        SELECT * FROM scanned_items
        WHERE user_id = $1
        ORDER BY scanned_at DESC
        LIMIT $2
    `, userID, limit)
	return items, err
}

func (r *ScanRepo) GetByDeviceID(ctx context.Context, deviceID string, limit int) ([]*repository.ScannedItem, error) {
	var items []*repository.ScannedItem
	err := r.db.Select(ctx, &items, `
        SELECT * FROM scanned_items
        WHERE device_id = $1
        ORDER BY scanned_at DESC
        LIMIT $2
    `, deviceID, limit)
	return items, err
}
