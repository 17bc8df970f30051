package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/pickmate/fulfillment-api/internal/db"
	"github.com/pickmate/fulfillment-api/internal/repository"
	"github.com/pickmate/fulfillment-api/internal/storage"
)

type BagRepo struct {
	db db.DB
}

func NewBagRepo(db db.DB) storage.BagRepository {
	return &BagRepo{db: db}
}

func (r *BagRepo) GetByID(ctx context.Context, bagID string) (*repository.Bag, error) {
	var bag repository.Bag
	err := r.db.Get(ctx, &bag, "SELECT * FROM bags WHERE bag_id = $1", bagID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &bag, nil
}

func (r *BagRepo) Update(ctx context.Context, bag *repository.Bag) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE bags
        SET
            order_id = $1,
            status = $2,
            zone = $3,
            last_scanned_at = $4,
            updated_at = $5
        WHERE bag_id = $6
    `, bag.OrderID, bag.Status, bag.Zone, bag.LastScannedAt, bag.UpdatedAt, bag.BagID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *BagRepo) GetActiveBags(ctx context.Context) ([]*repository.Bag, error) {
	var bags []*repository.Bag
	err := r.db.Select(ctx, &bags, `
        SELECT * FROM bags
        WHERE status <> 'dispatched'
        ORDER BY created_at ASC
    `)
	return bags, err
}

// TouchScan stamps the bag's last scan time, creating the row on first
// sight so a freshly printed bag can be scanned before any other
// registration step.
func (r *BagRepo) TouchScan(ctx context.Context, bagID string, scannedAt time.Time) (*repository.Bag, error) {
	now := time.Now().UTC()
	var bag repository.Bag
	err := r.db.Get(ctx, &bag, `
        INSERT INTO bags (bag_id, status, last_scanned_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $4)
        ON CONFLICT (bag_id) DO UPDATE
        SET last_scanned_at = EXCLUDED.last_scanned_at,
            updated_at = EXCLUDED.updated_at
        RETURNING *
    `, bagID, "available", scannedAt, now)
	if err != nil {
		return nil, err
	}
	return &bag, nil
}
