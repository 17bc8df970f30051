package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/pickmate/fulfillment-api/internal/db"
	"github.com/pickmate/fulfillment-api/internal/repository"
	"github.com/pickmate/fulfillment-api/internal/storage"
)

const uniqueViolation = "23505"

type CompletedOrderRepo struct {
	db db.DB
}

func NewCompletedOrderRepo(db db.DB) storage.CompletedOrderRepository {
	return &CompletedOrderRepo{db: db}
}

// Create inserts the terminal record of an order. A second insert with
// the same order_id hits the unique index and is reported as
// repository.ErrDuplicateOrderID, never as a silent overwrite.
func (r *CompletedOrderRepo) Create(ctx context.Context, order *repository.CompletedOrder) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO completed_orders (
            order_id, user_id, zone, status, item_count,
            target_time_mins, actual_pick_time_mins, bag_id, rack_location,
            rider_name, rider_phone, started_at, completed_at, rack_assigned_at,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
    `, order.OrderID, order.UserID, order.Zone, order.Status, order.ItemCount,
		order.TargetTimeMins, order.ActualPickTimeMins, order.BagID, order.RackLocation,
		order.RiderName, order.RiderPhone, order.StartedAt, order.CompletedAt, order.RackAssignedAt,
		order.CreatedAt, order.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateOrderID
		}
		return err
	}
	return nil
}

func (r *CompletedOrderRepo) GetByOrderID(ctx context.Context, orderID string) (*repository.CompletedOrder, error) {
	var order repository.CompletedOrder
	err := r.db.Get(ctx, &order, "SELECT * FROM completed_orders WHERE order_id = $1", orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *CompletedOrderRepo) GetByUserAndStatus(ctx context.Context, userID, status string, page, limit int) ([]*repository.CompletedOrder, error) {
	offset := (page - 1) * limit

	var orders []*repository.CompletedOrder
	err := r.db.Select(ctx, &orders, `
        SELECT * FROM completed_orders
        WHERE user_id = $1 AND status = $2
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `, userID, status, limit, offset)
	return orders, err
}

func (r *CompletedOrderRepo) GetByStatus(ctx context.Context, status string, page, limit int) ([]*repository.CompletedOrder, error) {
	offset := (page - 1) * limit

	var orders []*repository.CompletedOrder
	err := r.db.Select(ctx, &orders, `
        SELECT * FROM completed_orders
        WHERE status = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `, status, limit, offset)
	return orders, err
}
