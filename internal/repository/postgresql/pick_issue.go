package postgresql

import (
	"context"

	"github.com/pickmate/fulfillment-api/internal/db"
	"github.com/pickmate/fulfillment-api/internal/repository"
	"github.com/pickmate/fulfillment-api/internal/storage"
)

type PickIssueRepo struct {
	db db.DB
}

func NewPickIssueRepo(db db.DB) storage.PickIssueRepository {
	return &PickIssueRepo{db: db}
}

func (r *PickIssueRepo) Create(ctx context.Context, issue *repository.PickIssue) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO pick_issues (
            id, order_id, user_id, reason, details, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `, issue.ID, issue.OrderID, issue.UserID, issue.Reason, issue.Details, issue.CreatedAt)
	return err
}

func (r *PickIssueRepo) GetByOrderID(ctx context.Context, orderID string) ([]*repository.PickIssue, error) {
	var issues []*repository.PickIssue
	err := r.db.Select(ctx, &issues, `
        SELECT * FROM pick_issues
        WHERE order_id = $1
        ORDER BY created_at DESC
    `, orderID)
	return issues, err
}
