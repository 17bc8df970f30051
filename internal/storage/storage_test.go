package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pickmate/fulfillment-api/internal/repository"
	"github.com/pickmate/fulfillment-api/internal/storage"
	mock_storage "github.com/pickmate/fulfillment-api/internal/storage/mocks"
)

type fulfillmentMocks struct {
	scans  *mock_storage.MockScanRepository
	orders *mock_storage.MockCompletedOrderRepository
	bags   *mock_storage.MockBagRepository
	issues *mock_storage.MockPickIssueRepository
	users  *mock_storage.MockUserRepository
	cache  *mock_storage.MockBagCache
}

func newFulfillment(ctrl *gomock.Controller) (*storage.Fulfillment, fulfillmentMocks) {
	m := fulfillmentMocks{
		scans:  mock_storage.NewMockScanRepository(ctrl),
		orders: mock_storage.NewMockCompletedOrderRepository(ctrl),
		bags:   mock_storage.NewMockBagRepository(ctrl),
		issues: mock_storage.NewMockPickIssueRepository(ctrl),
		users:  mock_storage.NewMockUserRepository(ctrl),
		cache:  mock_storage.NewMockBagCache(ctrl),
	}
	f := storage.NewFulfillment(m.scans, m.orders, m.bags, m.issues, m.users, m.cache)
	return f, m
}

func strPtr(s string) *string        { return &s }
func intPtr(i int) *int              { return &i }
func timePtr(t time.Time) *time.Time { return &t }

func TestFulfillment_RecordScan(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults omitted symbology to other", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		var created *repository.ScannedItem
		m.scans.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *repository.ScannedItem) error {
				created = item
				return nil
			})

		item, err := f.RecordScan(ctx, storage.ScanRequest{BarcodeData: "4006381333931"})
		require.NoError(t, err)
		assert.Equal(t, "other", item.BarcodeType)
		assert.Equal(t, created, item)
		assert.NotEqual(t, uuid.Nil, item.ID)
		assert.False(t, item.ScannedAt.IsZero())
	})

	t.Run("rejects unknown symbology", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, _ := newFulfillment(ctrl)

		item, err := f.RecordScan(ctx, storage.ScanRequest{
			BarcodeData: "4006381333931",
			BarcodeType: "pdf417",
		})
		assert.Nil(t, item)
		var vErr *storage.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "barcode_type", vErr.Field)
	})

	t.Run("rejects empty barcode data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, _ := newFulfillment(ctrl)

		item, err := f.RecordScan(ctx, storage.ScanRequest{BarcodeType: "qr"})
		assert.Nil(t, item)
		var vErr *storage.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "barcode_data", vErr.Field)
	})

	t.Run("keeps caller supplied scan time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		m.scans.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		item, err := f.RecordScan(ctx, storage.ScanRequest{
			BarcodeData: "qr-payload",
			BarcodeType: "qr",
			ScannedAt:   timePtr(at),
			Metadata:    map[string]interface{}{"aisle": "A3"},
		})
		require.NoError(t, err)
		assert.Equal(t, at, item.ScannedAt)

		var meta map[string]interface{}
		require.NoError(t, json.Unmarshal(item.Metadata, &meta))
		assert.Equal(t, "A3", meta["aisle"])
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		repoErr := errors.New("connection reset")
		m.scans.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repoErr)

		item, err := f.RecordScan(ctx, storage.ScanRequest{BarcodeData: "x"})
		assert.Nil(t, item)
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestFulfillment_CompleteOrder(t *testing.T) {
	ctx := context.Background()

	validReq := func() storage.CompleteOrderRequest {
		return storage.CompleteOrderRequest{
			OrderID:   "ord-1001",
			UserID:    "picker-7",
			Zone:      "chilled",
			ItemCount: 12,
		}
	}

	t.Run("defaults omitted status to completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *repository.CompletedOrder) error {
				assert.Equal(t, "completed", order.Status)
				return nil
			})

		order, err := f.CompleteOrder(ctx, validReq())
		require.NoError(t, err)
		assert.Equal(t, "completed", order.Status)
	})

	t.Run("duplicate order id passes through untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(repository.ErrDuplicateOrderID)

		order, err := f.CompleteOrder(ctx, validReq())
		assert.Nil(t, order)
		assert.ErrorIs(t, err, repository.ErrDuplicateOrderID)
	})

	t.Run("rejects zero item count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, _ := newFulfillment(ctrl)

		req := validReq()
		req.ItemCount = 0

		order, err := f.CompleteOrder(ctx, req)
		assert.Nil(t, order)
		var vErr *storage.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "item_count", vErr.Field)
	})

	t.Run("rejects unknown zone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, _ := newFulfillment(ctrl)

		req := validReq()
		req.Zone = "mezzanine"

		order, err := f.CompleteOrder(ctx, req)
		assert.Nil(t, order)
		var vErr *storage.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "zone", vErr.Field)
	})

	t.Run("rejects completion preceding start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, _ := newFulfillment(ctrl)

		started := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		req := validReq()
		req.StartedAt = timePtr(started)
		req.CompletedAt = timePtr(started.Add(-time.Minute))

		order, err := f.CompleteOrder(ctx, req)
		assert.Nil(t, order)
		var vErr *storage.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "completed_at", vErr.Field)
	})

	t.Run("rejects negative pick time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, _ := newFulfillment(ctrl)

		req := validReq()
		req.ActualPickTimeMins = intPtr(-5)

		order, err := f.CompleteOrder(ctx, req)
		assert.Nil(t, order)
		var vErr *storage.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "actual_pick_time_mins", vErr.Field)
	})
}

func TestFulfillment_UserCompletedOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status and normalizes paging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		testOrders := []*repository.CompletedOrder{{ID: 1, OrderID: "ord-1001"}}
		m.orders.EXPECT().GetByUserAndStatus(gomock.Any(), "picker-7", "completed", 1, 20).
			Return(testOrders, nil)

		orders, err := f.UserCompletedOrders(ctx, "picker-7", "", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, testOrders, orders)
	})

	t.Run("caps oversized limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		m.orders.EXPECT().GetByUserAndStatus(gomock.Any(), "picker-7", "partial", 2, 100).
			Return(nil, nil)

		_, err := f.UserCompletedOrders(ctx, "picker-7", "partial", 2, 500)
		assert.NoError(t, err)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, _ := newFulfillment(ctrl)

		orders, err := f.UserCompletedOrders(ctx, "picker-7", "archived", 1, 20)
		assert.Nil(t, orders)
		var vErr *storage.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "status", vErr.Field)
	})
}

func TestFulfillment_Bag(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		cached := &repository.Bag{BagID: "BAG-0042", Status: "assigned"}
		m.cache.EXPECT().Get("BAG-0042").Return(cached, true)

		bag, err := f.Bag(ctx, "BAG-0042")
		require.NoError(t, err)
		assert.Equal(t, cached, bag)
	})

	t.Run("cache miss reads through and backfills", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		stored := &repository.Bag{BagID: "BAG-0042", Status: "packed"}
		m.cache.EXPECT().Get("BAG-0042").Return(nil, false)
		m.bags.EXPECT().GetByID(gomock.Any(), "BAG-0042").Return(stored, nil)
		m.cache.EXPECT().Set(stored)

		bag, err := f.Bag(ctx, "BAG-0042")
		require.NoError(t, err)
		assert.Equal(t, stored, bag)
	})

	t.Run("unknown bag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		m.cache.EXPECT().Get("BAG-missing").Return(nil, false)
		m.bags.EXPECT().GetByID(gomock.Any(), "BAG-missing").
			Return(nil, repository.ErrObjectNotFound)

		bag, err := f.Bag(ctx, "BAG-missing")
		assert.Nil(t, bag)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestFulfillment_UpdateBag(t *testing.T) {
	ctx := context.Background()

	t.Run("patches only present fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		orderID := "ord-1001"
		current := &repository.Bag{
			BagID:   "BAG-0042",
			OrderID: &orderID,
			Status:  "assigned",
			Zone:    "chilled",
		}

		m.bags.EXPECT().GetByID(gomock.Any(), "BAG-0042").Return(current, nil)
		m.bags.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, bag *repository.Bag) error {
				assert.Equal(t, "packed", bag.Status)
				assert.Equal(t, &orderID, bag.OrderID) // untouched
				assert.Equal(t, "chilled", bag.Zone)   // untouched
				return nil
			})
		m.cache.EXPECT().Set(gomock.Any())

		bag, err := f.UpdateBag(ctx, "BAG-0042", storage.BagPatch{Status: strPtr("packed")})
		require.NoError(t, err)
		assert.Equal(t, "packed", bag.Status)
	})

	t.Run("rejects unknown bag status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, _ := newFulfillment(ctrl)

		bag, err := f.UpdateBag(ctx, "BAG-0042", storage.BagPatch{Status: strPtr("lost")})
		assert.Nil(t, bag)
		var vErr *storage.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "status", vErr.Field)
	})
}

func TestFulfillment_RecordBagScan(t *testing.T) {
	ctx := context.Background()

	t.Run("tags scan with bag id and stamps bag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		stamped := &repository.Bag{BagID: "BAG-0042", Status: "available"}

		m.scans.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *repository.ScannedItem) error {
				var meta map[string]interface{}
				require.NoError(t, json.Unmarshal(item.Metadata, &meta))
				assert.Equal(t, "BAG-0042", meta["bag_id"])
				return nil
			})
		m.bags.EXPECT().TouchScan(gomock.Any(), "BAG-0042", gomock.Any()).Return(stamped, nil)
		m.cache.EXPECT().Set(stamped)

		bag, item, err := f.RecordBagScan(ctx, storage.BagScanRequest{
			BagID:       "BAG-0042",
			BarcodeData: "BAG-0042",
			BarcodeType: "code128",
		})
		require.NoError(t, err)
		assert.Equal(t, stamped, bag)
		assert.Equal(t, "code128", item.BarcodeType)
	})

	t.Run("rejects missing bag id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, _ := newFulfillment(ctrl)

		bag, item, err := f.RecordBagScan(ctx, storage.BagScanRequest{BarcodeData: "x"})
		assert.Nil(t, bag)
		assert.Nil(t, item)
		var vErr *storage.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "bag_id", vErr.Field)
	})
}

func TestFulfillment_ReportPickIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		m.issues.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, issue *repository.PickIssue) error {
				assert.Equal(t, "missing_item", issue.Reason)
				return nil
			})

		issue, err := f.ReportPickIssue(ctx, storage.PickIssueRequest{
			OrderID: "ord-1001",
			UserID:  "picker-7",
			Reason:  "missing_item",
			Details: "shelf empty",
		})
		require.NoError(t, err)
		assert.Equal(t, "shelf empty", issue.Details)
	})

	t.Run("rejects unknown reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, _ := newFulfillment(ctrl)

		issue, err := f.ReportPickIssue(ctx, storage.PickIssueRequest{
			OrderID: "ord-1001",
			UserID:  "picker-7",
			Reason:  "lazy",
		})
		assert.Nil(t, issue)
		var vErr *storage.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "reason", vErr.Field)
	})
}

func TestFulfillment_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("patches only present fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		current := &repository.User{
			ID:       "picker-7",
			Username: "a.petrova",
			Name:     "Anna Petrova",
			DeviceID: "scanner-12",
		}

		m.users.EXPECT().GetByID(gomock.Any(), "picker-7").Return(current, nil)
		m.users.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *repository.User) error {
				assert.Equal(t, "Anna P.", user.Name)
				assert.Equal(t, "scanner-12", user.DeviceID) // untouched
				return nil
			})

		profile, err := f.UpdateProfile(ctx, "picker-7", storage.ProfilePatch{Name: strPtr("Anna P.")})
		require.NoError(t, err)
		assert.Equal(t, "Anna P.", profile.Name)
		assert.Equal(t, "a.petrova", profile.Username)
	})
}

func TestFulfillment_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns profile without credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		m.users.EXPECT().Authenticate(gomock.Any(), "a.petrova", "correct-horse").
			Return(&repository.User{ID: "picker-7", Username: "a.petrova", Password: "$2a$..."}, nil)

		profile, err := f.Authenticate(ctx, "a.petrova", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "picker-7", profile.ID)
	})

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f, m := newFulfillment(ctrl)

		m.users.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, repository.ErrInvalidCredentials)

		profile, err := f.Authenticate(ctx, "a.petrova", "wrong")
		assert.Nil(t, profile)
		assert.ErrorIs(t, err, repository.ErrInvalidCredentials)
	})
}
