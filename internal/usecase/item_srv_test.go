package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"lostfound-api/internal/data/entity"
	"lostfound-api/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeItemRepo stores items in memory and mimics the listing query: filter
// by type and Active status, newest report first, truncated to limit.
type fakeItemRepo struct {
	items     []*entity.Item
	clock     time.Time
	lastLimit int
	createErr error
	countErr  error
}

func (f *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	if f.createErr != nil {
		return f.createErr
	}
	// Deterministic, strictly increasing report times
	f.clock = f.clock.Add(time.Minute)
	copied := *item
	copied.DateReported = f.clock
	f.items = append(f.items, &copied)
	return nil
}

func (f *fakeItemRepo) FindActiveByType(ctx context.Context, itemType entity.ItemType, limit int) ([]*entity.ItemSummary, error) {
	f.lastLimit = limit

	var matched []*entity.Item
	for _, item := range f.items {
		if item.ItemType == itemType && item.CurrentStatus == entity.StatusActive {
			matched = append(matched, item)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].DateReported.After(matched[j].DateReported)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}

	summaries := make([]*entity.ItemSummary, len(matched))
	for i, item := range matched {
		summaries[i] = &entity.ItemSummary{
			ItemID:        item.ItemID,
			Title:         item.Title,
			Description:   item.Description,
			DateLostFound: item.DateLostFound,
			LocationName:  fmt.Sprintf("location-%d", item.LocationID),
			CategoryName:  fmt.Sprintf("category-%d", item.CategoryID),
			DateReported:  item.DateReported,
		}
	}
	return summaries, nil
}

func (f *fakeItemRepo) CountActiveByType(ctx context.Context, itemType entity.ItemType) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, item := range f.items {
		if item.ItemType == itemType && item.CurrentStatus == entity.StatusActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeItemRepo) CountActiveByReporter(ctx context.Context, userID string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, item := range f.items {
		if item.ReportedByUserID == userID && item.CurrentStatus == entity.StatusActive {
			count++
		}
	}
	return count, nil
}

func newItemFixture() (*fakeItemRepo, ItemService) {
	repo := &fakeItemRepo{clock: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	return repo, NewItemService(repo, zap.NewNop())
}

func reportReq(title, reporter string) *request.ReportItemRequest {
	return &request.ReportItemRequest{
		Title:            title,
		Description:      "Black leather wallet with student card inside",
		DateLostFound:    "2026-02-28",
		ReportedByUserID: reporter,
		LocationID:       3,
		CategoryID:       1,
	}
}

func TestReportCreatesActiveItem(t *testing.T) {
	repo, service := newItemFixture()

	err := service.Report(context.Background(), entity.ItemTypeLost, reportReq("Wallet", "219001234"))
	require.NoError(t, err)

	require.Len(t, repo.items, 1)
	item := repo.items[0]
	assert.Equal(t, entity.StatusActive, item.CurrentStatus)
	assert.Equal(t, entity.ItemTypeLost, item.ItemType)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", item.ItemID.String())
	assert.False(t, item.DateReported.IsZero())
}

func TestReportRejectsMissingFields(t *testing.T) {
	repo, service := newItemFixture()

	req := reportReq("Wallet", "219001234")
	req.Description = ""
	req.LocationID = 0

	err := service.Report(context.Background(), entity.ItemTypeLost, req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "Description")
	assert.Contains(t, validationErr.Fields, "LocationID")
	assert.Empty(t, repo.items)
}

func TestReportPersistenceFailureIsInternal(t *testing.T) {
	repo, service := newItemFixture()
	repo.createErr = errors.New("foreign key violation")

	err := service.Report(context.Background(), entity.ItemTypeFound, reportReq("Keys", "219001234"))

	require.Error(t, err)
	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestListActiveFiltersTypeAndOrdersNewestFirst(t *testing.T) {
	_, service := newItemFixture()
	ctx := context.Background()

	require.NoError(t, service.Report(ctx, entity.ItemTypeLost, reportReq("Wallet", "219001234")))
	require.NoError(t, service.Report(ctx, entity.ItemTypeFound, reportReq("Umbrella", "219005678")))
	require.NoError(t, service.Report(ctx, entity.ItemTypeLost, reportReq("Phone", "219001234")))
	require.NoError(t, service.Report(ctx, entity.ItemTypeFound, reportReq("Jacket", "219005678")))
	require.NoError(t, service.Report(ctx, entity.ItemTypeLost, reportReq("Laptop", "219001234")))

	lost, err := service.ListActive(ctx, entity.ItemTypeLost, 20)
	require.NoError(t, err)

	require.Len(t, lost, 3)
	assert.Equal(t, "Laptop", lost[0].Title)
	assert.Equal(t, "Phone", lost[1].Title)
	assert.Equal(t, "Wallet", lost[2].Title)
	assert.Equal(t, "location-3", lost[0].LocationName)
	assert.Equal(t, "category-1", lost[0].CategoryName)

	lostCount, err := service.CountActive(ctx, entity.ItemTypeLost)
	require.NoError(t, err)
	assert.Equal(t, int64(3), lostCount)

	foundCount, err := service.CountActive(ctx, entity.ItemTypeFound)
	require.NoError(t, err)
	assert.Equal(t, int64(2), foundCount)
}

func TestListActiveAppliesDefaultLimit(t *testing.T) {
	repo, service := newItemFixture()

	_, err := service.ListActive(context.Background(), entity.ItemTypeLost, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, repo.lastLimit)

	_, err = service.ListActive(context.Background(), entity.ItemTypeLost, -7)
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, repo.lastLimit)

	_, err = service.ListActive(context.Background(), entity.ItemTypeLost, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.lastLimit)
}

func TestCountReportedBy(t *testing.T) {
	_, service := newItemFixture()
	ctx := context.Background()

	count, err := service.CountReportedBy(ctx, "219001234")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, service.Report(ctx, entity.ItemTypeLost, reportReq("Wallet", "219001234")))

	count, err = service.CountReportedBy(ctx, "219001234")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
