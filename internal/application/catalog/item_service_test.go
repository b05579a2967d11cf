package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/catalog"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// MockItemRepository is a mock implementation of catalog.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Item, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByCode(ctx context.Context, code string) (*catalog.Item, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindAll(ctx context.Context, filter catalog.ItemFilter) ([]*catalog.Item, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*catalog.Item), args.Get(1).(int64), args.Error(2)
}

func (m *MockItemRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestItem(t *testing.T) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem("RICE-5KG", "White Rice 5kg",
		decimal.NewFromInt(1850), decimal.NewFromFloat(5.0), decimal.NewFromFloat(0.008))
	require.NoError(t, err)
	item.ClearDomainEvents()
	return item
}

func TestItemService_CreateItem(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil, zap.NewNop())

	repo.On("ExistsByCode", mock.Anything, "RICE-5KG").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*catalog.Item")).Return(nil)

	info, err := svc.CreateItem(context.Background(), CreateItemInput{
		Code:       "RICE-5KG",
		Name:       "White Rice 5kg",
		Category:   "Groceries",
		UnitPrice:  decimal.NewFromInt(1850),
		UnitWeight: decimal.NewFromFloat(5.0),
		UnitVolume: decimal.NewFromFloat(0.008),
	})

	require.NoError(t, err)
	assert.Equal(t, "RICE-5KG", info.Code)
	assert.Equal(t, "Groceries", info.Category)
	assert.Equal(t, string(catalog.ItemStatusActive), info.Status)
	repo.AssertExpectations(t)
}

func TestItemService_CreateItem_DuplicateCode(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil, zap.NewNop())

	repo.On("ExistsByCode", mock.Anything, "RICE-5KG").Return(true, nil)

	_, err := svc.CreateItem(context.Background(), CreateItemInput{
		Code:       "RICE-5KG",
		Name:       "White Rice 5kg",
		UnitPrice:  decimal.NewFromInt(1850),
		UnitWeight: decimal.NewFromFloat(5.0),
		UnitVolume: decimal.NewFromFloat(0.008),
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ITEM_CODE_TAKEN", domainErr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestItemService_SetItemPrice(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil, zap.NewNop())

	item := newTestItem(t)
	repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	repo.On("Update", mock.Anything, item).Return(nil)

	info, err := svc.SetItemPrice(context.Background(), SetItemPriceInput{
		ItemID:    item.ID,
		UnitPrice: decimal.NewFromInt(1990),
	})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1990).Equal(info.UnitPrice))
}

func TestItemService_GetItem_NotFound(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil, zap.NewNop())

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.GetItem(context.Background(), id)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ITEM_NOT_FOUND", domainErr.Code)
}

func TestItemService_DiscontinueItem(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil, zap.NewNop())

	item := newTestItem(t)
	repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	repo.On("Update", mock.Anything, item).Return(nil)

	err := svc.DiscontinueItem(context.Background(), item.ID)

	require.NoError(t, err)
	assert.Equal(t, catalog.ItemStatusDiscontinued, item.Status)

	// Discontinuation is final
	err = item.Activate()
	require.Error(t, err)
}

func TestItemService_ListItems(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil, zap.NewNop())

	items := []*catalog.Item{newTestItem(t)}
	repo.On("FindAll", mock.Anything, mock.AnythingOfType("catalog.ItemFilter")).Return(items, int64(1), nil)

	result, err := svc.ListItems(context.Background(), ListItemsInput{Keyword: "rice", Page: 1, PageSize: 10})

	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 10, result.PageSize)
}

func TestItemService_CreateItem_HandlingProfile(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil, zap.NewNop())

	repo.On("ExistsByCode", mock.Anything, "GAS-12KG").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*catalog.Item")).Return(nil)

	info, err := svc.CreateItem(context.Background(), CreateItemInput{
		Code:           "GAS-12KG",
		Name:           "LP Gas Cylinder 12kg",
		Category:       "Household",
		Subcategory:    "Fuel",
		UnitPrice:      decimal.NewFromInt(4200),
		UnitWeight:     decimal.NewFromFloat(24.5),
		UnitVolume:     decimal.NewFromFloat(0.04),
		Hazardous:      true,
		StockThreshold: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, "Fuel", info.Subcategory)
	assert.True(t, info.Hazardous)
	assert.False(t, info.Fragile)
	assert.Equal(t, 30, info.StockThreshold)
}

func TestItemService_SetItemHandling(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil, zap.NewNop())

	item := newTestItem(t)
	repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	repo.On("Update", mock.Anything, item).Return(nil)

	info, err := svc.SetItemHandling(context.Background(), SetItemHandlingInput{
		ItemID:         item.ID,
		Fragile:        true,
		StockThreshold: 5,
	})

	require.NoError(t, err)
	assert.True(t, info.Fragile)
	assert.Equal(t, 5, info.StockThreshold)
}
