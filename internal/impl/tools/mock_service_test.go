package tools

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stocktake/stocktake/internal/domain/entities"
)

// Mock inventory service for testing
type mockInventoryService struct {
	mock.Mock
}

func (m *mockInventoryService) SearchItems(ctx context.Context, query string) ([]entities.Item, error) {
	args := m.Called(ctx, query)
	if args.Get(0) != nil {
		return args.Get(0).([]entities.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) SearchItemsExtended(ctx context.Context, query string) ([]entities.Item, error) {
	args := m.Called(ctx, query)
	if args.Get(0) != nil {
		return args.Get(0).([]entities.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) GetItem(ctx context.Context, id string) (*entities.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entities.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) CreateItem(ctx context.Context, fields entities.ItemFields) (*entities.Item, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) != nil {
		return args.Get(0).(*entities.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) UpdateItem(ctx context.Context, id string, fields entities.ItemFields) (*entities.Item, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) != nil {
		return args.Get(0).(*entities.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockInventoryService) ListLocations(ctx context.Context) ([]entities.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]entities.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) CreateLocation(ctx context.Context, fields entities.LocationFields) (*entities.Location, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) != nil {
		return args.Get(0).(*entities.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) UpdateLocation(ctx context.Context, id string, fields entities.LocationFields) (*entities.Location, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) != nil {
		return args.Get(0).(*entities.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) DeleteLocation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockInventoryService) UploadAttachment(ctx context.Context, itemID, fileName, attachmentType string, primary bool, content []byte) (*entities.Item, error) {
	args := m.Called(ctx, itemID, fileName, attachmentType, primary, content)
	if args.Get(0) != nil {
		return args.Get(0).(*entities.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) UpdateAttachment(ctx context.Context, itemID, attachmentID string, primary bool) (*entities.Item, error) {
	args := m.Called(ctx, itemID, attachmentID, primary)
	if args.Get(0) != nil {
		return args.Get(0).(*entities.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) DeleteAttachment(ctx context.Context, itemID, attachmentID string) error {
	args := m.Called(ctx, itemID, attachmentID)
	return args.Error(0)
}
