package interfaces

import (
	"context"

	"github.com/stocktake/stocktake/internal/domain/entities"
)

// InventoryService is the contract the tool layer programs against. The
// Homebox integration implements it; tests substitute a mock.
type InventoryService interface {
	SearchItems(ctx context.Context, query string) ([]entities.Item, error)
	SearchItemsExtended(ctx context.Context, query string) ([]entities.Item, error)
	GetItem(ctx context.Context, id string) (*entities.Item, error)
	CreateItem(ctx context.Context, fields entities.ItemFields) (*entities.Item, error)
	UpdateItem(ctx context.Context, id string, fields entities.ItemFields) (*entities.Item, error)
	DeleteItem(ctx context.Context, id string) error

	ListLocations(ctx context.Context) ([]entities.Location, error)
	CreateLocation(ctx context.Context, fields entities.LocationFields) (*entities.Location, error)
	UpdateLocation(ctx context.Context, id string, fields entities.LocationFields) (*entities.Location, error)
	DeleteLocation(ctx context.Context, id string) error

	UploadAttachment(ctx context.Context, itemID, fileName, attachmentType string, primary bool, content []byte) (*entities.Item, error)
	UpdateAttachment(ctx context.Context, itemID, attachmentID string, primary bool) (*entities.Item, error)
	DeleteAttachment(ctx context.Context, itemID, attachmentID string) error
}
