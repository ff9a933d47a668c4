package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stocktake/stocktake/internal/domain/entities"
	"github.com/stocktake/stocktake/internal/domain/interfaces"

	"go.uber.org/zap"
)

// UpdateItemTool rewrites an existing item. The service's update endpoint
// is a full-record PUT, so name and quantity are always required; optional
// fields not supplied are omitted from the request, not cleared.
type UpdateItemTool struct {
	name          string
	description   string
	configuration map[string]string
	service       interfaces.InventoryService
	logger        *zap.Logger
}

func NewUpdateItemTool(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) *UpdateItemTool {
	return &UpdateItemTool{
		name:          name,
		description:   description,
		configuration: configuration,
		service:       service,
		logger:        logger,
	}
}

func (t *UpdateItemTool) Name() string {
	return t.name
}

func (t *UpdateItemTool) Description() string {
	return t.description
}

func (t *UpdateItemTool) Configuration() map[string]string {
	return t.configuration
}

func (t *UpdateItemTool) UpdateConfiguration(config map[string]string) {
	t.configuration = config
}

func (t *UpdateItemTool) FullDescription() string {
	var b strings.Builder

	b.WriteString(t.Description())
	b.WriteString("\n\n")

	b.WriteString("Configuration for this tool:\n")
	b.WriteString("| Key           | Value         |\n")
	b.WriteString("|---------------|---------------|\n")

	for key, value := range t.Configuration() {
		b.WriteString(fmt.Sprintf("| %-13s | %-13s |\n", key, value))
	}

	return b.String()
}

func (t *UpdateItemTool) Parameters() []entities.Parameter {
	params := []entities.Parameter{
		{Name: "itemId", Type: "string", Description: "Id of the item to update", Required: true},
	}
	// Same writable field set as AddItem.
	return append(params, (&AddItemTool{}).Parameters()...)
}

func (t *UpdateItemTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Executing update item", zap.String("arguments", arguments))

	var args struct {
		ItemID string `json:"itemId"`
		addItemArgs
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		t.logger.Error("Failed to parse arguments", zap.Error(err))
		return failure("failed to update item", err), nil
	}
	if args.ItemID == "" {
		return failure("failed to update item", fmt.Errorf("itemId is required")), nil
	}
	if args.Name == "" || args.Quantity == nil {
		return failure("failed to update item", fmt.Errorf("name and quantity are required")), nil
	}

	item, err := t.service.UpdateItem(context.Background(), args.ItemID, args.toFields())
	if err != nil {
		t.logger.Warn("Item update failed", zap.String("item_id", args.ItemID), zap.Error(err))
		return failure("failed to update item", err), nil
	}

	return "Updated item: " + describeItem(item), nil
}

var _ entities.Tool = (*UpdateItemTool)(nil)
