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

// DeleteItemTool deletes an inventory item by id.
type DeleteItemTool struct {
	name          string
	description   string
	configuration map[string]string
	service       interfaces.InventoryService
	logger        *zap.Logger
}

func NewDeleteItemTool(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) *DeleteItemTool {
	return &DeleteItemTool{
		name:          name,
		description:   description,
		configuration: configuration,
		service:       service,
		logger:        logger,
	}
}

func (t *DeleteItemTool) Name() string {
	return t.name
}

func (t *DeleteItemTool) Description() string {
	return t.description
}

func (t *DeleteItemTool) Configuration() map[string]string {
	return t.configuration
}

func (t *DeleteItemTool) UpdateConfiguration(config map[string]string) {
	t.configuration = config
}

func (t *DeleteItemTool) FullDescription() string {
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

func (t *DeleteItemTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{Name: "itemId", Type: "string", Description: "Id of the item to delete", Required: true},
	}
}

func (t *DeleteItemTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Executing delete item", zap.String("arguments", arguments))

	var args struct {
		ItemID string `json:"itemId"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		t.logger.Error("Failed to parse arguments", zap.Error(err))
		return failure("failed to delete item", err), nil
	}
	if args.ItemID == "" {
		return failure("failed to delete item", fmt.Errorf("itemId is required")), nil
	}

	if err := t.service.DeleteItem(context.Background(), args.ItemID); err != nil {
		t.logger.Warn("Item deletion failed", zap.String("item_id", args.ItemID), zap.Error(err))
		return failure("failed to delete item", err), nil
	}

	return fmt.Sprintf("Deleted item %s", args.ItemID), nil
}

var _ entities.Tool = (*DeleteItemTool)(nil)
