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

// DeleteLocationTool deletes a storage location by id.
type DeleteLocationTool struct {
	name          string
	description   string
	configuration map[string]string
	service       interfaces.InventoryService
	logger        *zap.Logger
}

func NewDeleteLocationTool(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) *DeleteLocationTool {
	return &DeleteLocationTool{
		name:          name,
		description:   description,
		configuration: configuration,
		service:       service,
		logger:        logger,
	}
}

func (t *DeleteLocationTool) Name() string {
	return t.name
}

func (t *DeleteLocationTool) Description() string {
	return t.description
}

func (t *DeleteLocationTool) Configuration() map[string]string {
	return t.configuration
}

func (t *DeleteLocationTool) UpdateConfiguration(config map[string]string) {
	t.configuration = config
}

func (t *DeleteLocationTool) FullDescription() string {
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

func (t *DeleteLocationTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{Name: "locationId", Type: "string", Description: "Id of the location to delete", Required: true},
	}
}

func (t *DeleteLocationTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Executing delete location", zap.String("arguments", arguments))

	var args struct {
		LocationID string `json:"locationId"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		t.logger.Error("Failed to parse arguments", zap.Error(err))
		return failure("failed to delete location", err), nil
	}
	if args.LocationID == "" {
		return failure("failed to delete location", fmt.Errorf("locationId is required")), nil
	}

	if err := t.service.DeleteLocation(context.Background(), args.LocationID); err != nil {
		t.logger.Warn("Location deletion failed", zap.String("location_id", args.LocationID), zap.Error(err))
		return failure("failed to delete location", err), nil
	}

	return fmt.Sprintf("Deleted location %s", args.LocationID), nil
}

var _ entities.Tool = (*DeleteLocationTool)(nil)
