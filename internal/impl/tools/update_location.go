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

// UpdateLocationTool renames or re-parents a storage location.
type UpdateLocationTool struct {
	name          string
	description   string
	configuration map[string]string
	service       interfaces.InventoryService
	logger        *zap.Logger
}

func NewUpdateLocationTool(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) *UpdateLocationTool {
	return &UpdateLocationTool{
		name:          name,
		description:   description,
		configuration: configuration,
		service:       service,
		logger:        logger,
	}
}

func (t *UpdateLocationTool) Name() string {
	return t.name
}

func (t *UpdateLocationTool) Description() string {
	return t.description
}

func (t *UpdateLocationTool) Configuration() map[string]string {
	return t.configuration
}

func (t *UpdateLocationTool) UpdateConfiguration(config map[string]string) {
	t.configuration = config
}

func (t *UpdateLocationTool) FullDescription() string {
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

func (t *UpdateLocationTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{Name: "locationId", Type: "string", Description: "Id of the location to update", Required: true},
		{Name: "name", Type: "string", Description: "New location name", Required: false},
		{Name: "description", Type: "string", Description: "New description", Required: false},
		{Name: "parentId", Type: "string", Description: "Id of the new parent location", Required: false},
	}
}

func (t *UpdateLocationTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Executing update location", zap.String("arguments", arguments))

	var args struct {
		LocationID  string  `json:"locationId"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		ParentID    *string `json:"parentId"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		t.logger.Error("Failed to parse arguments", zap.Error(err))
		return failure("failed to update location", err), nil
	}
	if args.LocationID == "" {
		return failure("failed to update location", fmt.Errorf("locationId is required")), nil
	}

	location, err := t.service.UpdateLocation(context.Background(), args.LocationID, entities.LocationFields{
		Name:        args.Name,
		Description: args.Description,
		ParentID:    args.ParentID,
	})
	if err != nil {
		t.logger.Warn("Location update failed", zap.String("location_id", args.LocationID), zap.Error(err))
		return failure("failed to update location", err), nil
	}

	return fmt.Sprintf("Updated location %s [id: %s]", location.Name, location.ID), nil
}

var _ entities.Tool = (*UpdateLocationTool)(nil)
