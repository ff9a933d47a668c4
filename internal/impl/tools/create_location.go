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

// CreateLocationTool creates a storage location, optionally nested under a
// parent location.
type CreateLocationTool struct {
	name          string
	description   string
	configuration map[string]string
	service       interfaces.InventoryService
	logger        *zap.Logger
}

func NewCreateLocationTool(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) *CreateLocationTool {
	return &CreateLocationTool{
		name:          name,
		description:   description,
		configuration: configuration,
		service:       service,
		logger:        logger,
	}
}

func (t *CreateLocationTool) Name() string {
	return t.name
}

func (t *CreateLocationTool) Description() string {
	return t.description
}

func (t *CreateLocationTool) Configuration() map[string]string {
	return t.configuration
}

func (t *CreateLocationTool) UpdateConfiguration(config map[string]string) {
	t.configuration = config
}

func (t *CreateLocationTool) FullDescription() string {
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

func (t *CreateLocationTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{Name: "name", Type: "string", Description: "Location name", Required: true},
		{Name: "description", Type: "string", Description: "Short description", Required: false},
		{Name: "parentId", Type: "string", Description: "Id of the parent location for nesting", Required: false},
	}
}

func (t *CreateLocationTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Executing create location", zap.String("arguments", arguments))

	var args struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		ParentID    *string `json:"parentId"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		t.logger.Error("Failed to parse arguments", zap.Error(err))
		return failure("failed to create location", err), nil
	}
	if args.Name == "" {
		return failure("failed to create location", fmt.Errorf("name is required")), nil
	}

	location, err := t.service.CreateLocation(context.Background(), entities.LocationFields{
		Name:        &args.Name,
		Description: args.Description,
		ParentID:    args.ParentID,
	})
	if err != nil {
		t.logger.Warn("Location creation failed", zap.String("name", args.Name), zap.Error(err))
		return failure("failed to create location", err), nil
	}

	return fmt.Sprintf("Created location %s [id: %s]", location.Name, location.ID), nil
}

var _ entities.Tool = (*CreateLocationTool)(nil)
