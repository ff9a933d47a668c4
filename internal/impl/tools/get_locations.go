package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/stocktake/stocktake/internal/domain/entities"
	"github.com/stocktake/stocktake/internal/domain/interfaces"

	"go.uber.org/zap"
)

// GetLocationsTool lists every storage location known to the service.
type GetLocationsTool struct {
	name          string
	description   string
	configuration map[string]string
	service       interfaces.InventoryService
	logger        *zap.Logger
}

func NewGetLocationsTool(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) *GetLocationsTool {
	return &GetLocationsTool{
		name:          name,
		description:   description,
		configuration: configuration,
		service:       service,
		logger:        logger,
	}
}

func (t *GetLocationsTool) Name() string {
	return t.name
}

func (t *GetLocationsTool) Description() string {
	return t.description
}

func (t *GetLocationsTool) Configuration() map[string]string {
	return t.configuration
}

func (t *GetLocationsTool) UpdateConfiguration(config map[string]string) {
	t.configuration = config
}

func (t *GetLocationsTool) FullDescription() string {
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

func (t *GetLocationsTool) Parameters() []entities.Parameter {
	return []entities.Parameter{}
}

func (t *GetLocationsTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Listing locations")

	locations, err := t.service.ListLocations(context.Background())
	if err != nil {
		t.logger.Warn("Listing locations failed", zap.Error(err))
		return "", err
	}

	if len(locations) == 0 {
		return "No locations defined", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d location(s):\n", len(locations))
	for _, loc := range locations {
		fmt.Fprintf(&b, "- %s [id: %s]", loc.Name, loc.ID)
		if loc.ItemCount > 0 {
			fmt.Fprintf(&b, " (%d items)", loc.ItemCount)
		}
		if loc.Description != "" {
			fmt.Fprintf(&b, ": %s", loc.Description)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

var _ entities.Tool = (*GetLocationsTool)(nil)
