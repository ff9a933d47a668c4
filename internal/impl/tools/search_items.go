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

// SearchItemsTool runs a keyword search against the inventory service.
type SearchItemsTool struct {
	name          string
	description   string
	configuration map[string]string
	service       interfaces.InventoryService
	logger        *zap.Logger
}

func NewSearchItemsTool(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) *SearchItemsTool {
	return &SearchItemsTool{
		name:          name,
		description:   description,
		configuration: configuration,
		service:       service,
		logger:        logger,
	}
}

func (t *SearchItemsTool) Name() string {
	return t.name
}

func (t *SearchItemsTool) Description() string {
	return t.description
}

func (t *SearchItemsTool) Configuration() map[string]string {
	return t.configuration
}

func (t *SearchItemsTool) UpdateConfiguration(config map[string]string) {
	t.configuration = config
}

func (t *SearchItemsTool) FullDescription() string {
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

func (t *SearchItemsTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{
			Name:        "query",
			Type:        "string",
			Description: "Keyword search query matched against item names and descriptions",
			Required:    true,
		},
		{
			Name:        "extended",
			Type:        "boolean",
			Description: "Also fetch full detail (notes, warranty, purchase info) for every match. Slower: one extra request per match",
			Required:    false,
		},
	}
}

func (t *SearchItemsTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Executing item search", zap.String("arguments", arguments))

	var args struct {
		Query    string `json:"query"`
		Extended bool   `json:"extended"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		t.logger.Error("Failed to parse arguments", zap.Error(err))
		return "", err
	}
	if args.Query == "" {
		return "", fmt.Errorf("query is required")
	}

	ctx := context.Background()
	var items []entities.Item
	var err error
	if args.Extended {
		items, err = t.service.SearchItemsExtended(ctx, args.Query)
	} else {
		items, err = t.service.SearchItems(ctx, args.Query)
	}
	if err != nil {
		t.logger.Warn("Item search failed", zap.String("query", args.Query), zap.Error(err))
		return "", err
	}

	if len(items) == 0 {
		return fmt.Sprintf("No items matched %q", args.Query), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d item(s) matching %q:\n", len(items), args.Query)
	for _, item := range items {
		b.WriteString("- " + summarizeItem(item) + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

var _ entities.Tool = (*SearchItemsTool)(nil)
