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

// AddItemTool creates an inventory item. Extended fields ride along through
// the client's two-phase create so nothing the caller supplied gets dropped.
type AddItemTool struct {
	name          string
	description   string
	configuration map[string]string
	service       interfaces.InventoryService
	logger        *zap.Logger
}

func NewAddItemTool(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) *AddItemTool {
	return &AddItemTool{
		name:          name,
		description:   description,
		configuration: configuration,
		service:       service,
		logger:        logger,
	}
}

func (t *AddItemTool) Name() string {
	return t.name
}

func (t *AddItemTool) Description() string {
	return t.description
}

func (t *AddItemTool) Configuration() map[string]string {
	return t.configuration
}

func (t *AddItemTool) UpdateConfiguration(config map[string]string) {
	t.configuration = config
}

func (t *AddItemTool) FullDescription() string {
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

func (t *AddItemTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{Name: "name", Type: "string", Description: "Item name", Required: true},
		{Name: "quantity", Type: "integer", Description: "Quantity on hand", Required: true},
		{Name: "description", Type: "string", Description: "Short description", Required: false},
		{Name: "locationId", Type: "string", Description: "Id of the location holding the item", Required: false},
		{Name: "notes", Type: "string", Description: "Free-form notes", Required: false},
		{Name: "serialNumber", Type: "string", Description: "Serial number", Required: false},
		{Name: "modelNumber", Type: "string", Description: "Model number", Required: false},
		{Name: "manufacturer", Type: "string", Description: "Manufacturer name", Required: false},
		{Name: "insured", Type: "boolean", Description: "Whether the item is insured", Required: false},
		{Name: "archived", Type: "boolean", Description: "Whether the item is archived", Required: false},
		{Name: "lifetimeWarranty", Type: "boolean", Description: "Whether the warranty is lifetime", Required: false},
		{Name: "warrantyExpires", Type: "string", Description: "Warranty expiry date, YYYY-MM-DD", Required: false},
		{Name: "warrantyDetails", Type: "string", Description: "Warranty details", Required: false},
		{Name: "purchaseTime", Type: "string", Description: "Purchase date, YYYY-MM-DD", Required: false},
		{Name: "purchaseFrom", Type: "string", Description: "Where the item was purchased", Required: false},
		{Name: "purchasePrice", Type: "number", Description: "Purchase price", Required: false},
		{
			Name:        "tagIds",
			Type:        "array",
			Items:       []entities.ParameterItem{{Type: "string"}},
			Description: "Ids of labels to attach",
			Required:    false,
		},
		{Name: "parentId", Type: "string", Description: "Id of the parent item for nested or bundled items", Required: false},
	}
}

type addItemArgs struct {
	Name             string   `json:"name"`
	Quantity         *int     `json:"quantity"`
	Description      *string  `json:"description"`
	LocationID       *string  `json:"locationId"`
	Notes            *string  `json:"notes"`
	SerialNumber     *string  `json:"serialNumber"`
	ModelNumber      *string  `json:"modelNumber"`
	Manufacturer     *string  `json:"manufacturer"`
	Insured          *bool    `json:"insured"`
	Archived         *bool    `json:"archived"`
	LifetimeWarranty *bool    `json:"lifetimeWarranty"`
	WarrantyExpires  *string  `json:"warrantyExpires"`
	WarrantyDetails  *string  `json:"warrantyDetails"`
	PurchaseTime     *string  `json:"purchaseTime"`
	PurchaseFrom     *string  `json:"purchaseFrom"`
	PurchasePrice    *float64 `json:"purchasePrice"`
	TagIDs           []string `json:"tagIds"`
	ParentID         *string  `json:"parentId"`
}

func (a addItemArgs) toFields() entities.ItemFields {
	return entities.ItemFields{
		Name:             a.Name,
		Quantity:         *a.Quantity,
		Description:      a.Description,
		LocationID:       a.LocationID,
		LabelIDs:         a.TagIDs,
		ParentID:         a.ParentID,
		Notes:            a.Notes,
		SerialNumber:     a.SerialNumber,
		ModelNumber:      a.ModelNumber,
		Manufacturer:     a.Manufacturer,
		Insured:          a.Insured,
		Archived:         a.Archived,
		LifetimeWarranty: a.LifetimeWarranty,
		WarrantyExpires:  a.WarrantyExpires,
		WarrantyDetails:  a.WarrantyDetails,
		PurchaseTime:     a.PurchaseTime,
		PurchaseFrom:     a.PurchaseFrom,
		PurchasePrice:    a.PurchasePrice,
	}
}

func (t *AddItemTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Executing add item", zap.String("arguments", arguments))

	var args addItemArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		t.logger.Error("Failed to parse arguments", zap.Error(err))
		return failure("failed to add item", err), nil
	}
	if args.Name == "" || args.Quantity == nil {
		return failure("failed to add item", fmt.Errorf("name and quantity are required")), nil
	}

	item, err := t.service.CreateItem(context.Background(), args.toFields())
	if err != nil {
		t.logger.Warn("Item creation failed", zap.String("name", args.Name), zap.Error(err))
		return failure("failed to add item", err), nil
	}

	return "Added item: " + describeItem(item), nil
}

var _ entities.Tool = (*AddItemTool)(nil)
