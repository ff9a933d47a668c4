package tools

import (
	"github.com/stocktake/stocktake/internal/domain/entities"
	"github.com/stocktake/stocktake/internal/domain/errors"
	"github.com/stocktake/stocktake/internal/domain/interfaces"

	"go.uber.org/zap"
)

type ToolFactoryEntry struct {
	Name        string
	Description string
	Factory     func(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) entities.Tool
}

// ToolFactory knows how to build every inventory tool. All tools share one
// InventoryService instance so they also share its cached session token.
type ToolFactory struct {
	toolFactories map[string]*ToolFactoryEntry
	order         []string
}

func NewToolFactory() (*ToolFactory, error) {
	toolFactory := &ToolFactory{}
	toolFactory.toolFactories = make(map[string]*ToolFactoryEntry)

	toolFactory.register(&ToolFactoryEntry{
		Name:        "SearchItems",
		Description: `This tool searches the inventory by keyword and returns matching items with their quantity and location. Set extended to true to include notes, warranty and purchase details.`,
		Factory: func(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) entities.Tool {
			return NewSearchItemsTool(name, description, configuration, service, logger)
		},
	})
	toolFactory.register(&ToolFactoryEntry{
		Name:        "GetLocations",
		Description: `This tool lists every storage location with its id, item count and description.`,
		Factory: func(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) entities.Tool {
			return NewGetLocationsTool(name, description, configuration, service, logger)
		},
	})
	toolFactory.register(&ToolFactoryEntry{
		Name:        "AddItem",
		Description: `This tool adds a new item to the inventory. Name and quantity are required; location, labels, notes, serial/model/manufacturer, warranty and purchase details are optional.`,
		Factory: func(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) entities.Tool {
			return NewAddItemTool(name, description, configuration, service, logger)
		},
	})
	toolFactory.register(&ToolFactoryEntry{
		Name:        "UpdateItem",
		Description: `This tool updates an existing item. Name and quantity are required along with the item id; omitted optional fields are left untouched.`,
		Factory: func(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) entities.Tool {
			return NewUpdateItemTool(name, description, configuration, service, logger)
		},
	})
	toolFactory.register(&ToolFactoryEntry{
		Name:        "DeleteItem",
		Description: `This tool permanently deletes an item from the inventory.`,
		Factory: func(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) entities.Tool {
			return NewDeleteItemTool(name, description, configuration, service, logger)
		},
	})
	toolFactory.register(&ToolFactoryEntry{
		Name:        "AttachFile",
		Description: `This tool uploads a local file as an attachment on an item, optionally marking it as the primary image.`,
		Factory: func(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) entities.Tool {
			return NewAttachFileTool(name, description, configuration, service, logger)
		},
	})
	toolFactory.register(&ToolFactoryEntry{
		Name:        "RemoveAttachment",
		Description: `This tool removes an attachment from an item.`,
		Factory: func(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) entities.Tool {
			return NewRemoveAttachmentTool(name, description, configuration, service, logger)
		},
	})
	toolFactory.register(&ToolFactoryEntry{
		Name:        "SetPrimaryAttachment",
		Description: `This tool marks an existing attachment as the item's primary image, or clears the flag.`,
		Factory: func(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) entities.Tool {
			return NewSetPrimaryAttachmentTool(name, description, configuration, service, logger)
		},
	})
	toolFactory.register(&ToolFactoryEntry{
		Name:        "CreateLocation",
		Description: `This tool creates a storage location, optionally nested under a parent location.`,
		Factory: func(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) entities.Tool {
			return NewCreateLocationTool(name, description, configuration, service, logger)
		},
	})
	toolFactory.register(&ToolFactoryEntry{
		Name:        "UpdateLocation",
		Description: `This tool renames a storage location or moves it under a different parent.`,
		Factory: func(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) entities.Tool {
			return NewUpdateLocationTool(name, description, configuration, service, logger)
		},
	})
	toolFactory.register(&ToolFactoryEntry{
		Name:        "DeleteLocation",
		Description: `This tool permanently deletes a storage location.`,
		Factory: func(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) entities.Tool {
			return NewDeleteLocationTool(name, description, configuration, service, logger)
		},
	})

	return toolFactory, nil
}

func (t *ToolFactory) register(entry *ToolFactoryEntry) {
	t.toolFactories[entry.Name] = entry
	t.order = append(t.order, entry.Name)
}

// ListFactories returns the entries in registration order.
func (t *ToolFactory) ListFactories() ([]*ToolFactoryEntry, error) {
	var factories []*ToolFactoryEntry
	for _, name := range t.order {
		factories = append(factories, t.toolFactories[name])
	}
	return factories, nil
}

func (t *ToolFactory) GetFactoryByName(name string) (*ToolFactoryEntry, error) {
	factory, exists := t.toolFactories[name]
	if !exists {
		return nil, errors.NotFoundErrorf("Tool factory with name '%s' not found", name)
	}
	return factory, nil
}

// BuildAll instantiates every registered tool against one shared service.
func (t *ToolFactory) BuildAll(service interfaces.InventoryService, logger *zap.Logger) ([]entities.Tool, error) {
	factories, err := t.ListFactories()
	if err != nil {
		return nil, err
	}

	var built []entities.Tool
	for _, entry := range factories {
		built = append(built, entry.Factory(entry.Name, entry.Description, map[string]string{}, service, logger))
	}
	return built, nil
}
