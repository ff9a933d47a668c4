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

// SetPrimaryAttachmentTool toggles an attachment's primary flag. The
// service keeps at most one primary attachment per item and handles
// demoting the previous one itself.
type SetPrimaryAttachmentTool struct {
	name          string
	description   string
	configuration map[string]string
	service       interfaces.InventoryService
	logger        *zap.Logger
}

func NewSetPrimaryAttachmentTool(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) *SetPrimaryAttachmentTool {
	return &SetPrimaryAttachmentTool{
		name:          name,
		description:   description,
		configuration: configuration,
		service:       service,
		logger:        logger,
	}
}

func (t *SetPrimaryAttachmentTool) Name() string {
	return t.name
}

func (t *SetPrimaryAttachmentTool) Description() string {
	return t.description
}

func (t *SetPrimaryAttachmentTool) Configuration() map[string]string {
	return t.configuration
}

func (t *SetPrimaryAttachmentTool) UpdateConfiguration(config map[string]string) {
	t.configuration = config
}

func (t *SetPrimaryAttachmentTool) FullDescription() string {
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

func (t *SetPrimaryAttachmentTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{Name: "itemId", Type: "string", Description: "Id of the item the attachment belongs to", Required: true},
		{Name: "attachmentId", Type: "string", Description: "Id of the attachment to update", Required: true},
		{Name: "primary", Type: "boolean", Description: "Whether the attachment should be the item's primary image; defaults to true", Required: false},
	}
}

func (t *SetPrimaryAttachmentTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Executing set primary attachment", zap.String("arguments", arguments))

	var args struct {
		ItemID       string `json:"itemId"`
		AttachmentID string `json:"attachmentId"`
		Primary      *bool  `json:"primary"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		t.logger.Error("Failed to parse arguments", zap.Error(err))
		return failure("failed to update attachment", err), nil
	}
	if args.ItemID == "" || args.AttachmentID == "" {
		return failure("failed to update attachment", fmt.Errorf("itemId and attachmentId are required")), nil
	}

	primary := true
	if args.Primary != nil {
		primary = *args.Primary
	}

	item, err := t.service.UpdateAttachment(context.Background(), args.ItemID, args.AttachmentID, primary)
	if err != nil {
		t.logger.Warn("Attachment update failed",
			zap.String("item_id", args.ItemID),
			zap.String("attachment_id", args.AttachmentID),
			zap.Error(err))
		return failure("failed to update attachment", err), nil
	}

	if primary {
		return fmt.Sprintf("Attachment %s is now the primary image of %s", args.AttachmentID, item.Name), nil
	}
	return fmt.Sprintf("Attachment %s is no longer the primary image of %s", args.AttachmentID, item.Name), nil
}

var _ entities.Tool = (*SetPrimaryAttachmentTool)(nil)
