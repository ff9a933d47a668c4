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

// RemoveAttachmentTool deletes one attachment from an item.
type RemoveAttachmentTool struct {
	name          string
	description   string
	configuration map[string]string
	service       interfaces.InventoryService
	logger        *zap.Logger
}

func NewRemoveAttachmentTool(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) *RemoveAttachmentTool {
	return &RemoveAttachmentTool{
		name:          name,
		description:   description,
		configuration: configuration,
		service:       service,
		logger:        logger,
	}
}

func (t *RemoveAttachmentTool) Name() string {
	return t.name
}

func (t *RemoveAttachmentTool) Description() string {
	return t.description
}

func (t *RemoveAttachmentTool) Configuration() map[string]string {
	return t.configuration
}

func (t *RemoveAttachmentTool) UpdateConfiguration(config map[string]string) {
	t.configuration = config
}

func (t *RemoveAttachmentTool) FullDescription() string {
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

func (t *RemoveAttachmentTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{Name: "itemId", Type: "string", Description: "Id of the item the attachment belongs to", Required: true},
		{Name: "attachmentId", Type: "string", Description: "Id of the attachment to remove", Required: true},
	}
}

func (t *RemoveAttachmentTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Executing remove attachment", zap.String("arguments", arguments))

	var args struct {
		ItemID       string `json:"itemId"`
		AttachmentID string `json:"attachmentId"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		t.logger.Error("Failed to parse arguments", zap.Error(err))
		return failure("failed to remove attachment", err), nil
	}
	if args.ItemID == "" || args.AttachmentID == "" {
		return failure("failed to remove attachment", fmt.Errorf("itemId and attachmentId are required")), nil
	}

	if err := t.service.DeleteAttachment(context.Background(), args.ItemID, args.AttachmentID); err != nil {
		t.logger.Warn("Attachment deletion failed",
			zap.String("item_id", args.ItemID),
			zap.String("attachment_id", args.AttachmentID),
			zap.Error(err))
		return failure("failed to remove attachment", err), nil
	}

	return fmt.Sprintf("Removed attachment %s from item %s", args.AttachmentID, args.ItemID), nil
}

var _ entities.Tool = (*RemoveAttachmentTool)(nil)
