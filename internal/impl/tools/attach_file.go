package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stocktake/stocktake/internal/domain/entities"
	domainerrors "github.com/stocktake/stocktake/internal/domain/errors"
	"github.com/stocktake/stocktake/internal/domain/interfaces"

	"go.uber.org/zap"
)

// AttachFileTool uploads a local file as an item attachment. The source
// file is checked before anything goes over the wire so a missing path is
// reported as its own error instead of a transport failure.
type AttachFileTool struct {
	name          string
	description   string
	configuration map[string]string
	service       interfaces.InventoryService
	logger        *zap.Logger
}

func NewAttachFileTool(name, description string, configuration map[string]string, service interfaces.InventoryService, logger *zap.Logger) *AttachFileTool {
	return &AttachFileTool{
		name:          name,
		description:   description,
		configuration: configuration,
		service:       service,
		logger:        logger,
	}
}

func (t *AttachFileTool) Name() string {
	return t.name
}

func (t *AttachFileTool) Description() string {
	return t.description
}

func (t *AttachFileTool) Configuration() map[string]string {
	return t.configuration
}

func (t *AttachFileTool) UpdateConfiguration(config map[string]string) {
	t.configuration = config
}

func (t *AttachFileTool) FullDescription() string {
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

func (t *AttachFileTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{Name: "itemId", Type: "string", Description: "Id of the item to attach the file to", Required: true},
		{Name: "filePath", Type: "string", Description: "Path of the local file to upload", Required: true},
		{Name: "fileName", Type: "string", Description: "Name to store the attachment under; defaults to the file's base name", Required: false},
		{
			Name:        "type",
			Type:        "string",
			Enum:        []string{entities.AttachmentTypePhoto, entities.AttachmentTypeAttachment},
			Description: "Attachment classification",
			Required:    false,
		},
		{Name: "primary", Type: "boolean", Description: "Mark the attachment as the item's primary image", Required: false},
	}
}

func (t *AttachFileTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Executing attach file", zap.String("arguments", arguments))

	var args struct {
		ItemID   string `json:"itemId"`
		FilePath string `json:"filePath"`
		FileName string `json:"fileName"`
		Type     string `json:"type"`
		Primary  bool   `json:"primary"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		t.logger.Error("Failed to parse arguments", zap.Error(err))
		return failure("failed to attach file", err), nil
	}
	if args.ItemID == "" || args.FilePath == "" {
		return failure("failed to attach file", fmt.Errorf("itemId and filePath are required")), nil
	}

	info, err := os.Stat(args.FilePath)
	if err != nil {
		t.logger.Warn("Attachment source file missing", zap.String("file_path", args.FilePath))
		return failure("failed to attach file", domainerrors.NotFoundErrorf("file not found: %s", args.FilePath)), nil
	}

	content, err := os.ReadFile(args.FilePath)
	if err != nil {
		t.logger.Error("Failed to read attachment source file", zap.String("file_path", args.FilePath), zap.Error(err))
		return failure("failed to attach file", err), nil
	}

	fileName := args.FileName
	if fileName == "" {
		fileName = filepath.Base(args.FilePath)
	}

	item, err := t.service.UploadAttachment(context.Background(), args.ItemID, fileName, args.Type, args.Primary, content)
	if err != nil {
		t.logger.Warn("Attachment upload failed", zap.String("item_id", args.ItemID), zap.Error(err))
		return failure("failed to attach file", err), nil
	}

	summary := fmt.Sprintf("Attached %s (%s) to item %s", fileName, formatSize(info.Size()), item.Name)
	if len(item.Attachments) > 0 {
		// The service echoes the item with the new attachment appended;
		// the last list element is the closest thing to its id we get.
		summary += fmt.Sprintf(" [attachment id: %s]", item.Attachments[len(item.Attachments)-1].ID)
	}
	return summary, nil
}

var _ entities.Tool = (*AttachFileTool)(nil)
