package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stocktake/stocktake/internal/domain/entities"
	"github.com/stocktake/stocktake/internal/domain/errors"
)

// encodeMultipart builds a multipart/form-data body by hand: one text part
// per field in order, then a single binary part named "file" with an
// octet-stream content type, terminated by the closing boundary marker.
// Field parts are plain UTF-8; the file content is copied byte for byte.
func encodeMultipart(boundary, fileName string, fields [][2]string, content []byte) []byte {
	var buf bytes.Buffer

	for _, field := range fields {
		buf.WriteString("--" + boundary + "\r\n")
		buf.WriteString(fmt.Sprintf("Content-Disposition: form-data; name=%q\r\n", field[0]))
		buf.WriteString("\r\n")
		buf.WriteString(field[1])
		buf.WriteString("\r\n")
	}

	buf.WriteString("--" + boundary + "\r\n")
	buf.WriteString(fmt.Sprintf("Content-Disposition: form-data; name=\"file\"; filename=%q\r\n", fileName))
	buf.WriteString("Content-Type: application/octet-stream\r\n")
	buf.WriteString("\r\n")
	buf.Write(content)
	buf.WriteString("\r\n")
	buf.WriteString("--" + boundary + "--\r\n")

	return buf.Bytes()
}

// UploadAttachment uploads file content to an item. The service echoes the
// item with the new attachment appended to its attachment list; it does not
// return the attachment id directly.
func (c *HomeboxClient) UploadAttachment(ctx context.Context, itemID, fileName, attachmentType string, primary bool, content []byte) (*entities.Item, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	fields := [][2]string{{"name", fileName}}
	if attachmentType != "" {
		fields = append(fields, [2]string{"type", attachmentType})
	}
	if primary {
		fields = append(fields, [2]string{"primary", strconv.FormatBool(primary)})
	}

	boundary := uuid.New().String()
	body := encodeMultipart(boundary, fileName, fields, content)

	reqURL := c.baseURL + "/api/v1/items/" + url.PathEscape(itemID) + "/attachments"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Uploading attachment",
		zap.String("item_id", itemID),
		zap.String("file_name", fileName),
		zap.Int("size", len(content)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Attachment upload failed",
			zap.String("item_id", itemID),
			zap.Int("status_code", resp.StatusCode))
		return nil, errors.NewAPIError(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var item entities.Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("error decoding response: %v", err)
	}
	return &item, nil
}

// UpdateAttachment toggles an attachment's primary flag. That is the only
// attachment property the update endpoint supports changing.
func (c *HomeboxClient) UpdateAttachment(ctx context.Context, itemID, attachmentID string, primary bool) (*entities.Item, error) {
	path := "/api/v1/items/" + url.PathEscape(itemID) + "/attachments/" + url.PathEscape(attachmentID)
	body := map[string]bool{"primary": primary}

	var item entities.Item
	if err := c.doRequest(ctx, http.MethodPut, path, nil, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteAttachment removes an attachment from an item. No content on
// success.
func (c *HomeboxClient) DeleteAttachment(ctx context.Context, itemID, attachmentID string) error {
	path := "/api/v1/items/" + url.PathEscape(itemID) + "/attachments/" + url.PathEscape(attachmentID)
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil)
}
