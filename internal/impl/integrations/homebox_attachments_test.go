package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMultipart_ByteExact(t *testing.T) {
	// Binary payload including bytes that would break under text re-encoding.
	content := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0xff, 0xfe}

	body := encodeMultipart("fixed-boundary", "photo.png", [][2]string{
		{"name", "photo.png"},
		{"type", "photo"},
		{"primary", "true"},
	}, content)

	expected := []byte("--fixed-boundary\r\n" +
		"Content-Disposition: form-data; name=\"name\"\r\n" +
		"\r\n" +
		"photo.png\r\n" +
		"--fixed-boundary\r\n" +
		"Content-Disposition: form-data; name=\"type\"\r\n" +
		"\r\n" +
		"photo\r\n" +
		"--fixed-boundary\r\n" +
		"Content-Disposition: form-data; name=\"primary\"\r\n" +
		"\r\n" +
		"true\r\n" +
		"--fixed-boundary\r\n" +
		"Content-Disposition: form-data; name=\"file\"; filename=\"photo.png\"\r\n" +
		"Content-Type: application/octet-stream\r\n" +
		"\r\n")
	expected = append(expected, content...)
	expected = append(expected, []byte("\r\n--fixed-boundary--\r\n")...)

	assert.Equal(t, expected, body)
}

func TestEncodeMultipart_ParsesWithStandardReader(t *testing.T) {
	content := []byte{0x00, 0x01, 0x02, 0xff}
	body := encodeMultipart("b0undary", "data.bin", [][2]string{{"name", "data.bin"}}, content)

	reader := multipart.NewReader(bytes.NewReader(body), "b0undary")

	part, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "name", part.FormName())
	value, _ := io.ReadAll(part)
	assert.Equal(t, "data.bin", string(value))

	part, err = reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "file", part.FormName())
	assert.Equal(t, "data.bin", part.FileName())
	payload, _ := io.ReadAll(part)
	assert.Equal(t, content, payload)

	_, err = reader.NextPart()
	assert.Equal(t, io.EOF, err)
}

func TestUploadAttachment_RoundTrip(t *testing.T) {
	content := []byte{0xde, 0xad, 0xbe, 0xef}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/login", func(w http.ResponseWriter, r *http.Request) {
		writeLogin(w, "Bearer tok", time.Now().Add(time.Hour))
	})
	mux.HandleFunc("/api/v1/items/item-1/attachments", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)
		require.NotEmpty(t, params["boundary"])

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "receipt.pdf", r.FormValue("name"))
		assert.Equal(t, "attachment", r.FormValue("type"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "receipt.pdf", header.Filename)
		uploaded, _ := io.ReadAll(file)
		assert.Equal(t, content, uploaded)

		json.NewEncoder(w).Encode(map[string]any{
			"id": "item-1", "name": "Drill", "quantity": 1,
			"attachments": []map[string]any{
				{"id": "att-old", "type": "photo"},
				{"id": "att-new", "type": "attachment"},
			},
		})
	})

	client, _ := newTestClient(t, mux)
	item, err := client.UploadAttachment(context.Background(), "item-1", "receipt.pdf", "attachment", false, content)

	require.NoError(t, err)
	require.Len(t, item.Attachments, 2)
	assert.Equal(t, "att-new", item.Attachments[len(item.Attachments)-1].ID)
}

func TestUpdateAttachment_SendsPrimaryFlag(t *testing.T) {
	var body map[string]bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/login", func(w http.ResponseWriter, r *http.Request) {
		writeLogin(w, "Bearer tok", time.Now().Add(time.Hour))
	})
	mux.HandleFunc("/api/v1/items/item-1/attachments/att-2", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(map[string]any{"id": "item-1", "name": "Drill", "quantity": 1})
	})

	client, _ := newTestClient(t, mux)
	_, err := client.UpdateAttachment(context.Background(), "item-1", "att-2", true)

	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"primary": true}, body)
}

func TestDeleteAttachment_NoContentSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/login", func(w http.ResponseWriter, r *http.Request) {
		writeLogin(w, "Bearer tok", time.Now().Add(time.Hour))
	})
	mux.HandleFunc("/api/v1/items/item-1/attachments/att-2", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	client, _ := newTestClient(t, mux)
	require.NoError(t, client.DeleteAttachment(context.Background(), "item-1", "att-2"))
}
