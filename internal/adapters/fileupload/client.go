package fileupload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

const serviceName = "upload service"

// Лимиты проверяются до отправки на сервер
const (
	MaxDocumentSize = 10 << 20 // 10MB для документов
	MaxImageSize    = 5 << 20  // 5MB на изображение
)

// Client — клиент внешнего сервиса хостинга файлов: один файл в
// multipart-поле "file", в ответе JSON с url либо голый URL
type Client struct {
	uploadURL  string
	httpClient *http.Client
}

func NewClient(uploadURL string) *Client {
	return &Client{
		uploadURL:  uploadURL,
		httpClient: &http.Client{},
	}
}

// ValidateFile проверяет MIME-тип и размер файла.
// Изображения — до 5MB, PDF-документы — до 10MB; остальное отклоняется.
func ValidateFile(file port.UploadFile) error {
	switch {
	case strings.HasPrefix(file.ContentType, "image/"):
		if file.Size > MaxImageSize {
			return fmt.Errorf("image %q exceeds the %dMB limit", file.Filename, MaxImageSize>>20)
		}
	case file.ContentType == "application/pdf":
		if file.Size > MaxDocumentSize {
			return fmt.Errorf("document %q exceeds the %dMB limit", file.Filename, MaxDocumentSize>>20)
		}
	default:
		return fmt.Errorf("unsupported file type %q for %q", file.ContentType, file.Filename)
	}
	return nil
}

// Upload отправляет файл и возвращает абсолютный URL размещенной копии
func (c *Client) Upload(ctx context.Context, file port.UploadFile) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FileUploadClient",
		"filename":  file.Filename,
	})

	if err := ValidateFile(file); err != nil {
		logger.Warn("File rejected before upload", port.Fields{"reason": err.Error()})
		return "", err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart form: %w", err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return "", fmt.Errorf("failed to read file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	logger.Debug("Uploading file", port.Fields{"url": c.uploadURL, "size": file.Size})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Failed to perform request to upload service", err, nil)
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := &domain.RemoteError{Service: serviceName, StatusCode: resp.StatusCode, Body: string(respBody)}
		logger.Error("Received error response from upload service", err, port.Fields{"status_code": resp.StatusCode})
		return "", err
	}

	url, err := parseUploadResponse(respBody)
	if err != nil {
		logger.Error("Could not extract URL from upload response", err, nil)
		return "", err
	}

	logger.Info("File uploaded", port.Fields{"hosted_url": url})
	return url, nil
}

// parseUploadResponse понимает оба формата ответа сервера:
// JSON {"url": "..."} и голый URL в теле
func parseUploadResponse(body []byte) (string, error) {
	var jsonResp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &jsonResp); err == nil && jsonResp.URL != "" {
		return jsonResp.URL, nil
	}

	raw := strings.TrimSpace(string(body))
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw, nil
	}

	return "", fmt.Errorf("invalid response format from upload server")
}
