package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

const serviceName = "record store"

// Client — REST-клиент внешнего табличного хранилища записей.
// Реализует порты хранилища объектов, публикаций, контактов и вложений.
type Client struct {
	baseURL    string
	baseID     string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, baseID, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		baseID:     baseID,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
}

func (c *Client) recordURL(table, id string) string {
	return fmt.Sprintf("%s/%s", c.tableURL(table), url.PathEscape(id))
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, method, requestURL string, body io.Reader) (*http.Response, error) {
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// responseError превращает не-2xx ответ в ошибку домена:
// 404 — ErrNotFound, остальное — RemoteError со статусом и телом
func responseError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", serviceName, domain.ErrNotFound)
	}
	return &domain.RemoteError{
		Service:    serviceName,
		StatusCode: resp.StatusCode,
		Body:       string(bodyBytes),
	}
}

// listRecords выбирает все записи таблицы по формуле фильтра,
// проходя по страницам, пока хранилище возвращает offset
func (c *Client) listRecords(ctx context.Context, table, formula string) ([]record, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RecordStoreClient",
		"table":     table,
	})

	var records []record
	offset := ""

	for {
		params := url.Values{}
		if formula != "" {
			// формулу обязательно URL-кодируем
			params.Set("filterByFormula", formula)
		}
		if offset != "" {
			params.Set("offset", offset)
		}

		requestURL := c.tableURL(table)
		if encoded := params.Encode(); encoded != "" {
			requestURL += "?" + encoded
		}
		logger.Debug("Sending list request to record store", port.Fields{"url": requestURL})

		resp, err := c.doRequest(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			logger.Error("Failed to perform request to record store", err, nil)
			return nil, err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			err := responseError(resp)
			resp.Body.Close()
			logger.Error("Received error response from record store", err, port.Fields{"status_code": resp.StatusCode})
			return nil, err
		}

		var page recordsResponse
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			resp.Body.Close()
			logger.Error("Failed to decode response from record store", err, nil)
			return nil, err
		}
		resp.Body.Close()

		records = append(records, page.Records...)
		if page.Offset == "" {
			break
		}
		offset = page.Offset
	}

	logger.Debug("Successfully listed records", port.Fields{"records_count": len(records)})
	return records, nil
}

func (c *Client) createRecord(ctx context.Context, table string, fields map[string]any) (record, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RecordStoreClient",
		"table":     table,
	})

	body, err := json.Marshal(recordEnvelope{Fields: fields})
	if err != nil {
		return record{}, fmt.Errorf("failed to encode record fields: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.tableURL(table), bytes.NewReader(body))
	if err != nil {
		logger.Error("Failed to perform create request to record store", err, nil)
		return record{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := responseError(resp)
		logger.Error("Received error response from record store", err, port.Fields{"status_code": resp.StatusCode})
		return record{}, err
	}

	var rec record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		logger.Error("Failed to decode created record", err, nil)
		return record{}, err
	}

	logger.Debug("Record created", port.Fields{"record_id": rec.ID})
	return rec, nil
}

func (c *Client) updateRecord(ctx context.Context, table, id string, fields map[string]any) (record, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RecordStoreClient",
		"table":     table,
		"record_id": id,
	})

	body, err := json.Marshal(recordEnvelope{Fields: fields})
	if err != nil {
		return record{}, fmt.Errorf("failed to encode record fields: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPatch, c.recordURL(table, id), bytes.NewReader(body))
	if err != nil {
		logger.Error("Failed to perform update request to record store", err, nil)
		return record{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := responseError(resp)
		logger.Error("Received error response from record store", err, port.Fields{"status_code": resp.StatusCode})
		return record{}, err
	}

	var rec record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		logger.Error("Failed to decode updated record", err, nil)
		return record{}, err
	}

	return rec, nil
}

func (c *Client) deleteRecord(ctx context.Context, table, id string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RecordStoreClient",
		"table":     table,
		"record_id": id,
	})

	resp, err := c.doRequest(ctx, http.MethodDelete, c.recordURL(table, id), nil)
	if err != nil {
		logger.Error("Failed to perform delete request to record store", err, nil)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := responseError(resp)
		logger.Error("Received error response from record store", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	return nil
}
