package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) Health() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) GetDraft() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/draft", d.baseURL))
}

func (d *APIDriver) SetDraftName(name string) (*http.Response, error) {
	return d.send(http.MethodPut, "/v1/draft/name", map[string]any{"name": name})
}

func (d *APIDriver) AddField(field map[string]any) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/draft/fields", field)
}

func (d *APIDriver) SaveDraft() (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/draft/save", nil)
}

func (d *APIDriver) ListSchemas() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/schemas", d.baseURL))
}

func (d *APIDriver) GetSchema(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/schemas/%s", d.baseURL, id))
}

func (d *APIDriver) DeleteSchema(id string) (*http.Response, error) {
	return d.send(http.MethodDelete, fmt.Sprintf("/v1/schemas/%s", id), nil)
}

func (d *APIDriver) CheckIntegrity(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/schemas/%s/integrity", d.baseURL, id))
}

func (d *APIDriver) PreviewSchema(id string) (*http.Response, error) {
	return d.send(http.MethodPost, fmt.Sprintf("/v1/schemas/%s/preview", id), nil)
}

func (d *APIDriver) PreviewDraft() (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/draft/preview", nil)
}

func (d *APIDriver) SetValue(fieldID string, value any) (*http.Response, error) {
	return d.send(http.MethodPut, fmt.Sprintf("/v1/preview/values/%s", fieldID), map[string]any{"value": value})
}

func (d *APIDriver) Submit() (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/preview/submit", nil)
}

func (d *APIDriver) send(method, path string, body any) (*http.Response, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			panic(err)
		}
	}
	req, err := http.NewRequest(method, d.baseURL+path, &payload)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}
