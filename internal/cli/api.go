package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/GlebRadaev/fuelfleet/pkg/clients"
	"github.com/GlebRadaev/fuelfleet/pkg/utils"
)

// APIError is a non-2xx answer from fleetd.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fleetd answered %d: %s", e.Status, e.Message)
}

type apiClient struct {
	client clients.HTTPClientI
	opts   *RootOptions
}

func (c *apiClient) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.opts.Token)
	h.Set("Content-Type", "application/json")
	return h
}

func (c *apiClient) url(path string) string {
	return strings.TrimRight(c.opts.Addr, "/") + path
}

func (c *apiClient) get(path string, out any) error {
	status, body, err := c.client.Get(c.url(path), c.headers())
	return decode(status, body, err, out)
}

func (c *apiClient) post(path string, out any) error {
	status, body, err := c.client.Post(c.url(path), c.headers(), nil)
	return decode(status, body, err, out)
}

func decode(status int, body []byte, err error, out any) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if status < 200 || status > 299 {
		var resp utils.Response
		if json.Unmarshal(body, &resp) != nil || resp.Message == "" {
			resp.Message = http.StatusText(status)
		}
		return &APIError{Status: status, Message: resp.Message}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unexpected response: %w", err)
	}
	return nil
}
