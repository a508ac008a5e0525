// Package client holds the HTTP clients for the external collaborators
// of the workflow: the TrustMe signing provider and the documents
// service share the same call shape.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/dispatch"
)

// SigningClient performs the remote calls behind dispatched workflow
// actions. A non-2xx response is decoded into the structured error
// payload and returned as a *dispatch.CallError.
type SigningClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ dispatch.Caller = (*SigningClient)(nil)

func NewSigningClient(baseURL, apiKey string) *SigningClient {
	return &SigningClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

func (c *SigningClient) Call(ctx context.Context, endpoint dispatch.Endpoint) (*dispatch.Result, error) {
	url := fmt.Sprintf("%s%s", c.baseURL, endpoint.Path)

	var reqBody io.Reader
	if endpoint.Body != nil {
		body, err := json.Marshal(endpoint.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, endpoint.Method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call signing provider: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var payload dispatch.ErrorPayload
		_ = json.Unmarshal(bodyBytes, &payload)
		return nil, dispatch.NewCallError(payload, fmt.Errorf("signing provider returned status %d", resp.StatusCode))
	}

	return &dispatch.Result{Data: bodyBytes}, nil
}
