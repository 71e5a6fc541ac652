package faceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// doGetJSON performs a GET request and unmarshals the JSON response into the result type.
// The endpoint is the path after the API root (e.g. "persongroups/family").
func doGetJSON[T any](ctx context.Context, c *Client, endpoint string) (*T, error) {
	return doRequestJSON[T](ctx, c, http.MethodGet, endpoint, nil)
}

// doPostJSON performs a POST request with a JSON body and unmarshals the JSON response.
func doPostJSON[T any](ctx context.Context, c *Client, endpoint string, requestBody any) (*T, error) {
	return doRequestJSON[T](ctx, c, http.MethodPost, endpoint, requestBody)
}

// doRequestJSON sends a request and decodes a 2xx body into T. An empty 2xx
// body yields the zero value of T.
func doRequestJSON[T any](ctx context.Context, c *Client, method, endpoint string, requestBody any) (*T, error) {
	body, err := c.send(ctx, method, endpoint, requestBody)
	if err != nil {
		return nil, err
	}

	var result T
	if len(bytes.TrimSpace(body)) == 0 {
		return &result, nil
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &TransportError{Op: method + " " + endpoint, Err: fmt.Errorf("could not unmarshal response: %w", err)}
	}
	return &result, nil
}

// doRequestRaw sends a request and discards the success body.
func doRequestRaw(ctx context.Context, c *Client, method, endpoint string, requestBody any) error {
	_, err := c.send(ctx, method, endpoint, requestBody)
	return err
}

// send is the single dispatch path for every operation. It returns the raw
// body of a 2xx response, a *ServiceError for failure responses carrying the
// API's error envelope, and a *TransportError for everything else.
func (c *Client) send(ctx context.Context, method, endpoint string, requestBody any) ([]byte, error) {
	op := method + " " + endpoint

	var bodyReader io.Reader
	if requestBody != nil {
		jsonBody, err := json.Marshal(requestBody)
		if err != nil {
			return nil, &TransportError{Op: op, Err: fmt.Errorf("could not marshal request body: %w", err)}
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolveURL(endpoint), bodyReader)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("could not create request: %w", err)}
	}
	req.Header.Set(headerSubscriptionKey, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("face api request failed", zap.String("method", method), zap.String("endpoint", endpoint), zap.Error(err))
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("could not read response body: %w", err)}
	}

	c.logger.Debug("face api request",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.failure(op, resp.StatusCode, body)
	}

	c.captureResponse(endpoint, body)
	return body, nil
}

// failure maps a non-2xx response to the error returned to the caller.
func (c *Client) failure(op string, status int, body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		c.logger.Warn("face api failure without error body", zap.String("op", op), zap.Int("status", status))
		return &TransportError{Op: op, StatusCode: status, Err: errors.New(readErrorBody(body))}
	}
	envelope.Error.StatusCode = status
	c.logger.Warn("face api service error",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("code", envelope.Error.Code),
	)
	return envelope.Error
}

// readErrorBody renders a failure body for an error message.
func readErrorBody(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return "empty response body"
	}
	return string(body)
}
