// Package salesforce is a minimal client for the Salesforce REST API: SOQL
// queries and sObject create/update.
package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultAPIVersion = "v60.0"

// ErrMissingAccessToken is returned before any request is sent when the
// client was built without a bearer token.
var ErrMissingAccessToken = errors.New("salesforce access token not found in environment variables")

// APIError is a non-2xx response from the REST API.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type apiErrorBody struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

type Client struct {
	baseURL    string
	apiVersion string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithAPIVersion(v string) Option {
	return func(c *Client) {
		if v != "" {
			c.apiVersion = v
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func NewClient(instanceURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(instanceURL, "/"),
		apiVersion: DefaultAPIVersion,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type queryResponse[T any] struct {
	TotalSize      int    `json:"totalSize"`
	Done           bool   `json:"done"`
	NextRecordsURL string `json:"nextRecordsUrl"`
	Records        []T    `json:"records"`
}

// Query runs a SOQL statement and decodes every page of records into T.
func Query[T any](ctx context.Context, c *Client, soql string) ([]T, error) {
	path := c.servicePath("/query?q=" + url.QueryEscape(soql))
	var out []T
	for path != "" {
		var page queryResponse[T]
		if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, err
		}
		out = append(out, page.Records...)
		if page.Done || page.NextRecordsURL == "" {
			break
		}
		path = page.NextRecordsURL
	}
	return out, nil
}

type createResponse struct {
	ID      string         `json:"id"`
	Success bool           `json:"success"`
	Errors  []apiErrorBody `json:"errors"`
}

// Create inserts an sObject and returns its new Id.
func (c *Client) Create(ctx context.Context, object string, fields map[string]any) (string, error) {
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, c.servicePath("/sobjects/"+object), fields, &resp); err != nil {
		return "", err
	}
	if !resp.Success && len(resp.Errors) > 0 {
		return "", &APIError{StatusCode: http.StatusBadRequest, ErrorCode: resp.Errors[0].ErrorCode, Message: resp.Errors[0].Message}
	}
	return resp.ID, nil
}

// Update patches the given fields on an existing sObject.
func (c *Client) Update(ctx context.Context, object, id string, fields map[string]any) error {
	if id == "" {
		return fmt.Errorf("update %s: record id is required", object)
	}
	return c.do(ctx, http.MethodPatch, c.servicePath("/sobjects/"+object+"/"+url.PathEscape(id)), fields, nil)
}

func (c *Client) servicePath(endpoint string) string {
	return "/services/data/" + c.apiVersion + endpoint
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if c.token == "" {
		return ErrMissingAccessToken
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	c.logger.Debug("salesforce request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := decodeAPIError(res)
		c.logger.Error("Salesforce API Error",
			zap.Int("status", res.StatusCode),
			zap.String("code", apiErr.ErrorCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(res *http.Response) *APIError {
	apiErr := &APIError{StatusCode: res.StatusCode, Message: "Salesforce API Error"}
	var errs []apiErrorBody
	if err := json.NewDecoder(res.Body).Decode(&errs); err == nil && len(errs) > 0 && errs[0].Message != "" {
		apiErr.Message = errs[0].Message
		apiErr.ErrorCode = errs[0].ErrorCode
	}
	return apiErr
}
