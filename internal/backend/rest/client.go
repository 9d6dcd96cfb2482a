// Package rest implements the service.Service interface against the remote task REST service.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"todoweb/internal/config"
	"todoweb/internal/logger"
	"todoweb/internal/metrics"
	"todoweb/internal/service"
)

// RequestIDHeader carries a per-request UUID to the remote service.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody caps how much of a failed response body is kept for diagnostics.
const maxErrorBody = 512

// Client implements service.Service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        *slog.Logger
}

// listEnvelope is the body of GET {base}.
type listEnvelope struct {
	Todos []service.Task `json:"todos"`
}

type createRequest struct {
	Title string `json:"title"`
}

// New creates a client for cfg.APIURL.
func New(cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := NewWithHTTPClient(cfg.APIURL, &http.Client{})
	c.timeout = cfg.RequestTimeout
	return c, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        logger.Get(),
	}
}

// WithLogger replaces the logger used for failure diagnostics.
func (c *Client) WithLogger(l *slog.Logger) *Client {
	c.log = l
	return c
}

// ListTasks returns the todos field of the collection envelope.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var env listEnvelope
	requestID, err := c.do(ctx, service.OpList, http.MethodGet, c.baseURL, nil, &env)
	if err == nil {
		for _, task := range env.Todos {
			if task.ID == "" {
				err = missingID(service.OpList)
				break
			}
		}
	}
	if err != nil {
		c.log.Error("failed to fetch tasks", "request_id", requestID, "error", err)
		return nil, err
	}
	if env.Todos == nil {
		return []service.Task{}, nil
	}
	return env.Todos, nil
}

// CreateTask posts a new title and returns the server-assigned task.
func (c *Client) CreateTask(ctx context.Context, title string) (service.Task, error) {
	var task service.Task
	requestID, err := c.do(ctx, service.OpCreate, http.MethodPost, c.baseURL, createRequest{Title: title}, &task)
	if err == nil && task.ID == "" {
		err = missingID(service.OpCreate)
	}
	if err != nil {
		c.log.Error("failed to create task", "title", title, "request_id", requestID, "error", err)
		return service.Task{}, err
	}
	return task, nil
}

// UpdateTask puts a partial patch and returns the full updated task.
func (c *Client) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	var task service.Task
	requestID, err := c.do(ctx, service.OpUpdate, http.MethodPut, c.taskURL(id), patch, &task)
	if err == nil && task.ID == "" {
		err = missingID(service.OpUpdate)
	}
	if err != nil {
		c.log.Error("failed to update task", "id", id, "request_id", requestID, "error", err)
		return service.Task{}, err
	}
	return task, nil
}

// DeleteTask deletes a task. The response body is ignored.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	requestID, err := c.do(ctx, service.OpDelete, http.MethodDelete, c.taskURL(id), nil, nil)
	if err != nil {
		c.log.Error("failed to delete task", "id", id, "request_id", requestID, "error", err)
		return err
	}
	return nil
}

func (c *Client) taskURL(id string) string {
	return c.baseURL + "/" + url.PathEscape(id)
}

// do sends one request and decodes a 2xx body into out (nil discards it).
// It returns the X-Request-ID it sent. Every failure is a *service.TransportError.
func (c *Client) do(ctx context.Context, op, method, target string, in, out any) (requestID string, err error) {
	requestID = uuid.New().String()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		outcome := metrics.OutcomeOK
		if err != nil {
			outcome = metrics.OutcomeError
		}
		metrics.RemoteRequests.WithLabelValues(op, outcome).Inc()
		metrics.RemoteDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return requestID, &service.TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return requestID, &service.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("remote request", "op", op, "method", method, "url", target, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return requestID, &service.TransportError{Op: op, Err: wrapError(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return requestID, &service.TransportError{Op: op, Status: resp.StatusCode, Err: errors.New(msg)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return requestID, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return requestID, &service.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return requestID, nil
}

// wrapError prefixes context errors with a short reason, keeping the chain.
func wrapError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("request timed out: %w", err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("request canceled: %w", err)
	}
	return err
}

// errMissingID marks a 2xx response whose task has no server-assigned id.
var errMissingID = errors.New("response missing _id")

func missingID(op string) error {
	return &service.TransportError{Op: op, Err: errMissingID}
}
