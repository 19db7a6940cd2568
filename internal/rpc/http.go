package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"sigreg/internal/domain"
)

const (
	rpcPath    = "/api/v1/rpc"
	eventsPath = "/api/v1/events"

	// DefaultRetry is the pause between event stream reconnects.
	DefaultRetry = 5 * time.Second
)

// ErrNoRecipient is returned by Send when no recipient remains after trimming.
var ErrNoRecipient = errors.New("at least one recipient is required")

// Error is a JSON-RPC error object returned by the daemon.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string { return fmt.Sprintf("json-rpc error %d: %s", e.Code, e.Message) }

type request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      string `json:"id"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
	ID      any             `json:"id"`
}

type sendParams struct {
	Recipient []string `json:"recipient"`
	Message   string   `json:"message"`
}

// HTTP is a client for `signal-cli daemon --http`.
type HTTP struct {
	Base  string
	HTTP  *http.Client
	Log   *zap.Logger
	Retry time.Duration
}

// NewHTTP returns a client for the daemon at base, e.g. http://localhost:8080.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{
		Base:  strings.TrimRight(base, "/"),
		HTTP:  client,
		Log:   zap.NewNop(),
		Retry: DefaultRetry,
	}
}

// Send sends message to recipients and returns the daemon's result member.
func (c *HTTP) Send(ctx context.Context, recipients []string, message string) (json.RawMessage, error) {
	recipients = lo.Compact(lo.Map(recipients, func(r string, _ int) string {
		return strings.TrimSpace(r)
	}))
	if len(recipients) == 0 {
		return nil, ErrNoRecipient
	}
	return c.Call(ctx, "send", sendParams{Recipient: recipients, Message: message})
}

// Call invokes a JSON-RPC method. An empty response body yields a nil result.
func (c *HTTP) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	body, err := c.post(ctx, rpcPath, request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", method, err)
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Result, nil
}

func (c *HTTP) post(ctx context.Context, path string, in any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("daemon post %s: %s", path, resp.Status)
	}
	return body, nil
}

// Compile-time assertion that HTTP implements domain.Messenger.
var _ domain.Messenger = (*HTTP)(nil)
