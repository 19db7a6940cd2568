package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"sigreg/internal/domain"
)

// ReceiveEvent is the event type carrying incoming messages.
const ReceiveEvent = "receive"

const maxEventSize = 1 << 20

// handlerError marks an error returned by the caller's callback, which stops Listen.
type handlerError struct{ err error }

func (e handlerError) Error() string { return e.err.Error() }
func (e handlerError) Unwrap() error { return e.err }

// Events opens the event stream once and calls fn for every receive event
// until the stream ends, ctx is cancelled, or fn returns an error.
func (c *HTTP) Events(ctx context.Context, fn func(domain.Event) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+eventsPath, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("daemon get %s: %s", eventsPath, resp.Status)
	}
	c.Log.Info("event stream connected", zap.String("url", c.Base+eventsPath))
	return c.readEvents(resp.Body, fn)
}

// Listen keeps the event stream open, reconnecting after c.Retry whenever it
// drops. It returns nil once ctx is cancelled, or the callback's error.
func (c *HTTP) Listen(ctx context.Context, fn func(domain.Event) error) error {
	retry := c.Retry
	if retry <= 0 {
		retry = DefaultRetry
	}
	for {
		err := c.Events(ctx, fn)
		if ctx.Err() != nil {
			return nil
		}
		var herr handlerError
		if errors.As(err, &herr) {
			return herr.err
		}
		c.Log.Warn("event stream closed, reconnecting", zap.Duration("retry", retry), zap.Error(err))

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(retry):
		}
	}
}

// readEvents parses a text/event-stream body. Multi-line data fields are
// joined with newlines; payloads that are not valid JSON are skipped.
func (c *HTTP) readEvents(r io.Reader, fn func(domain.Event) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	var (
		typ  string
		data []string
	)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case line == "":
			if typ == ReceiveEvent && len(data) > 0 {
				payload := strings.Join(data, "\n")
				if !json.Valid([]byte(payload)) {
					c.Log.Warn("skipping malformed event", zap.String("data", payload))
				} else if err := fn(domain.Event{Type: typ, Data: json.RawMessage(payload)}); err != nil {
					return handlerError{err}
				}
			}
			typ, data = "", nil
		case strings.HasPrefix(line, ":"):
			// comment / keep-alive
		case strings.HasPrefix(line, "event:"):
			typ = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}
	return sc.Err()
}
