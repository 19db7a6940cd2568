package rpc_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sigreg/internal/domain"
	"sigreg/internal/rpc"
)

func TestSend_EncodesRequestAndReturnsResult(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		req.Equal("/api/v1/rpc", r.URL.Path)
		req.Equal("application/json", r.Header.Get("Content-Type"))

		var body struct {
			JSONRPC string `json:"jsonrpc"`
			Method  string `json:"method"`
			Params  struct {
				Recipient []string `json:"recipient"`
				Message   string   `json:"message"`
			} `json:"params"`
			ID string `json:"id"`
		}
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal("2.0", body.JSONRPC)
		req.Equal("send", body.Method)
		req.Equal([]string{"+15550001111"}, body.Params.Recipient)
		req.Equal("hello", body.Params.Message)
		req.NotEmpty(body.ID)

		fmt.Fprintf(w, `{"jsonrpc":"2.0","result":{"timestamp":1700000000000},"id":%q}`, body.ID)
	}))
	defer srv.Close()

	c := rpc.NewHTTP(srv.URL+"/", srv.Client())
	res, err := c.Send(context.Background(), []string{" +15550001111 ", ""}, "hello")
	req.NoError(err)
	req.JSONEq(`{"timestamp":1700000000000}`, string(res))
}

func TestSend_JSONRPCError(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"jsonrpc":"2.0","error":{"code":-32602,"message":"Invalid recipient"},"id":"1"}`)
	}))
	defer srv.Close()

	_, err := rpc.NewHTTP(srv.URL, srv.Client()).Send(context.Background(), []string{"bogus"}, "hi")

	var rpcErr *rpc.Error
	req.ErrorAs(err, &rpcErr)
	req.Equal(-32602, rpcErr.Code)
	req.Equal("Invalid recipient", rpcErr.Message)
}

func TestSend_EmptyBody(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	res, err := rpc.NewHTTP(srv.URL, srv.Client()).Send(context.Background(), []string{"+1"}, "hi")
	req.NoError(err)
	req.Nil(res)
}

func TestSend_HTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := rpc.NewHTTP(srv.URL, srv.Client()).Send(context.Background(), []string{"+1"}, "hi")
	require.ErrorContains(t, err, "502")
}

func TestSend_NoRecipient(t *testing.T) {
	_, err := rpc.NewHTTP("http://127.0.0.1:0", nil).Send(context.Background(), []string{" "}, "hi")
	require.ErrorIs(t, err, rpc.ErrNoRecipient)
}

const stream = ": keep-alive\n" +
	"event: receive\n" +
	"data: {\"envelope\":{\"source\":\"+15550002222\",\n" +
	"data: \"dataMessage\":{\"message\":\"hi\"}}}\n" +
	"\n" +
	"event: other\n" +
	"data: {\"ignored\":true}\n" +
	"\n" +
	"event: receive\n" +
	"data: not json\n" +
	"\n" +
	"event: receive\n" +
	"data: {\"n\":2}\n" +
	"\n"

func TestEvents_ParsesReceiveEvents(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/api/v1/events", r.URL.Path)
		req.Equal("text/event-stream", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, stream)
	}))
	defer srv.Close()

	var got []domain.Event
	err := rpc.NewHTTP(srv.URL, srv.Client()).Events(context.Background(), func(e domain.Event) error {
		got = append(got, e)
		return nil
	})
	req.NoError(err)
	req.Len(got, 2)
	req.Equal(rpc.ReceiveEvent, got[0].Type)
	req.JSONEq(`{"envelope":{"source":"+15550002222","dataMessage":{"message":"hi"}}}`, string(got[0].Data))
	req.JSONEq(`{"n":2}`, string(got[1].Data))
}

func TestListen_ReconnectsUntilHandlerStops(t *testing.T) {
	req := require.New(t)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			// First connection drops without events.
			return
		}
		fmt.Fprint(w, "event: receive\ndata: {\"ok\":true}\n\n")
	}))
	defer srv.Close()

	stop := errors.New("stop")
	c := rpc.NewHTTP(srv.URL, srv.Client())
	c.Retry = 10 * time.Millisecond

	err := c.Listen(context.Background(), func(domain.Event) error { return stop })
	req.ErrorIs(err, stop)
	req.GreaterOrEqual(hits.Load(), int32(2))
}

func TestListen_ReturnsNilOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	c := rpc.NewHTTP(srv.URL, srv.Client())
	c.Retry = 10 * time.Millisecond

	require.NoError(t, c.Listen(ctx, func(domain.Event) error { return nil }))
}
