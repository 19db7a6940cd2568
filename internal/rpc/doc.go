// Package rpc is a client for a running signal-cli daemon in HTTP mode.
//
// Supported operations:
//   - Sending a message via the JSON-RPC "send" method (POST /api/v1/rpc).
//   - Following the server-sent event stream (GET /api/v1/events) and
//     delivering each "receive" event, reconnecting when the stream drops.
//
// Non-2xx statuses are returned as errors naming the path and status text;
// JSON-RPC error objects are returned as *Error.
package rpc
