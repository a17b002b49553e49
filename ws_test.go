// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"superchain/client/internal/credentials"
	"superchain/client/internal/session"
	"superchain/client/query"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// newStreamServer runs a websocket endpoint that validates the path and hands
// each accepted connection to the given handler.
func newStreamServer(t *testing.T, handler func(conn *websocket.Conn)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != session.WSPath {
			http.NotFound(w, r)
			return
		}
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		handler(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func readWireRequest(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		// Reconnect attempts after the scripted exchange land here; the
		// client-side assertions catch a genuinely missing request.
		return nil
	}
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		t.Errorf("decode request: %v", err)
		return nil
	}
	return req
}

func sendFrame(t *testing.T, conn *websocket.Conn, kind, id, body string) {
	t.Helper()
	header := fmt.Sprintf(`{"kind":%q,"id":%q}`, kind, id)
	if err := conn.WriteMessage(websocket.BinaryMessage, []byte(header+"\n"+body)); err != nil {
		t.Errorf("write %s frame: %v", kind, err)
	}
}

func dialTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	t.Setenv(credentials.EnvURL, "")
	host := strings.TrimPrefix(srv.URL, "http://")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := NewBuilder().Endpoint(host).Secure(false).Credential("u", "p").Build(ctx)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestClientGetStatusOverWebsocket(t *testing.T) {
	const lines = `{"type":"CHAIN","chain":"ETH","latest_block_height":100,"status":"OK"}` + "\n" +
		`{"type":"CHAIN","chain":"MATIC","latest_block_height":200,"status":"OK"}`

	srv := newStreamServer(t, func(conn *websocket.Conn) {
		req := readWireRequest(t, conn)
		if req == nil {
			return
		}
		if req["operation"] != "getStatus" {
			t.Errorf("operation = %v, want getStatus", req["operation"])
		}
		if req["format"] != "json_stream" {
			t.Errorf("format = %v, want json_stream", req["format"])
		}
		id, _ := req["id"].(string)
		sendFrame(t, conn, "Start", id, "")
		sendFrame(t, conn, "Continue", id, lines)
		sendFrame(t, conn, "End", id, "")
	})

	c := dialTestClient(t, srv)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	statuses, err := c.GetStatus(ctx)
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(statuses))
	}
	if statuses[0].Chain != query.ChainETH || statuses[1].Chain != query.ChainMATIC {
		t.Errorf("chains = %v, %v", statuses[0].Chain, statuses[1].Chain)
	}
	if statuses[1].LatestBlockHeight != 200 {
		t.Errorf("height = %d", statuses[1].LatestBlockHeight)
	}
}

func TestClientGetLogsCarriesRequestFields(t *testing.T) {
	srv := newStreamServer(t, func(conn *websocket.Conn) {
		req := readWireRequest(t, conn)
		if req == nil {
			return
		}
		if req["operation"] != "getLogs" {
			t.Errorf("operation = %v", req["operation"])
		}
		if req["chains"] != "ETH,ARB" {
			t.Errorf("chains = %v", req["chains"])
		}
		if req["from_block"] != float64(500) {
			t.Errorf("from_block = %v", req["from_block"])
		}
		if req["address__in"] != "0xdead" {
			t.Errorf("address__in = %v", req["address__in"])
		}
		if req["format"] != "arrow_stream" {
			t.Errorf("format = %v", req["format"])
		}
		if req["deltas"] != true {
			t.Errorf("deltas = %v", req["deltas"])
		}
		id, _ := req["id"].(string)
		sendFrame(t, conn, "Start", id, "")
		sendFrame(t, conn, "End", id, "")
	})

	c := dialTestClient(t, srv)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	st, err := c.GetLogs(ctx, query.GetLogsRequest{
		Chains:    query.Chains{query.ChainETH, query.ChainARB},
		FromBlock: query.Exact(500),
		AddressIn: query.List{"0xdead"},
	}, StreamOptions{Format: query.FormatArrowStream, Deltas: true})
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	defer st.Close()

	if _, err := st.Recv(ctx); err != io.EOF {
		t.Errorf("Recv = %v, want EOF", err)
	}
}

func TestClientQueryDefaultsFormat(t *testing.T) {
	srv := newStreamServer(t, func(conn *websocket.Conn) {
		req := readWireRequest(t, conn)
		if req == nil {
			return
		}
		if req["format"] != string(query.DefaultFormat) {
			t.Errorf("format = %v, want %v", req["format"], query.DefaultFormat)
		}
		id, _ := req["id"].(string)
		sendFrame(t, conn, "Start", id, "")
		sendFrame(t, conn, "End", id, "")
	})

	c := dialTestClient(t, srv)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	st, err := c.Query(ctx, "getBlocks", map[string]any{"chains": "ETH"}, StreamOptions{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	defer st.Close()
	if _, err := st.Recv(ctx); err != io.EOF {
		t.Errorf("Recv = %v, want EOF", err)
	}
}
