// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	cerr "superchain/client/internal/errors"
	"superchain/client/query"
)

type recordedRequest struct {
	path   string
	query  url.Values
	user   string
	pass   string
	hasPwd bool
}

func newAPIServer(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.user, rec.pass, rec.hasPwd = r.BasicAuth()
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func hostOf(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	return strings.TrimPrefix(srv.URL, "http://")
}

func TestHTTPClientGetLogsEncodesRequest(t *testing.T) {
	srv, rec := newAPIServer(t, http.StatusOK, "{}")
	c, err := newHTTPClient(hostOf(t, srv), false, "alice", "s3cret")
	if err != nil {
		t.Fatalf("newHTTPClient: %v", err)
	}

	req := query.GetLogsRequest{
		Chains:    query.Chains{query.ChainETH, query.ChainMATIC},
		FromBlock: query.Exact(19000000),
		ToBlock:   query.None(),
		AddressIn: query.List{"0xdead", "0xbeef"},
	}
	if _, err := c.GetLogs(context.Background(), req, query.FormatJSON); err != nil {
		t.Fatalf("GetLogs: %v", err)
	}

	if rec.path != "/v1/api/logs" {
		t.Errorf("path = %q, want /v1/api/logs", rec.path)
	}
	if !rec.hasPwd || rec.user != "alice" || rec.pass != "s3cret" {
		t.Errorf("basic auth = %q/%q (%v)", rec.user, rec.pass, rec.hasPwd)
	}
	want := map[string]string{
		"chains":      "ETH,MATIC",
		"from_block":  "19000000",
		"to_block":    "none",
		"address__in": "0xdead,0xbeef",
		"format":      "json",
	}
	for k, v := range want {
		if got := rec.query.Get(k); got != v {
			t.Errorf("query[%s] = %q, want %q", k, got, v)
		}
	}
	if rec.query.Has("topic0__in") {
		t.Error("empty topic filter was sent")
	}
}

func TestHTTPClientDefaultsFormat(t *testing.T) {
	srv, rec := newAPIServer(t, http.StatusOK, "")
	c, err := newHTTPClient(hostOf(t, srv), false, "", "")
	if err != nil {
		t.Fatalf("newHTTPClient: %v", err)
	}
	if _, err := c.GetBlocks(context.Background(), query.GetBlocksRequest{}, ""); err != nil {
		t.Fatalf("GetBlocks: %v", err)
	}
	if got := rec.query.Get("format"); got != string(query.DefaultFormat) {
		t.Errorf("format = %q, want %q", got, query.DefaultFormat)
	}
	if rec.hasPwd {
		t.Error("authorization sent without credentials")
	}
}

func TestHTTPClientGetStatus(t *testing.T) {
	const body = `[{"type":"CHAIN","chain":"ETH","chain_code":"ETH","chain_name":"Ethereum",` +
		`"service":"blocks","entity":"block","latest_block_height":19000123,` +
		`"timestamp":1756100000,"status":"OK"}]`
	srv, rec := newAPIServer(t, http.StatusOK, body)
	c, err := newHTTPClient(hostOf(t, srv), false, "", "")
	if err != nil {
		t.Fatalf("newHTTPClient: %v", err)
	}

	statuses, err := c.GetStatus(context.Background())
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if rec.path != "/v1/api/status" {
		t.Errorf("path = %q", rec.path)
	}
	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1", len(statuses))
	}
	s := statuses[0]
	if s.Chain != query.ChainETH || s.LatestBlockHeight != 19000123 || s.Status != query.HealthOK {
		t.Errorf("decoded status = %+v", s)
	}
}

func TestHTTPClientServerError(t *testing.T) {
	srv, _ := newAPIServer(t, http.StatusForbidden, "no access to chain")
	c, err := newHTTPClient(hostOf(t, srv), false, "", "")
	if err != nil {
		t.Fatalf("newHTTPClient: %v", err)
	}
	_, err = c.GetTxs(context.Background(), query.GetTxsRequest{}, query.FormatJSON)
	if err == nil {
		t.Fatal("expected error on 403")
	}
	if !cerr.Is(err, cerr.RequestError) {
		t.Errorf("error kind = %v, want request error", err)
	}
	if !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "no access to chain") {
		t.Errorf("error message lost detail: %v", err)
	}
}
