package mcp

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/mark3labs/mcp-go/mcp"
)

func TestEndpointPath(t *testing.T) {
	for in, want := range map[string]string{
		"":        "/mcp",
		"  ":      "/mcp",
		"mcp":     "/mcp",
		"/fields": "/fields",
	} {
		if got := EndpointPath(in); got != want {
			t.Fatalf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestListenURL(t *testing.T) {
	addr := &net.TCPAddr{IP: net.IPv4zero, Port: 8081}
	if got, want := ListenURL("0.0.0.0", addr, "/mcp", false), "http://127.0.0.1:8081/mcp"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, want := ListenURL("::1", &net.TCPAddr{IP: net.IPv6loopback, Port: 9}, "x", true), "https://[::1]:9/x"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRunnerChecksTLS(t *testing.T) {
	r := Runner{App: newTestService().App, HTTPServerCert: "cert.pem"}
	if err := r.Do(context.Background()); err == nil || !strings.Contains(err.Error(), "cert and key") {
		t.Fatalf("expected a tls pairing error, got %v", err)
	}
	if err := (Runner{}).Do(context.Background()); err == nil {
		t.Fatalf("expected an error without an app service")
	}
	if err := (Runner{App: newTestService().App, Transport: "pigeon"}).Do(context.Background()); err == nil {
		t.Fatalf("expected an unknown transport error")
	}
}

func TestToolCallsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	hooks := toolLogHooks()
	req := &mcp.CallToolRequest{}
	req.Params.Name = "split_format"
	req.Params.Arguments = map[string]any{"format": "MM/DD/YYYY"}
	for _, hook := range hooks.OnAfterCallTool {
		hook(ctx, 1, req, &mcp.CallToolResult{IsError: true})
	}
	out := buf.String()
	for _, want := range []string{"tool=split_format", "format=MM/DD/YYYY", "failed=true"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log, got %q", want, out)
		}
	}
}

func TestServeHTTPStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	listening := make(chan net.Addr, 1)
	r := Runner{
		App:             newTestService().App,
		Transport:       TransportHTTP,
		HTTPListenAddr:  "127.0.0.1:0",
		OnHTTPListening: func(a net.Addr) { listening <- a },
	}
	done := make(chan error, 1)
	go func() { done <- r.Do(ctx) }()

	select {
	case a := <-listening:
		if a.(*net.TCPAddr).Port == 0 {
			t.Fatalf("expected a bound port, got %v", a)
		}
	case err := <-done:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for the listener")
	}
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected a clean shutdown, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("timed out waiting for shutdown")
	}
}
