package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/datefield/pkg/app"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

// Runner coordinates MCP server startup.
type Runner struct {
	App     *app.Service
	Name    string
	Version string

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
	HTTPServerCert   string
	HTTPServerKey    string
}

// Run starts the Model Context Protocol server using stdio transport.
func Run(ctx context.Context, svc *app.Service) error {
	r := Runner{
		App:       svc,
		Name:      "datefield",
		Version:   "dev",
		Transport: TransportStdio,
	}
	return r.Do(ctx)
}

// RunHTTP starts the MCP server over HTTP at the provided address.
func RunHTTP(ctx context.Context, svc *app.Service, addr string) error {
	r := Runner{
		App:              svc,
		Name:             "datefield",
		Version:          "dev",
		Transport:        TransportHTTP,
		HTTPListenAddr:   addr,
		HTTPEndpointPath: "/mcp",
	}
	return r.Do(ctx)
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.App == nil {
		return errors.New("mcp runner requires an app service")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	name := r.Name
	if name == "" {
		name = "datefield"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Split date format strings into sections, edit sections with key commands, merge them back into dates and read stored presets."),
		server.WithRecovery(),
		server.WithHooks(toolLogHooks()),
	)

	svc := NewService(r.App)
	registerResources(srv, svc)
	registerTools(srv, svc)

	// Requests log through the logger of the command that started the server.
	withLogger := func(c context.Context) context.Context {
		return ctxlog.WithLogger(c, ctxlog.Logger(ctx))
	}

	switch t := r.Transport; t {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv, withLogger)
	case TransportStdio:
		return server.ServeStdio(srv,
			server.WithStdioContextFunc(withLogger),
			server.WithErrorLogger(ctxlog.NewLogLogger(ctx, slog.LevelError)),
		)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

// toolLogHooks logs every tool call with the format or preset it names, and
// every failed request.
func toolLogHooks() *server.Hooks {
	hooks := &server.Hooks{}
	hooks.AddAfterCallTool(func(ctx context.Context, id any, req *mcp.CallToolRequest, result *mcp.CallToolResult) {
		args := req.GetArguments()
		failed := result != nil && result.IsError
		ctxlog.Debug(ctx, "mcp: tool call", "tool", req.Params.Name,
			"format", args["format"], "preset", args["preset"], "failed", failed)
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		ctxlog.Warn(ctx, "mcp: request failed", "method", method, "error", err)
	})
	return hooks
}

// EndpointPath normalizes an HTTP endpoint path, defaulting to /mcp.
func EndpointPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// ListenURL is the URL clients use for a server bound to addr. Unspecified
// hosts are shown as the loopback address.
func ListenURL(host string, addr net.Addr, path string, tls bool) string {
	scheme := "http"
	if tls {
		scheme = "https"
	}
	tcpAddr, ok := addr.(*net.TCPAddr)
	if !ok {
		return scheme + "://" + addr.String() + EndpointPath(path)
	}
	displayHost := host
	if displayHost == "" || displayHost == "0.0.0.0" || displayHost == "::" {
		displayHost = "127.0.0.1"
		if tcpAddr.IP != nil && !tcpAddr.IP.IsUnspecified() {
			displayHost = tcpAddr.IP.String()
		}
	}
	return scheme + "://" + net.JoinHostPort(displayHost, strconv.Itoa(tcpAddr.Port)) + EndpointPath(path)
}

func (r Runner) checkTLS() error {
	if (r.HTTPServerCert == "") != (r.HTTPServerKey == "") {
		return errors.New("both http tls cert and key must be provided")
	}
	return nil
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer, withLogger func(context.Context) context.Context) error {
	if err := r.checkTLS(); err != nil {
		return err
	}

	handler := server.NewStreamableHTTPServer(srv,
		server.WithHTTPContextFunc(func(c context.Context, _ *http.Request) context.Context {
			return withLogger(c)
		}),
	)

	path := EndpointPath(r.HTTPEndpointPath)

	listenAddr := r.HTTPListenAddr
	if listenAddr == "" {
		listenAddr = "127.0.0.1:8080"
	}

	mux := http.NewServeMux()
	mux.Handle(path, handler)

	httpSrv := &http.Server{
		Handler:  mux,
		ErrorLog: ctxlog.NewLogLogger(ctx, slog.LevelError),
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	ctxlog.Info(ctx, "mcp: serving", "addr", ln.Addr().String(), "path", path)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if r.HTTPServerCert != "" {
		err = httpSrv.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
