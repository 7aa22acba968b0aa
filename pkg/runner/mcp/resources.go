package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerPresetsResource(srv, svc)
	registerPresetTemplate(srv, svc)
}

func registerPresetsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"datefield://presets",
		"Presets",
		mcp.WithResourceDescription("All stored field presets."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		presets, err := svc.ListPresets(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"presets": presets,
			"count":   len(presets),
		})
	})
}

func registerPresetTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"datefield://presets/{name}",
		"Preset",
		mcp.WithTemplateDescription("A stored preset and the sections its format splits into."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := templateArg(request.Params.Arguments, "name")
		if name == "" {
			return nil, fmt.Errorf("preset name is required")
		}
		p, err := svc.Preset(name)
		if err != nil {
			return nil, err
		}
		snap, err := svc.Split(ctx, FieldOptions{Preset: name})
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"preset":   p,
			"snapshot": snap,
		})
	})
}

// templateArg reads a matched URI template variable. Depending on the
// matcher it arrives as a string or a list of strings.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	case []any:
		if len(v) > 0 {
			s, _ := v[0].(string)
			return s
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
