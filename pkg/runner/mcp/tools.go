package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerSplitFormatTool(srv, svc)
	registerAdjustSectionTool(srv, svc)
	registerMergeSectionsTool(srv, svc)
	registerTranslateExcelTool(srv, svc)
	registerListPresetsTool(srv, svc)
}

// fieldToolOptions are shared by every tool that builds a field.
func fieldToolOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("preset",
			mcp.Description("Stored preset applied before the other options."),
		),
		mcp.WithString("format",
			mcp.Description("Format string such as MM/DD/YYYY or HH:mm."),
		),
		mcp.WithString("locale",
			mcp.Description("Locale used for letter sections."),
			mcp.Enum("en-US", "en-GB"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone, \"default\" or \"system\"."),
		),
		mcp.WithString("value",
			mcp.Description("Optional RFC3339 value displayed in the field."),
		),
		mcp.WithString("valueType",
			mcp.Description("What the field edits, used to validate the format."),
			mcp.Enum("date", "time", "date-time"),
		),
		mcp.WithBoolean("rtl",
			mcp.Description("Lay the field out right to left."),
		),
		mcp.WithBoolean("spacious",
			mcp.Description("Pad separators with spaces."),
		),
		mcp.WithBoolean("respectLeadingZeros",
			mcp.Description("Keep leading zeros only where the format has them."),
		),
		mcp.WithNumber("minutesStep",
			mcp.Description("Step used when adjusting minutes."),
			mcp.Min(1),
			mcp.Max(60),
		),
	}
}

func registerSplitFormatTool(srv *server.MCPServer, svc *Service) {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Split a format string into editable sections."),
	}, fieldToolOptions()...)
	tool := mcp.NewTool("split_format", opts...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args FieldOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		snap, err := svc.Split(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(snap)
	})
}

func registerAdjustSectionTool(srv *server.MCPServer, svc *Service) {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Focus a section and run editing commands against it."),
		mcp.WithNumber("section",
			mcp.Required(),
			mcp.Description("Index of the section to focus."),
			mcp.Min(0),
		),
		mcp.WithArray("commands",
			mcp.Required(),
			mcp.Description("Key names such as ArrowUp, PageDown, Home, End, ArrowRight, Backspace, or =text to type a value."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	}, fieldToolOptions()...)
	tool := mcp.NewTool("adjust_section", opts...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args AdjustOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		snap, err := svc.Adjust(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(snap)
	})
}

func registerMergeSectionsTool(srv *server.MCPServer, svc *Service) {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Build a date from sections and merge it into a reference date."),
		mcp.WithArray("sections",
			mcp.Required(),
			mcp.Description("Sections as returned by split_format, with edited values."),
			mcp.Items(map[string]any{"type": "object"}),
		),
		mcp.WithString("reference",
			mcp.Description("RFC3339 date that receives the section values."),
		),
		mcp.WithBoolean("onlyEdited",
			mcp.Description("Transfer only sections marked modified."),
		),
	}, fieldToolOptions()...)
	tool := mcp.NewTool("merge_sections", opts...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args MergeOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		res, err := svc.Merge(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerTranslateExcelTool(srv *server.MCPServer, svc *Service) {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Translate an Excel number format into a field format and split it."),
		mcp.WithString("numFmt",
			mcp.Required(),
			mcp.Description("Excel number format code such as yyyy-mm-dd h:mm AM/PM."),
		),
	}, fieldToolOptions()...)
	tool := mcp.NewTool("translate_excel", opts...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		numFmt, err := request.RequireString("numFmt")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var args FieldOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		res, err := svc.TranslateExcel(ctx, numFmt, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerListPresetsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_presets",
		mcp.WithDescription("List the stored field presets."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		presets, err := svc.ListPresets(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"presets": presets,
			"count":   len(presets),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
