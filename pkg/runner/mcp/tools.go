package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/daily/pkg/app"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerCreateFolderTool(srv, svc)
	registerCreateItemTool(srv, svc)
	registerSetValueTool(srv, svc)
	registerMoveNodeTool(srv, svc)
	registerCarryTool(srv, svc)
	registerShowDayTool(srv, svc)
	registerChartableItemsTool(srv, svc)
	registerSeriesTool(srv, svc)
}

func registerCreateFolderTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_folder",
		mcp.WithDescription("Create a folder in one date's tree."),
		mcp.WithString("date",
			mcp.Description("ISO date (YYYY-MM-DD). Defaults to today."),
		),
		mcp.WithString("parent",
			mcp.Description("Slash-joined parent folder path. Empty means the root."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Folder name, unique among its siblings."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date   string `json:"date"`
			Parent string `json:"parent"`
			Name   string `json:"name"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Date == "" {
			args.Date = app.Today()
		}
		dto, err := svc.CreateFolder(ctx, args.Date, args.Parent, args.Name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCreateItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_item",
		mcp.WithDescription("Create an item in one date's tree, holding the default value for its type."),
		mcp.WithString("date",
			mcp.Description("ISO date (YYYY-MM-DD). Defaults to today."),
		),
		mcp.WithString("parent",
			mcp.Description("Slash-joined parent folder path. Empty means the root."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Item name, unique among its siblings."),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Declared value type."),
			mcp.Enum("complete/incomplete", "int", "float", "string"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date   string `json:"date"`
			Parent string `json:"parent"`
			Name   string `json:"name"`
			Type   string `json:"type"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Date == "" {
			args.Date = app.Today()
		}
		dto, err := svc.CreateItem(ctx, args.Date, args.Parent, args.Name, args.Type)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetValueTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_value",
		mcp.WithDescription("Record a value on an item. Input is coerced to the item's declared type; a failed coercion leaves the prior value."),
		mcp.WithString("date",
			mcp.Description("ISO date (YYYY-MM-DD). Defaults to today."),
		),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Slash-joined path to the item."),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("Raw value: true/false, a number, or text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date  string `json:"date"`
			Path  string `json:"path"`
			Value string `json:"value"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Date == "" {
			args.Date = app.Today()
		}
		dto, err := svc.SetValue(ctx, args.Date, args.Path, args.Value)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMoveNodeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_node",
		mcp.WithDescription("Move or reorder a folder or item within one date's tree."),
		mcp.WithString("date",
			mcp.Description("ISO date (YYYY-MM-DD). Defaults to today."),
		),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Slash-joined path of the node to move."),
		),
		mcp.WithString("target",
			mcp.Description("Slash-joined path of the destination folder. Empty means the root."),
		),
		mcp.WithNumber("index",
			mcp.Description("Position among siblings of the same kind, clamped to bounds. Omit to append."),
		),
		mcp.WithBoolean("to_root",
			mcp.Description("Append to the root instead of using target and index."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := struct {
			Date   string  `json:"date"`
			Source string  `json:"source"`
			Target string  `json:"target"`
			Index  float64 `json:"index"`
			ToRoot bool    `json:"to_root"`
		}{Index: -1}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Date == "" {
			args.Date = app.Today()
		}
		dto, err := svc.MoveNode(ctx, args.Date, args.Source, args.Target, int(args.Index), args.ToRoot)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCarryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"carry",
		mcp.WithDescription("Copy a previous date's snapshot into a target date: the whole tree with values, or structure only."),
		mcp.WithString("from",
			mcp.Description("Source ISO date. Defaults to the nearest date before the target."),
		),
		mcp.WithString("to",
			mcp.Description("Target ISO date. Defaults to today."),
		),
		mcp.WithBoolean("items_only",
			mcp.Description("Reset every value to its type default instead of carrying values."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			From      string `json:"from"`
			To        string `json:"to"`
			ItemsOnly bool   `json:"items_only"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.To == "" {
			args.To = app.Today()
		}
		dto, err := svc.Carry(ctx, args.From, args.To, args.ItemsOnly)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerShowDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"show_day",
		mcp.WithDescription("Fetch one date's tree, deriving it from the nearest earlier date when the date has no snapshot yet."),
		mcp.WithString("date",
			mcp.Description("ISO date (YYYY-MM-DD). Defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date string `json:"date"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Date == "" {
			args.Date = app.Today()
		}
		dto, err := svc.Day(ctx, args.Date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerChartableItemsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"chartable_items",
		mcp.WithDescription("List every boolean or numeric item path seen on any date."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dtos, err := svc.ChartableItems(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"items": dtos,
			"count": len(dtos),
		})
	})
}

func registerSeriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"series",
		mcp.WithDescription("Fetch the ordered (date, value) sequence for one chartable item path."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Slash-joined path to the item."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		points, err := svc.Series(ctx, path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"path":   path,
			"count":  len(points),
			"points": points,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
