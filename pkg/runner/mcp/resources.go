package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerDatesResource(srv, svc)
	registerDayTemplate(srv, svc)
	registerChartableResource(srv, svc)
	registerSeriesTemplate(srv, svc)
}

func registerDatesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"daily://dates",
		"Tracked Dates",
		mcp.WithResourceDescription("Every date that has a snapshot, with node counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := svc.ListDays(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"dates": summaries,
			"count": len(summaries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"daily://dates/{date}",
		"Day Snapshot",
		mcp.WithTemplateDescription("The folder and item tree recorded for one date."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		date, _ := request.Params.Arguments["date"].(string)
		if date == "" {
			return nil, fmt.Errorf("date is required")
		}

		dto, err := svc.Day(ctx, date)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"day": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerChartableResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"daily://chartable",
		"Chartable Items",
		mcp.WithResourceDescription("Every boolean or numeric item path seen on any date."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dtos, err := svc.ChartableItems(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"items": dtos,
			"count": len(dtos),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerSeriesTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"daily://series/{path}",
		"Item History",
		mcp.WithTemplateDescription("The ordered (date, value) sequence for one item path."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		path, _ := request.Params.Arguments["path"].(string)
		if path == "" {
			return nil, fmt.Errorf("item path is required")
		}

		points, err := svc.Series(ctx, path)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"path":   path,
			"count":  len(points),
			"points": points,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
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
