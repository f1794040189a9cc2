package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/GayathriPCh/LoLCode-AI/internal/chat"
	"github.com/GayathriPCh/LoLCode-AI/internal/llm"
	"github.com/GayathriPCh/LoLCode-AI/internal/persona"
)

// handleChat sends a free-form message through the proxy.
func (s *Server) handleChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}
	return s.complete(ctx, chat.ModeChat, request.GetString("persona", persona.Default), message), nil
}

// handleDebugCode asks for a thorough debugging pass over the given code.
func (s *Server) handleDebugCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: code"), nil
	}
	return s.complete(ctx, chat.ModeDebug, request.GetString("persona", persona.Default), code), nil
}

// handleRoastCode asks the persona to roast the given code.
func (s *Server) handleRoastCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: code"), nil
	}
	return s.complete(ctx, chat.ModeRoast, request.GetString("persona", persona.Default), code), nil
}

// handleListPersonas returns the built-in personas as markdown.
func (s *Server) handleListPersonas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	b.WriteString("# Personas\n\n")
	for _, p := range persona.List() {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", p.Label, p.Style)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) complete(ctx context.Context, mode chat.Mode, personaName, input string) *mcp.CallToolResult {
	prompt, err := chat.BuildPrompt(mode, personaName, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}

	resp, err := s.proxy.Handle(ctx, chat.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Persona:  personaName,
	})
	if err != nil {
		if errors.Is(err, chat.ErrConfiguration) {
			return mcp.NewToolResultError(fmt.Sprintf("lolcode is not configured: %v", err))
		}
		return mcp.NewToolResultError(fmt.Sprintf("completion failed: %v", err))
	}

	return mcp.NewToolResultText(resp.Content())
}
