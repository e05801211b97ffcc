// ABOUTME: MCP prompts for common text analysis workflows.
// ABOUTME: Provides pre-configured prompts for AI agent interactions.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "analyze-themes",
		Description: "Find the main themes of a text from its word frequencies",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "text",
				Description: "Text to analyze",
				Required:    true,
			},
		},
	}, s.getAnalyzeThemesPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "compare-texts",
		Description: "Compare vocabulary between two texts",
		Arguments: []*mcp.PromptArgument{
			{Name: "first", Description: "First text", Required: true},
			{Name: "second", Description: "Second text", Required: true},
		},
	}, s.getCompareTextsPrompt)
}

func userPrompt(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: text,
				},
			},
		},
	}
}

func (s *Server) getAnalyzeThemesPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	text := req.Params.Arguments["text"]
	if text == "" {
		return nil, fmt.Errorf("text argument is required")
	}

	return userPrompt(fmt.Sprintf(`Use the word_frequencies tool with limit 25 on the text below, then:

1. Group the top words into 3-5 themes.
2. Name the single most dominant theme and the words that support it.
3. Point out any surprising words that appear often.

Text:
%s`, text)), nil
}

func (s *Server) getCompareTextsPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	first, second := req.Params.Arguments["first"], req.Params.Arguments["second"]
	if first == "" || second == "" {
		return nil, fmt.Errorf("first and second arguments are required")
	}

	return userPrompt(fmt.Sprintf(`Call word_frequencies with limit 20 for each text below and compare them:

## Shared vocabulary
[Words frequent in both]

## Distinct to the first text
[Words frequent only in the first]

## Distinct to the second text
[Words frequent only in the second]

First text:
%s

Second text:
%s`, first, second)), nil
}
