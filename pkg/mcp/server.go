package mcp

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"nlf-go/internal/collocation"
	"nlf-go/internal/config"
	"nlf-go/internal/kwic"
	"nlf-go/internal/segment"
	"nlf-go/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type SegmenterServer struct {
	server      *mcp.Server
	textService *service.TextService
	config      *config.Config
	logger      *zap.Logger
	handler     *mcp.StreamableHTTPHandler
}

type SegmentParams struct {
	Text    string `json:"text" jsonschema:"the text to split into sentences"`
	ModelID string `json:"model_id,omitempty" jsonschema:"id of a trained model; the default model when empty"`
}

type KwicParams struct {
	Text   string `json:"text" jsonschema:"the text to search"`
	Word   string `json:"word" jsonschema:"the word to show in context"`
	Window int    `json:"window,omitempty" jsonschema:"number of words of context on each side"`
}

type CollocationParams struct {
	Text          string `json:"text" jsonschema:"the text to score"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"compare words with exact case"`
	Limit         int    `json:"limit,omitempty" jsonschema:"maximum number of pairs to return"`
}

func NewSegmenterServer(textService *service.TextService, cfg *config.Config, logger *zap.Logger) *SegmenterServer {
	server := &SegmenterServer{
		textService: textService,
		config:      cfg,
		logger:      logger,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "SentenceSegmenter",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "segmentText",
		Description: "Split text into sentences. Returns one sentence per line with the score of every punctuation token",
	}, server.handleSegment)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "keywordInContext",
		Description: "Show every occurrence of a word with the words surrounding it",
	}, server.handleKwic)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "collocations",
		Description: "Rank adjacent word pairs in text by t-score",
	}, server.handleCollocations)

	server.handler = mcp.NewStreamableHTTPHandler(func(req *http.Request) *mcp.Server {
		return mcpServer
	}, nil)

	server.server = mcpServer
	return server
}

func (s *SegmenterServer) handleSegment(ctx context.Context, req *mcp.CallToolRequest, args SegmentParams) (*mcp.CallToolResult, any, error) {
	s.logger.Info("Handling segmentText request", zap.String("model_id", args.ModelID), zap.Int("text_bytes", len(args.Text)))

	response, err := s.textService.Segment(ctx, args.ModelID, args.Text)
	if err != nil {
		s.logger.Error("Failed to segment text", zap.String("model_id", args.ModelID), zap.Error(err))
		return textResult(fmt.Sprintf("Failed to segment text: %v", err)), nil, nil
	}

	return textResult(formatSentences(response)), nil, nil
}

func (s *SegmenterServer) handleKwic(ctx context.Context, req *mcp.CallToolRequest, args KwicParams) (*mcp.CallToolResult, any, error) {
	s.logger.Info("Handling keywordInContext request", zap.String("word", args.Word), zap.Int("window", args.Window))

	segments, err := s.textService.KWIC(ctx, args.Text, args.Word, args.Window)
	if err != nil {
		s.logger.Error("Failed to build concordance", zap.String("word", args.Word), zap.Error(err))
		return textResult(fmt.Sprintf("Failed to build concordance: %v", err)), nil, nil
	}
	if len(segments) == 0 {
		return textResult(fmt.Sprintf("No occurrences of %q found.", args.Word)), nil, nil
	}

	var sb strings.Builder
	if err := kwic.Print(&sb, segments); err != nil {
		return nil, nil, err
	}
	return textResult(sb.String()), nil, nil
}

func (s *SegmenterServer) handleCollocations(ctx context.Context, req *mcp.CallToolRequest, args CollocationParams) (*mcp.CallToolResult, any, error) {
	s.logger.Info("Handling collocations request", zap.Bool("case_sensitive", args.CaseSensitive), zap.Int("limit", args.Limit))

	bigrams, err := s.textService.Collocations(ctx, args.Text, args.CaseSensitive, args.Limit)
	if err != nil {
		s.logger.Error("Failed to score collocations", zap.Error(err))
		return textResult(fmt.Sprintf("Failed to score collocations: %v", err)), nil, nil
	}
	if len(bigrams) == 0 {
		return textResult("No word pairs found."), nil, nil
	}

	var sb strings.Builder
	if err := collocation.Print(&sb, bigrams); err != nil {
		return nil, nil, err
	}
	return textResult(sb.String()), nil, nil
}

func formatSentences(response *service.SegmentResponse) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Model: %s\n", response.ModelID))
	sb.WriteString(fmt.Sprintf("Sentences: %d\n\n", len(response.Sentences)))
	for i, sentence := range response.Sentences {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, sentence))
	}

	sb.WriteString("\nScores:\n")
	if err := segment.Format(&sb, response.Result, segment.DefaultWidth); err != nil {
		sb.WriteString(fmt.Sprintf("(failed to format scores: %v)\n", err))
	}
	return sb.String()
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// Handler returns the streamable HTTP handler serving the MCP tools.
func (s *SegmenterServer) Handler() http.Handler {
	return s.handler
}

func (s *SegmenterServer) SetupHTTPRoutes(router *gin.Engine) {
	if !s.config.Mcp.Enabled {
		s.logger.Info("MCP server is disabled in the configuration")
		return
	}

	go func() {
		address := s.config.Mcp.GetAddress()
		s.logger.Info("MCP Server going to listen", zap.String("address", address))
		if err := http.ListenAndServe(address, s.handler); err != nil {
			s.logger.Fatal("MCP Server failed", zap.Error(err))
		}
	}()
}
