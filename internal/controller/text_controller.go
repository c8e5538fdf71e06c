package controller

import (
	"errors"
	"net/http"

	"nlf-go/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TextController handles text analysis HTTP endpoints
type TextController struct {
	textService *service.TextService
	logger      *zap.Logger
}

// NewTextController creates a new text controller
func NewTextController(textService *service.TextService, logger *zap.Logger) *TextController {
	return &TextController{
		textService: textService,
		logger:      logger,
	}
}

type SegmentRequest struct {
	ModelID string `json:"model_id"`
	Text    string `json:"text" binding:"required"`
}

type KwicRequest struct {
	Text   string `json:"text" binding:"required"`
	Word   string `json:"word" binding:"required"`
	Window int    `json:"window"`
}

type CollocationsRequest struct {
	Text          string `json:"text" binding:"required"`
	CaseSensitive bool   `json:"case_sensitive"`
	Limit         int    `json:"limit"`
}

func (tc *TextController) Segment(c *gin.Context) {
	var request SegmentRequest
	if !tc.bind(c, &request) {
		return
	}

	tc.logger.Info("Segmenting text",
		zap.String("model_id", request.ModelID),
		zap.Int("text_bytes", len(request.Text)))

	response, err := tc.textService.Segment(c.Request.Context(), request.ModelID, request.Text)
	if err != nil {
		tc.fail(c, "Failed to segment text", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (tc *TextController) Kwic(c *gin.Context) {
	var request KwicRequest
	if !tc.bind(c, &request) {
		return
	}

	tc.logger.Info("Building concordance",
		zap.String("word", request.Word),
		zap.Int("window", request.Window))

	segments, err := tc.textService.KWIC(c.Request.Context(), request.Text, request.Word, request.Window)
	if err != nil {
		tc.fail(c, "Failed to build concordance", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"word":     request.Word,
		"segments": segments,
	})
}

func (tc *TextController) Collocations(c *gin.Context) {
	var request CollocationsRequest
	if !tc.bind(c, &request) {
		return
	}

	tc.logger.Info("Scoring collocations",
		zap.Bool("case_sensitive", request.CaseSensitive),
		zap.Int("limit", request.Limit))

	bigrams, err := tc.textService.Collocations(c.Request.Context(), request.Text, request.CaseSensitive, request.Limit)
	if err != nil {
		tc.fail(c, "Failed to score collocations", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bigrams": bigrams,
	})
}

func (tc *TextController) bind(c *gin.Context, request any) bool {
	if err := c.ShouldBindJSON(request); err != nil {
		tc.logger.Error("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return false
	}
	return true
}

func (tc *TextController) fail(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrModelNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrTextTooLarge):
		status = http.StatusRequestEntityTooLarge
	}

	tc.logger.Error(message, zap.Int("status", status), zap.Error(err))
	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}
