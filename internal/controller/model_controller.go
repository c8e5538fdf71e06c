package controller

import (
	"errors"
	"net/http"

	"nlf-go/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ModelController handles sentence model HTTP endpoints
type ModelController struct {
	registry *service.ModelRegistry
	logger   *zap.Logger
}

// NewModelController creates a new model controller
func NewModelController(registry *service.ModelRegistry, logger *zap.Logger) *ModelController {
	return &ModelController{
		registry: registry,
		logger:   logger,
	}
}

// TrainModelRequest is the request body for model training
type TrainModelRequest struct {
	Name       string `json:"name"`
	Corpus     string `json:"corpus" binding:"required"`
	SetDefault bool   `json:"set_default"`
}

func (mc *ModelController) TrainModel(c *gin.Context) {
	var request TrainModelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		mc.logger.Error("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	mc.logger.Info("Training sentence model",
		zap.String("name", request.Name),
		zap.Int("corpus_bytes", len(request.Corpus)))

	info, err := mc.registry.Train(c.Request.Context(), request.Name, request.Corpus)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrEmptyCorpus) {
			status = http.StatusBadRequest
		}
		mc.logger.Error("Failed to train model", zap.String("name", request.Name), zap.Error(err))
		c.JSON(status, gin.H{
			"error":   "Failed to train model",
			"details": err.Error(),
		})
		return
	}

	if request.SetDefault {
		if err := mc.registry.SetDefault(info.ID); err != nil {
			mc.logger.Error("Failed to set default model", zap.String("model_id", info.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to set default model",
				"details": err.Error(),
			})
			return
		}
		info.IsDefault = true
	}

	c.JSON(http.StatusOK, info)
}

func (mc *ModelController) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"models": mc.registry.List(),
	})
}

func (mc *ModelController) GetModel(c *gin.Context) {
	id := c.Param("id")

	_, info, err := mc.registry.Get(id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrModelNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error":   "Failed to get model",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, info)
}
