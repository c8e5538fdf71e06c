package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"nlf-go/internal/config"
	"nlf-go/internal/controller"
	"nlf-go/internal/handler"
	"nlf-go/internal/service"
	"nlf-go/internal/util"
	"nlf-go/pkg/mcp"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	var configPath = flag.String("config", "", "Path to app configuration file")
	var port = flag.Int("port", 0, "Server port (overrides the configuration)")
	var corpus = flag.String("corpus", "", "Tagged training corpus for the default model (overrides the configuration)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if *port != 0 {
		cfg.App.Port = *port
	}
	if *corpus != "" {
		cfg.Segmenter.TrainingCorpus = *corpus
	}

	logger, err := util.NewLogger(cfg.App.LogLevel, cfg.App.LogPaths)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	logger.Info("Configuration loaded successfully", zap.Any("config", cfg))

	textService := service.NewTextService(cfg, logger)
	if err := textService.LoadDefaultModel(context.Background()); err != nil {
		logger.Fatal("Failed to load default model", zap.Error(err))
	}

	modelController := controller.NewModelController(textService.Registry(), logger)
	textController := controller.NewTextController(textService, logger)
	mcpServer := mcp.NewSegmenterServer(textService, cfg, logger)

	router := handler.SetupRouter(modelController, textController, mcpServer, logger)

	logger.Info("Starting server", zap.Int("port", cfg.App.Port))
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), router); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
