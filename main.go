package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"summarize/api"
	"summarize/common"
	"summarize/config"
	"summarize/pipeline"
	"summarize/resolver"
	"summarize/store"
	"summarize/summarizer"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	s3c, err := common.NewS3(context.Background(), common.S3Config{
		Region:       cfg.S3.Region,
		Profile:      cfg.S3.Profile,
		Endpoint:     cfg.S3.Endpoint,
		UsePathStyle: cfg.S3.UsePathStyle,
	})
	if err != nil {
		log.Fatalf("failed to init S3 client: %v", err)
	}
	artifacts := store.New(s3c, cfg.S3.Bucket, cfg.S3.Prefix)

	var extractor resolver.Extractor
	extractorMode := "readability"
	if cfg.Extractor.URL != "" {
		extractor = resolver.NewHTTPExtractor(cfg.Extractor.URL, cfg.Extractor.Timeout)
		extractorMode = "http"
	} else {
		extractor = resolver.NewReadabilityExtractor(cfg.Extractor.Timeout)
	}

	client, err := summarizer.New(cfg.Summarizer.Provider, summarizer.Options{
		APIKey:    cfg.Summarizer.APIKey,
		Model:     cfg.Summarizer.Model,
		MaxTokens: cfg.Summarizer.MaxTokens,
		Timeout:   cfg.Summarizer.Timeout,
		MaxBytes:  cfg.Summarizer.MaxBytes,
	})
	if err != nil {
		log.Fatalf("failed to init summarizer: %v", err)
	}

	p := pipeline.New(resolver.New(extractor), artifacts, client, slog.Default())
	r := api.NewRouter(api.NewSummaryController(p), cfg.Server.AllowedOrigins)

	addr := ":" + cfg.Server.Port
	slog.Info("starting api server",
		"addr", addr,
		"bucket", cfg.S3.Bucket,
		"provider", cfg.Summarizer.Provider,
		"extractor", extractorMode)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
