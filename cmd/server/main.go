package main

import (
	"flag"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/capricorn-med/backend/internal/handler"
	"github.com/capricorn-med/backend/logging"
	"github.com/capricorn-med/backend/pkg/config"
	"github.com/capricorn-med/backend/pkg/genai"
	"github.com/capricorn-med/backend/pkg/mailer"
	"github.com/capricorn-med/backend/server"
)

func main() {
	var configPath string
	var debug bool

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if debug {
		logging.InitLogger(logrus.DebugLevel)
	} else {
		logging.InitLogger(logrus.InfoLevel)
	}
	log := logging.GetLogger()

	// A .env file is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Debugln("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			log.Errorf("Invalid config: %v", e)
		}
		log.Fatalln("Configuration is invalid")
	}

	extractor, err := genai.NewWithConfig(genai.ClientConfig{
		Project:     cfg.GenAI.Project,
		Location:    cfg.GenAI.Location,
		Model:       cfg.GenAI.Model,
		MaxTokens:   cfg.GenAI.MaxTokens,
		Temperature: cfg.GenAI.Temperature,
		TopP:        cfg.GenAI.TopP,
		Seed:        cfg.GenAI.Seed,
	})
	if err != nil {
		log.Fatalf("Failed to initialize GenAI client: %v", err)
	}

	feedbackMailer, err := mailer.NewWithConfig(mailer.MailerConfig{
		APIKey:      cfg.Feedback.APIKey,
		FromAddress: cfg.Feedback.FromAddress,
		Recipients:  cfg.Feedback.Recipients,
	})
	if err != nil {
		log.Fatalf("Failed to initialize feedback mailer: %v", err)
	}

	h := handler.New(extractor, feedbackMailer, cfg)

	if err := server.New(cfg, h).ListenAndServe(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
