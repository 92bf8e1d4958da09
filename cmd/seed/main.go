package main

import (
	"context"
	"log"

	"mockmate/pkg/config"
	"mockmate/pkg/logger"
	"mockmate/pkg/postgres"

	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS interview_sessions (
	id UUID PRIMARY KEY,
	domain VARCHAR(64) NOT NULL,
	difficulty VARCHAR(16) NOT NULL DEFAULT 'medium',
	duration_minutes INT NOT NULL DEFAULT 45,
	status VARCHAR(16) NOT NULL DEFAULT 'active',
	score DOUBLE PRECISION,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	completed_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS interview_questions (
	id UUID PRIMARY KEY,
	session_id UUID NOT NULL REFERENCES interview_sessions(id) ON DELETE CASCADE,
	question_text TEXT NOT NULL,
	expected_answer TEXT NOT NULL DEFAULT '',
	user_answer TEXT,
	score DOUBLE PRECISION,
	feedback TEXT,
	asked_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	answered_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_questions_session ON interview_questions(session_id, asked_at);
`

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Creating schema...")
	if _, err := db.Exec(ctx, schema); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}
	appLogger.Info("Schema ready")
}
