package api

import (
	"mockmate/docs"
	"mockmate/internal/api/handlers"
	"mockmate/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	interviewHandler *handlers.InterviewHandler,
	speechHandler *handlers.SpeechHandler,
	healthHandler *handlers.HealthHandler,
	serverCfg *config.ServerConfig,
	audioDir string,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Swagger docs are registered by the docs package init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	appLogger.Info("Serving audio files", zap.String("path", audioDir))
	app.Static("/audio", audioDir)

	app.Get("/health", healthHandler.Health)
	app.Get("/health/ready", healthHandler.Ready)

	interview := app.Group("/api/interview")
	interview.Get("/domains", interviewHandler.ListDomains)
	interview.Get("/domains/:domain/topics", interviewHandler.ListTopics)
	interview.Post("/sessions", interviewHandler.CreateSession)
	interview.Get("/sessions/:id", interviewHandler.GetSession)
	interview.Post("/sessions/:id/complete", interviewHandler.CompleteSession)
	interview.Get("/sessions/:id/questions", interviewHandler.ListQuestions)
	interview.Post("/sessions/:id/questions", interviewHandler.NextQuestion)
	interview.Post("/questions/:id/answers", interviewHandler.SubmitAnswer)
	interview.Post("/questions/:id/answers/audio", speechHandler.SubmitAudioAnswer)
	interview.Get("/questions/:id/speech", speechHandler.QuestionSpeech)
	interview.Post("/speech/feedback", speechHandler.FeedbackSpeech)

	return app
}
