package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"prepwise-backend/internal/config"
	"prepwise-backend/internal/controller"
	"prepwise-backend/internal/db"
	"prepwise-backend/internal/llm"
	"prepwise-backend/internal/metrics"
	"prepwise-backend/internal/model"
	"prepwise-backend/internal/repository"
	"prepwise-backend/internal/service"
	"prepwise-backend/pkg/middleware"
	"prepwise-backend/utilities"
)

const version = "1.0.0"

func main() {
	printStartUpBanner()

	// .env carries the OpenAI credential; absent files are fine.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utilities.SetupLogging(cfg.Context.LogDir)

	bus := utilities.GlobalEventBus
	m := metrics.New()
	m.Bind(bus)

	// Repositories. Live traffic is served from memory; the database,
	// when initialized, only archives completed work off the event bus.
	questionRepo := repository.NewQuestionRepository()
	interviewRepo := repository.NewInterviewRepository()
	progressRepo := repository.NewProgressRepository()

	if cfg.DB.Initialize {
		if err := db.InitFromConfig(cfg); err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		attachArchiver(bus)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		utilities.Warn("OPENAI_API_KEY is not set; serving fallback content only")
	}
	llmClient := llm.NewOpenAIClient(
		apiKey,
		cfg.ThirdParty.OpenAIModel,
		cfg.ThirdParty.OpenAIBaseURL,
		time.Duration(cfg.ThirdParty.TimeoutSeconds)*time.Second,
	)

	questionService := service.NewQuestionService(questionRepo, llmClient, bus)
	interviewService := service.NewInterviewService(interviewRepo, questionRepo, questionService, bus)
	progressService := service.NewProgressService(progressRepo)
	reportService := service.NewReportService()

	ctrl := controller.Controllers{
		Question:  controller.NewQuestionController(questionService, questionRepo),
		Interview: controller.NewInterviewController(interviewService, reportService),
		Progress:  controller.NewProgressController(progressService),
		System:    controller.NewSystemController(m),
	}
	if cfg.Authentication.EnableTokenAuth {
		authService := service.NewAuthService(cfg.Authentication.APIKeyHash)
		ctrl.Auth = controller.NewAuthController(authService)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}
	if cfg.Authentication.EnableTokenAuth {
		r.Use(utilities.AuthMiddleware())
	}

	controller.RegisterRoutes(r, ctrl)

	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	utilities.Info("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// attachArchiver persists completed interviews and generated questions
// asynchronously. Failures are logged, never surfaced to callers.
func attachArchiver(bus *utilities.EventBus) {
	archive := repository.NewDBInterviewRepository(db.GetDB())
	store := repository.NewDBQuestionRepository(db.GetDB())

	bus.Subscribe(utilities.EventInterviewCompleted, func(data interface{}) {
		ev, ok := data.(service.InterviewCompletedEvent)
		if !ok {
			return
		}
		if err := archive.Archive(ev.Session, ev.Summary); err != nil {
			utilities.Error("failed to archive interview %s: %v", ev.Session.Interview.InterviewID, err)
		}
	})

	bus.Subscribe(utilities.EventQuestionGenerated, func(data interface{}) {
		qs, ok := data.([]model.Question)
		if !ok {
			return
		}
		for i := range qs {
			if err := store.Save(&qs[i]); err != nil {
				utilities.Error("failed to archive question %s: %v", qs[i].ID, err)
			}
		}
	})
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("PREPWISE", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("PREPWISE API (v%s)\n\n", version)
}
