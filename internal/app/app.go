package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hackbuddy/hackbuddy/internal/ai"
	"github.com/hackbuddy/hackbuddy/internal/config"
	"github.com/hackbuddy/hackbuddy/internal/db"
	"github.com/hackbuddy/hackbuddy/internal/repository"
	"github.com/hackbuddy/hackbuddy/internal/service"
	"github.com/hackbuddy/hackbuddy/internal/storage"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	AuthService      *service.AuthService
	ProfileService   *service.ProfileService
	ChatService      *service.ChatService
	HackathonService *service.HackathonService
	ResourcesService *service.ResourcesService
	Analyzer         *ai.Analyzer
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	hackathonRepository := repository.NewHackathonRepository(database)

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// AI
	geminiClient := ai.NewGeminiClient(ai.GeminiConfig{
		APIKey:   cfg.GeminiAPIKey,
		Model:    cfg.GeminiModel,
		Endpoint: cfg.GeminiEndpoint,
		Timeout:  cfg.GeminiTimeout,
	})
	analyzer := ai.NewAnalyzer(geminiClient, cfg.AnalysisMaxBytes)

	// Services
	profileService := service.NewProfileService(profileRepository, fileStorage, analyzer)
	authService := service.NewAuthService(
		userRepository,
		profileService,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	chatService := service.NewChatService(geminiClient)
	hackathonService := service.NewHackathonService(hackathonRepository)
	resourcesService := service.NewResourcesService(cfg.ContentPath)

	return &App{
		Cfg:              cfg,
		DB:               database,
		AuthService:      authService,
		ProfileService:   profileService,
		ChatService:      chatService,
		HackathonService: hackathonService,
		ResourcesService: resourcesService,
		Analyzer:         analyzer,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
