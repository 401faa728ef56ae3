package routes

import (
	"net/http"

	"github.com/hackbuddy/hackbuddy/internal/app"
	"github.com/hackbuddy/hackbuddy/internal/handler"
	"github.com/hackbuddy/hackbuddy/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	auth := handler.NewAuthHandler(app.AuthService)
	profile := handler.NewProfileHandler(app.ProfileService, app.Cfg.MaxCVSize)
	analyze := handler.NewAnalyzeHandler(app.Analyzer)
	chat := handler.NewChatHandler(app.ChatService)
	hackathon := handler.NewHackathonHandler(app.HackathonService)
	skillTree := handler.NewSkillTreeHandler()
	resources := handler.NewResourcesHandler(app.ResourcesService)

	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /api/skill-tree", skillTree.Get)
	mux.HandleFunc("GET /api/resources", resources.List)
	mux.HandleFunc("GET /api/resources/{slug}", resources.Show)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/auth/signup", rateLimiter(auth.Signup))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	// Profile & analysis
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profile.Get))
	mux.HandleFunc("PUT /api/profile", middleware.RequireAuth(profile.Update))
	mux.HandleFunc("POST /api/analyze-cv", middleware.RequireAuth(analyze.AnalyzeCV))

	// Assistant
	mux.HandleFunc("POST /api/chat", middleware.RequireAuth(chat.Chat))

	// Hackathons
	mux.HandleFunc("GET /api/hackathons", middleware.RequireAuth(hackathon.List))
	mux.HandleFunc("POST /api/hackathons", middleware.RequireAuth(hackathon.Create))
	mux.HandleFunc("DELETE /api/hackathons/{id}", middleware.RequireAuth(hackathon.Delete))

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.ProfileService),
	)

	return h
}
