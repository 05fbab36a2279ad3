package routes

import (
	"net/http"
	"time"

	_ "github.com/Dosada05/ladder-system/docs"
	"github.com/Dosada05/ladder-system/handlers"
	"github.com/Dosada05/ladder-system/middleware"
	"github.com/Dosada05/ladder-system/services"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	loginAttemptsPerMinute = 10
	loginBurst             = 5
)

// Options - параметры, общие для всех маршрутов.
type Options struct {
	JWTSecret      string
	AllowedOrigins []string
}

func SetupRoutes(
	router *chi.Mux,
	opts Options,
	authHandler *handlers.AuthHandler,
	playerHandler *handlers.PlayerHandler,
	tournamentHandler *handlers.TournamentHandler,
	roundHandler *handlers.RoundHandler,
	matchHandler *handlers.MatchHandler,
	specialHandler *handlers.SpecialTypeHandler,
	dashboardHandler *handlers.DashboardHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// WebSocket живет дольше любого таймаута, поэтому вне группы с Timeout
	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	authenticate := middleware.Authenticate(opts.JWTSecret)
	operatorOnly := middleware.Authorize(services.RoleOperator)
	loginLimiter := middleware.NewRateLimiter(loginAttemptsPerMinute, loginBurst)

	router.Group(func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		r.With(loginLimiter.Handler).Post("/auth/login", authHandler.Login)

		r.Get("/dashboard", dashboardHandler.GetStats)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.ListPlayers)
			r.Get("/{playerID}", playerHandler.GetPlayer)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Use(operatorOnly)

				r.Post("/", playerHandler.CreatePlayer)
				r.Put("/{playerID}", playerHandler.UpdatePlayer)
				r.Delete("/{playerID}", playerHandler.DeletePlayer)
				r.Patch("/{playerID}/active", playerHandler.SetActive)
				r.Post("/{playerID}/avatar", playerHandler.UploadAvatar)
			})
		})

		r.Route("/tournaments", func(r chi.Router) {
			// Публичные маршруты для табло
			r.Get("/", tournamentHandler.ListHandler)
			r.Get("/{tournamentID}", tournamentHandler.GetByIDHandler)
			r.Get("/{tournamentID}/overview", tournamentHandler.OverviewHandler)
			r.Get("/{tournamentID}/matches", tournamentHandler.MatchesHandler)
			r.Get("/{tournamentID}/rankings", tournamentHandler.RankingsHandler)

			// Защищенные маршруты только для оператора
			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Use(operatorOnly)

				r.Post("/", tournamentHandler.CreateHandler)
				r.Put("/{tournamentID}", tournamentHandler.UpdateHandler)
				r.Delete("/{tournamentID}", tournamentHandler.DeleteHandler)
				r.Post("/{tournamentID}/activate", tournamentHandler.ActivateHandler)
				r.Post("/{tournamentID}/rounds/{round}", roundHandler.GenerateRound)
				r.Post("/{tournamentID}/final-ranking", roundHandler.ApplyFinalRanking)
			})
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/{matchID}", matchHandler.GetMatch)
			r.With(authenticate, operatorOnly).Put("/{matchID}/score", matchHandler.SubmitScore)
		})

		r.Route("/specials", func(r chi.Router) {
			r.Get("/", specialHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Use(operatorOnly)

				r.Post("/", specialHandler.Create)
				r.Put("/{specialID}", specialHandler.Update)
				r.Delete("/{specialID}", specialHandler.Delete)
			})
		})
	})
}
