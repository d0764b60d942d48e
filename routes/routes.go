package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/huashi-art/oc-pk-contest/handlers"
)

func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	stageHandler *handlers.StageHandler,
	arenaHandler *handlers.ArenaHandler,
	lotteryHandler *handlers.LotteryHandler,
	activityHandler *handlers.ActivityHandler,
	registrationHandler *handlers.RegistrationHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/stage", func(r chi.Router) {
		r.Get("/", stageHandler.GetState)
		r.Post("/sync", stageHandler.SyncStage)
		r.Post("/views/{view}", stageHandler.SetActiveView)
		r.Post("/shipping", stageHandler.SubmitShipping)
		r.Delete("/shipping/modal", stageHandler.CloseShippingModal)
		r.Post("/registration/modal", stageHandler.OpenRegistrationModal)
		r.Delete("/registration/modal", stageHandler.CloseRegistrationModal)
	})

	router.Route("/arena", func(r chi.Router) {
		r.Get("/", arenaHandler.GetArena)
		r.Post("/votes", arenaHandler.CastVote)
		r.Post("/selection", arenaHandler.SelectMatch)
		r.Post("/search", arenaHandler.Search)
		r.Post("/shuffle", arenaHandler.Shuffle)
		r.Post("/advance", arenaHandler.AdvanceToNextOpen)
		r.Delete("/", arenaHandler.Reset)
	})

	router.Route("/lottery", func(r chi.Router) {
		r.Get("/", lotteryHandler.GetPanel)
		r.Post("/draws", lotteryHandler.Draw)
	})

	router.Get("/activity", activityHandler.GetActivityState)
	router.Get("/bracket", activityHandler.GetBracket)
	router.Get("/works", activityHandler.ListWorks)
	router.Get("/works/{workID}", activityHandler.GetWork)
	router.Get("/leaderboard", activityHandler.GetLeaderboard)
	router.Get("/entries", activityHandler.ListMyEntries)

	router.Route("/registration", func(r chi.Router) {
		r.Get("/config", registrationHandler.GetConfig)
		r.Post("/", registrationHandler.Register)
	})

	router.Get("/ws/stages/{variant}", webSocketHandler.ServeWs)
}
