package rest

import (
	"context"
	"fmt"
	"net/http"

	core_port "settlements-service/internal/core/port"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Server - REST API сервер обоих поселков.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer собирает роутер: публичная витрина, личный кабинет и админка.
func NewServer(port string,
	corsOrigins []string,
	blocksHandler *BlocksHandler,
	catalogHandler *CatalogHandler,
	leadsHandler *LeadsHandler,
	contentHandler *ContentHandler,
	userHandler *UserHandler,
	adminCatalogHandler *AdminCatalogHandler,
	adminContentHandler *AdminContentHandler,
	adminLeadsHandler *AdminLeadsHandler,
	adminUsersHandler *AdminUsersHandler,
	authMiddleware *AuthMiddleware,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Публичная витрина поселка ---
		r.Route("/{settlement}", func(r chi.Router) {
			r.Use(SettlementMiddleware)

			r.Get("/homepage", blocksHandler.GetHomepage)

			r.Get("/houses", catalogHandler.FindHouses)
			r.Get("/houses/{houseID}", catalogHandler.GetHouseDetails)
			r.Get("/plots", catalogHandler.FindPlots)
			r.Get("/plots/{plotID}", catalogHandler.GetPlotDetails)
			r.Get("/map", catalogHandler.GetMap)

			r.Post("/leads/contact", leadsHandler.SubmitContact)
			r.Post("/leads/viewing", leadsHandler.SubmitViewing)
			r.Post("/leads/support", leadsHandler.SubmitSupport)

			r.Get("/news", contentHandler.GetNewsFeed)
			r.Get("/news/{newsID}", contentHandler.GetNewsDetails)
			r.Get("/documents", contentHandler.GetDocuments)
			r.Get("/gallery", contentHandler.GetGallery)
			r.Get("/settings", contentHandler.GetSiteSettings)
			r.Get("/settings/page", contentHandler.GetPageSettings)
		})

		// --- Личный кабинет ---
		r.Route("/user", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/favorites", userHandler.GetFavorites)
			r.Get("/favorites/ids", userHandler.GetFavoriteIDs)
			r.Post("/favorites", userHandler.AddFavorite)
			r.Delete("/favorites/{houseID}", userHandler.RemoveFavorite)

			r.Post("/viewed/{houseID}", userHandler.MarkViewed)
			r.Get("/viewed", userHandler.GetViewed)

			r.Get("/profile", userHandler.GetProfile)
			r.Put("/profile", userHandler.UpdateProfile)
		})

		// --- Админка ---
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Пользователи и роли — только для глобального администратора
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.RequireAdmin)

				r.Get("/users", adminUsersHandler.ListUsers)
				r.Post("/users/{userID}/roles", adminUsersHandler.AssignRole)
				r.Delete("/users/{userID}/roles/{role}", adminUsersHandler.RemoveRole)
			})

			// Данные поселка — администратор или председатель этого поселка
			r.Route("/{settlement}", func(r chi.Router) {
				r.Use(SettlementMiddleware)
				r.Use(authMiddleware.RequireManage)

				r.Get("/blocks", blocksHandler.ListBlocks)
				r.Post("/blocks", blocksHandler.CreateBlock)
				r.Post("/blocks/move", blocksHandler.MoveBlock)
				r.Put("/blocks/{blockID}/content", blocksHandler.UpdateBlockContent)
				r.Patch("/blocks/{blockID}/enabled", blocksHandler.SetBlockEnabled)
				r.Delete("/blocks/{blockID}", blocksHandler.DeleteBlock)

				r.Post("/houses", adminCatalogHandler.CreateHouse)
				r.Put("/houses/{houseID}", adminCatalogHandler.UpdateHouse)
				r.Delete("/houses/{houseID}", adminCatalogHandler.DeleteHouse)

				r.Post("/plots", adminCatalogHandler.CreatePlot)
				r.Put("/plots/{plotID}", adminCatalogHandler.UpdatePlot)
				r.Delete("/plots/{plotID}", adminCatalogHandler.DeletePlot)

				r.Get("/news", adminContentHandler.ListNews)
				r.Post("/news", adminContentHandler.CreateNews)
				r.Put("/news/{newsID}", adminContentHandler.UpdateNews)
				r.Delete("/news/{newsID}", adminContentHandler.DeleteNews)

				r.Post("/documents", adminContentHandler.AddDocument)
				r.Delete("/documents/{documentID}", adminContentHandler.DeleteDocument)
				r.Post("/gallery", adminContentHandler.AddGalleryImage)
				r.Delete("/gallery/{imageID}", adminContentHandler.DeleteGalleryImage)

				r.Put("/settings", adminContentHandler.UpdateSiteSettings)
				r.Get("/settings/pages", adminContentHandler.ListPageSettings)
				r.Put("/settings/pages", adminContentHandler.UpsertPageSettings)

				r.Get("/leads/{kind}", adminLeadsHandler.ListLeads)
				r.Patch("/leads/{kind}/{leadID}", adminLeadsHandler.UpdateLeadStatus)
			})
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
