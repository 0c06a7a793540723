package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wayfare/cmd/fx/bookingfx"
	"wayfare/cmd/fx/controllersfx"
	"wayfare/cmd/fx/dbfx"
	"wayfare/cmd/fx/searchfx"
	"wayfare/internal/api/controllers"
	"wayfare/internal/infra"
	"wayfare/pkg/middleware"
	"wayfare/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		dbfx.Module,
		bookingfx.Module,
		searchfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.AutoMigrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{Addr: ":" + port, Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("Error shutting down server: %v", err)
			}
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	searchController *controllers.SearchController,
	detailsController *controllers.DetailsController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, searchController, detailsController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	searchController *controllers.SearchController,
	detailsController *controllers.DetailsController,
	healthController *controllers.HealthController) {

	r.GET("/search/:locationname", searchController.Search)
	r.GET("/details/:id", detailsController.GetDetails)
	r.GET("/locations", detailsController.ListLocations)
	r.GET("/health", healthController.Health)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route "+c.Request.Method+" "+c.Request.URL.Path+" not found")
	})
}
