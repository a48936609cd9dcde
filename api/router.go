package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// NewRouter assembles the REST API: middleware chain, versioned entity
// routes, metrics and swagger UI.
func NewRouter(
	log *zap.SugaredLogger,
	flights *FlightHandler,
	passengers *PassengerHandler,
	reservations *ReservationHandler,
	swaggerDir string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), Metrics(), ErrorHandler(log))

	v1 := router.Group("/api/v1")
	flights.Register(v1.Group("/flights"))
	passengers.Register(v1.Group("/passengers"))
	reservations.Register(v1.Group("/reservations"))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if swaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(swaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}
