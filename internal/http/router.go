// README: HTTP router registration and the outer CORS/access-log wrapper.
package http

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"

	httphandlers "dispatchsim/internal/http/handlers"
	"dispatchsim/internal/http/middleware"
	"dispatchsim/internal/modules/simulation"
)

func NewRouter(sim *simulation.Service, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(logger), middleware.Logging(logger))

	simHandler := httphandlers.NewSimulationHandler(sim)
	api := r.Group("/api")
	api.POST("/simulations", simHandler.Run)
	api.GET("/simulations/:id", simHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return r
}

// Wrap adds CORS headers for browser clients and writes an Apache combined
// access log line per request to accessLog.
func Wrap(h http.Handler, accessLog io.Writer) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return handlers.CombinedLoggingHandler(accessLog, cors(h))
}
