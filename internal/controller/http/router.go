// Package http implements routing paths.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bmc-toolkit/hwisolation/config"
	redfishv1 "github.com/bmc-toolkit/hwisolation/internal/controller/http/redfish/v1"
	"github.com/bmc-toolkit/hwisolation/pkg/logger"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-Id"

// NewRouter -.
func NewRouter(handler *gin.Engine, l logger.Interface, uc redfishv1.Isolator, _ *config.Config) {
	// Options
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())
	handler.Use(requestID())

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	redfish := handler.Group("/redfish/v1")
	redfishv1.NewRoutes(redfish, uc, l)
}

// requestID tags every request with a correlation id so remote-call logs can
// be tied back to the HTTP request that triggered them.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(RequestIDHeader, id)
		c.Set("requestID", id)
		c.Next()
	}
}
