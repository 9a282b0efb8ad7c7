package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz returns service status.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func RegisterHealthRoutes(r gin.IRouter) {
	r.GET("/healthz", Healthz)
}
