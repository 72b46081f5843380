package handlers

import (
	"net/http"

	"github.com/finman-app/pfm_backend/web"
	"github.com/gin-gonic/gin"
)

// getAPIInfo godoc
// @Summary API information
// @Description Returns the API name and version
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api [get]
func getAPIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Personal Finance Manager API",
		"version": "1.0",
	})
}

// registerHomeRoutes serves the embedded dashboard page and the root
// information endpoints.
func registerHomeRoutes(r *gin.Engine) {
	page, err := web.StaticFS.ReadFile("static/index.html")
	if err != nil {
		// The dashboard is compiled into the binary; a missing file is a
		// build defect, not a runtime condition.
		panic(err)
	}

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
	r.GET("/api", getAPIInfo)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}
