package controllers

import (
	"net/http"

	"MigrantHealth/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRootRoute points clients at the right entry page: the dashboard
// when a session exists, the login page otherwise.
func SetupRootRoute(router *gin.Engine, loader middlewares.SessionLoader) {
	router.GET("/", func(c *gin.Context) {
		session, err := loader.Load(c)
		if err == nil && session != nil {
			c.JSON(http.StatusOK, gin.H{"redirect": middlewares.DashboardPath})
			return
		}
		c.JSON(http.StatusOK, gin.H{"redirect": middlewares.LoginPath})
	})
}
