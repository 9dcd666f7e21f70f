package controllers

import (
	"MigrantHealth/handlers"
	"MigrantHealth/middlewares"
	"MigrantHealth/models"

	"github.com/gin-gonic/gin"
)

// SetupRecordRoutes registers the health record and prescription routes
// with their role gates.
func SetupRecordRoutes(router *gin.Engine, recordHandler *handlers.RecordHandler, loader middlewares.SessionLoader) {
	router.GET("/dashboard",
		middlewares.RequireSession(loader),
		recordHandler.Dashboard)

	router.POST("/add",
		middlewares.RequireSession(loader, models.RoleAdmin, models.RoleDoctor),
		recordHandler.AddRecord)

	router.GET("/edit/:id",
		middlewares.RequireSession(loader, models.RoleAdmin, models.RoleDoctor),
		recordHandler.EditView)

	router.POST("/edit/:id",
		middlewares.RequireSession(loader, models.RoleAdmin, models.RoleDoctor),
		recordHandler.UpdateRecord)

	router.POST("/add_prescription/:record_id",
		middlewares.RequireSession(loader, models.RoleAdmin, models.RoleDoctor),
		recordHandler.AddPrescription)

	router.POST("/delete/:id",
		middlewares.RequireSession(loader, models.RoleAdmin),
		recordHandler.DeleteRecord)
}
