package handlers

import (
	"net/http"
	"strconv"

	"MigrantHealth/middlewares"
	"MigrantHealth/models"
	"MigrantHealth/services"

	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	service services.RecordService
}

func NewRecordHandler(service services.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// Dashboard lists the records visible to the caller. Admins also get the
// doctor roster.
func (h *RecordHandler) Dashboard(c *gin.Context) {
	session, ok := middlewares.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Please log in to access this page.",
			"redirect": middlewares.LoginPath,
		})
		return
	}

	ctx := c.Request.Context()
	records, err := h.service.ListRecords(ctx, session.Role, session.UserID)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	response := gin.H{
		"records": records,
		"role":    session.Role,
		"theme":   session.Theme,
	}

	if session.Role == models.RoleAdmin {
		doctors, err := h.service.ListDoctors(ctx)
		if err != nil {
			middlewares.RespondError(c, err)
			return
		}
		roster := make([]gin.H, 0, len(doctors))
		for _, d := range doctors {
			roster = append(roster, gin.H{"id": d.ID, "username": d.Username})
		}
		response["doctors"] = roster
	}

	c.JSON(http.StatusOK, response)
}

// AddRecord creates a health record and its patient account, returning
// the one-time credentials.
func (h *RecordHandler) AddRecord(c *gin.Context) {
	var fields services.RecordFields
	if err := c.ShouldBind(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	record, credentials, err := h.service.CreateRecord(ctx, fields)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Patient record for '" + record.Name + "' created successfully! A new user account has been created.",
		"record":      record,
		"credentials": credentials,
		"redirect":    middlewares.DashboardPath,
	})
}

// EditView returns a record together with its prescriptions for the
// edit page.
func (h *RecordHandler) EditView(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	ctx := c.Request.Context()
	record, prescriptions, err := h.service.GetRecord(ctx, id)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"record":        record,
		"prescriptions": prescriptions,
	})
}

// UpdateRecord overwrites all mutable fields of a record.
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	var fields services.RecordFields
	if err := c.ShouldBind(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	record, err := h.service.UpdateRecord(ctx, id, fields)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Health record updated successfully!",
		"record":   record,
		"redirect": middlewares.DashboardPath,
	})
}

// DeleteRecord removes a record and its prescriptions. Admin only.
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.DeleteRecord(ctx, id); err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Health record deleted successfully!",
		"redirect": middlewares.DashboardPath,
	})
}

// AddPrescription appends a prescription to a record, authored by the
// calling admin or doctor.
func (h *RecordHandler) AddPrescription(c *gin.Context) {
	session, ok := middlewares.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Please log in to access this page.",
			"redirect": middlewares.LoginPath,
		})
		return
	}

	recordID, err := parseID(c, "record_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	var fields services.PrescriptionFields
	if err := c.ShouldBind(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	prescription, err := h.service.AddPrescription(ctx, recordID, session.UserID, fields)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Prescription added successfully!",
		"prescription": prescription,
	})
}

func parseID(c *gin.Context, param string) (int64, error) {
	return strconv.ParseInt(c.Param(param), 10, 64)
}
