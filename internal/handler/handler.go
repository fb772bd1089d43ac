package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"problem-board-go/internal/moderation"
	"problem-board-go/internal/service"
)

const rejectionMessage = "Entry not added because it was flagged as potentially offensive"

// Handlers contains all HTTP handlers
type Handlers struct {
	db         *gorm.DB
	entries    *service.EntryService
	adminToken string
}

// NewHandlers creates new HTTP handlers
func NewHandlers(db *gorm.DB, entries *service.EntryService, adminToken string) *Handlers {
	return &Handlers{
		db:         db,
		entries:    entries,
		adminToken: adminToken,
	}
}

// SetupRoutes sets up all HTTP routes
func (h *Handlers) SetupRoutes(router *gin.Engine) {
	router.GET("/healthz", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/add_entry", h.AddEntry)
	router.GET("/get_all_entries", h.GetAllEntries)
	router.DELETE("/delete_entry/:uuid", h.DeleteEntry)
	router.GET("/get_all_data_Prateek", h.requireAdmin, h.GetAllData)
}

// AddEntry handles a new problem submission
func (h *Handlers) AddEntry(c *gin.Context) {
	var req AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	result, err := h.entries.Submit(c.Request.Context(), service.SubmitRequest{
		Problem: req.Problem,
		Name:    req.Name,
		Email:   req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyProblem):
			c.JSON(http.StatusBadRequest, StatusResponse{
				Status:  "error",
				Message: "Problem description cannot be empty",
			})
		case errors.Is(err, moderation.ErrUnavailable):
			c.JSON(http.StatusInternalServerError, StatusResponse{
				Status:  "error",
				Message: "Moderation service unavailable",
			})
		default:
			logrus.Errorf("Failed to store entry: %v", err)
			c.JSON(http.StatusInternalServerError, StatusResponse{
				Status:  "error",
				Message: "Database error",
			})
		}
		return
	}

	if !result.Accepted {
		c.JSON(http.StatusOK, StatusResponse{
			Status:  "error",
			Message: rejectionMessage,
		})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Status:  "success",
		Message: "Entry added successfully",
	})
}

// GetAllEntries returns all stored entries, newest first
func (h *Handlers) GetAllEntries(c *gin.Context) {
	entries, err := h.entries.List(c.Request.Context())
	if err != nil {
		logrus.Errorf("Failed to list entries: %v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{
			Status:  "error",
			Message: "Database error",
		})
		return
	}

	responses := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, EntryResponse{
			ID:        entry.ID,
			Problem:   entry.Problem,
			Name:      entry.Name,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, responses)
}

// DeleteEntry removes the entry with the given public token. A token
// that matches nothing still reports success.
func (h *Handlers) DeleteEntry(c *gin.Context) {
	token := c.Param("uuid")
	if err := h.entries.Delete(c.Request.Context(), token); err != nil {
		logrus.Errorf("Failed to delete entry: %v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{
			Status:  "error",
			Message: "Database error",
		})
		return
	}
	c.JSON(http.StatusOK, StatusResponse{
		Status:  "success",
		Message: "Entry deleted successfully",
	})
}

// GetAllData returns every column of every row, including email
func (h *Handlers) GetAllData(c *gin.Context) {
	entries, err := h.entries.Dump(c.Request.Context())
	if err != nil {
		logrus.Errorf("Failed to dump entries: %v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{
			Status:  "error",
			Message: "Database error",
		})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:   "ok",
		Database: "ok",
	}

	if err := h.db.Raw("SELECT 1").Error; err != nil {
		response.Status = "error"
		response.Database = "error"
		logrus.Errorf("Database health check failed: %v", err)
	}

	statusCode := http.StatusOK
	if response.Status == "error" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
