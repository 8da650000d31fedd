package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/walktrack-backend-go/internal/middleware"
	"github.com/jengzang/walktrack-backend-go/internal/models"
	"github.com/jengzang/walktrack-backend-go/internal/service"
	"github.com/jengzang/walktrack-backend-go/pkg/response"
)

// SessionHandler handles HTTP requests for the live tracking session.
type SessionHandler struct {
	tracker *service.TrackerService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(tracker *service.TrackerService) *SessionHandler {
	return &SessionHandler{tracker: tracker}
}

// writeSessionError maps the service error taxonomy to HTTP responses.
func writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(c, "Location permission denied")
	case errors.Is(err, service.ErrLocationUnavailable):
		response.BadRequest(c, "Location unavailable")
	case errors.Is(err, service.ErrMissingStartLocation):
		response.BadRequest(c, "No start location recorded; start a session first")
	case errors.Is(err, service.ErrAlreadyTracking):
		response.Conflict(c, "A session is already being tracked")
	default:
		response.InternalError(c, err.Error())
	}
}

// Start handles POST /api/v1/sessions/start
func (h *SessionHandler) Start(c *gin.Context) {
	var fix models.LocationFix
	if err := c.ShouldBindJSON(&fix); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	deviceID := c.GetString(middleware.DeviceIDKey)
	if err := h.tracker.Start(deviceID, fix); err != nil {
		writeSessionError(c, err)
		return
	}

	response.Success(c, h.tracker.Status())
}

// Stop handles POST /api/v1/sessions/stop
func (h *SessionHandler) Stop(c *gin.Context) {
	var fix models.LocationFix
	if err := c.ShouldBindJSON(&fix); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.tracker.Stop(fix)
	if err != nil {
		writeSessionError(c, err)
		return
	}

	response.Success(c, result)
}

// Samples handles POST /api/v1/sessions/samples
func (h *SessionHandler) Samples(c *gin.Context) {
	var batch models.SampleBatch
	if err := c.ShouldBindJSON(&batch); err != nil {
		response.BadRequest(c, "Invalid sample batch")
		return
	}

	response.Success(c, h.tracker.Ingest(batch.Samples))
}

// Current handles GET /api/v1/sessions/current
func (h *SessionHandler) Current(c *gin.Context) {
	response.Success(c, h.tracker.Status())
}
