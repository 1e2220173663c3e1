package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/coinsguard/coinsguard-api/internal/models"
	"github.com/coinsguard/coinsguard-api/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	defaultRecentLimit = 5
	maxRecentLimit     = 100
)

// SubmissionHandler accepts recovery requests and contact messages and lists
// recent recovery requests
type SubmissionHandler struct {
	service services.SubmissionServiceInterface
}

func NewSubmissionHandler(service services.SubmissionServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// PostRecovery godoc
// @Summary Submit a recovery request
// @Description Validate and store a request for help recovering lost crypto assets
// @Tags Forms
// @Accept json
// @Produce json
// @Param request body models.RecoveryRequest true "Recovery request"
// @Success 200 {object} models.SubmissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/recovery [post]
func (h *SubmissionHandler) PostRecovery(c *gin.Context) {
	h.submit(c, models.FormKindRecoveryRequest)
}

// PostContact godoc
// @Summary Send a contact message
// @Description Validate and store a message from the contact form
// @Tags Forms
// @Accept json
// @Produce json
// @Param request body models.ContactMessage true "Contact message"
// @Success 200 {object} models.SubmissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/contact [post]
func (h *SubmissionHandler) PostContact(c *gin.Context) {
	h.submit(c, models.FormKindContactMessage)
}

// ListRecovery godoc
// @Summary List recent recovery requests
// @Tags Forms
// @Produce json
// @Param limit query int false "Maximum number of documents (0-100)" default(5)
// @Success 200 {object} models.RecentDocumentsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/recovery [get]
func (h *SubmissionHandler) ListRecovery(c *gin.Context) {
	limit := defaultRecentLimit
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > maxRecentLimit {
			respondError(c, http.StatusBadRequest, "Invalid limit", err)
			return
		}
		limit = n
	}

	docs, err := h.service.ListRecent(c.Request.Context(), models.FormKindRecoveryRequest, nil, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RecentDocumentsResponse{Items: docs})
}

func (h *SubmissionHandler) submit(c *gin.Context, kind models.FormKind) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return
		}
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	if payload == nil {
		respondError(c, http.StatusBadRequest, "Invalid request", errors.New("body is not a JSON object"))
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), kind, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
