package handlers

import (
	"net/http"

	"github.com/coinsguard/coinsguard-api/internal/diagnostics"
	"github.com/coinsguard/coinsguard-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sony/gobreaker"
)

// StoreStatus exposes the liveness of the document store
type StoreStatus interface {
	Available() bool
	BreakerState() string
}

// HealthHandler serves the greeting, liveness and diagnostics endpoints
type HealthHandler struct {
	store StoreStatus
	probe *diagnostics.Probe
}

func NewHealthHandler(store StoreStatus, probe *diagnostics.Probe) *HealthHandler {
	return &HealthHandler{
		store: store,
		probe: probe,
	}
}

// Root godoc
// @Summary Service banner
// @Tags Health
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Coins Guard Backend läuft"})
}

// Hello godoc
// @Summary Greeting
// @Tags Health
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /api/hello [get]
func (h *HealthHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Willkommen bei Coins Guard"})
}

// Diagnostics godoc
// @Summary Document store diagnostics
// @Description Reports configuration and live connectivity of the document store. Always answers 200.
// @Tags Health
// @Produce json
// @Success 200 {object} diagnostics.Report
// @Router /test [get]
func (h *HealthHandler) Diagnostics(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")
	c.JSON(http.StatusOK, h.probe.Run(c.Request.Context()))
}

// Healthcheck godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/healthcheck [get]
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	if !h.store.Available() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "document store not connected",
		})
		return
	}

	if h.store.BreakerState() == gobreaker.StateOpen.String() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "document store failing",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
