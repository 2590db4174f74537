package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-trip-planner/internal/itinerary"
)

// aiServiceName is what the health endpoint reports as the generation
// capability's identity.
const aiServiceName = "Gemini AI"

// HealthHandler reports the state of the generation capability.
type HealthHandler struct {
	generator *itinerary.Generator
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(generator *itinerary.Generator) *HealthHandler {
	return &HealthHandler{generator: generator}
}

// AIHealth handles GET /api/health/ai.
func (h *HealthHandler) AIHealth(c *gin.Context) {
	available := h.generator.Available()

	status := "operational"
	message := "AI service is ready"
	if !available {
		status = "unavailable"
		message = "GEMINI_API_KEY not configured"
	}

	c.JSON(http.StatusOK, gin.H{
		"available": available,
		"service":   aiServiceName,
		"status":    status,
		"message":   message,
	})
}
