package handler

import (
	"github.com/bizpulse/bizpulse-api/internal/application/service"
	"github.com/bizpulse/bizpulse-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// InsightHandler handles AI insight HTTP requests
type InsightHandler struct {
	insightService *service.InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService *service.InsightService) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// Generate handles generating a business coaching report
func (h *InsightHandler) Generate(c *gin.Context) {
	report, err := h.insightService.GenerateReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Insight generated successfully", report)
}
