package handler

import (
	"github.com/bizpulse/bizpulse-api/internal/application/service"
	"github.com/bizpulse/bizpulse-api/internal/domain/repository"
	"github.com/bizpulse/bizpulse-api/internal/presentation/http/dto/request"
	"github.com/bizpulse/bizpulse-api/internal/presentation/http/dto/response"
	"github.com/bizpulse/bizpulse-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// AdSpendHandler handles ad-spend HTTP requests
type AdSpendHandler struct {
	adSpendService *service.AdSpendService
}

// NewAdSpendHandler creates a new ad-spend handler
func NewAdSpendHandler(adSpendService *service.AdSpendService) *AdSpendHandler {
	return &AdSpendHandler{adSpendService: adSpendService}
}

// List handles listing the ad-spend ledger newest first
func (h *AdSpendHandler) List(c *gin.Context) {
	var req request.LedgerFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	params := &repository.LedgerFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
		From: req.From,
		To:   req.To,
	}
	params.Pagination.Validate()

	result, err := h.adSpendService.ListAdSpends(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Ad spend entries retrieved successfully", result)
}

// Create handles recording an ad-spend entry
func (h *AdSpendHandler) Create(c *gin.Context) {
	var req request.RecordAdSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	spend, err := h.adSpendService.RecordAdSpend(c.Request.Context(), &service.RecordAdSpendInput{
		Platform: req.Platform,
		Amount:   req.Amount,
		Date:     req.Date,
		Reach:    req.Reach,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ad spend recorded successfully", spend)
}
