package handler

import (
	"strconv"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/application/service"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/presentation/http/dto/response"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImportHandler handles goods import HTTP requests
type ImportHandler struct {
	importService *service.ImportService
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// List handles listing import receipts
func (h *ImportHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ImportFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.importService.ListImports(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Imports retrieved successfully", result)
}

// Create handles creating an import receipt
func (h *ImportHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Supplier   string     `json:"supplier" binding:"required"`
		ImportDate *time.Time `json:"import_date"`
		Note       *string    `json:"note"`
		Items      []struct {
			ProductID       uuid.UUID       `json:"product_id"`
			Quantity        int             `json:"quantity"`
			ImportUnitPrice decimal.Decimal `json:"import_unit_price"`
		} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.ImportItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.ImportItemInput{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			ImportUnitPrice: item.ImportUnitPrice,
		}
	}

	receipt, err := h.importService.CreateImport(c.Request.Context(), &service.CreateImportInput{
		UserID:     *userID,
		Supplier:   req.Supplier,
		ImportDate: req.ImportDate,
		Note:       req.Note,
		Items:      items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Import recorded successfully", receipt)
}

// Get handles getting a single import receipt
func (h *ImportHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid import ID")
		return
	}

	receipt, err := h.importService.GetImport(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Import retrieved successfully", receipt)
}
