package handler

import (
	"strconv"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/application/service"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/presentation/http/dto/response"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxPaymentHandler handles tax payment HTTP requests
type TaxPaymentHandler struct {
	taxPaymentService *service.TaxPaymentService
}

// NewTaxPaymentHandler creates a new tax payment handler
func NewTaxPaymentHandler(taxPaymentService *service.TaxPaymentService) *TaxPaymentHandler {
	return &TaxPaymentHandler{taxPaymentService: taxPaymentService}
}

// List handles listing tax payment vouchers
func (h *TaxPaymentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.TaxPaymentFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if kindStr := c.Query("tax_kind"); kindStr != "" {
		if kindInt, err := strconv.Atoi(kindStr); err == nil {
			kind := enum.TaxKind(kindInt)
			params.TaxKind = &kind
		}
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

	result, err := h.taxPaymentService.ListTaxPayments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tax payments retrieved successfully", result)
}

// Create handles creating a tax payment voucher
func (h *TaxPaymentHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Date          *time.Time         `json:"date"`
		Amount        decimal.Decimal    `json:"amount"`
		TaxKind       enum.TaxKind       `json:"tax_kind"`
		Description   string             `json:"description"`
		PaymentMethod enum.PaymentMethod `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.taxPaymentService.CreateTaxPayment(c.Request.Context(), &service.CreateTaxPaymentInput{
		UserID:        *userID,
		Date:          req.Date,
		Amount:        req.Amount,
		TaxKind:       req.TaxKind,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Tax payment recorded successfully", payment)
}

// Get handles getting a single tax payment voucher
func (h *TaxPaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tax payment ID")
		return
	}

	payment, err := h.taxPaymentService.GetTaxPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax payment retrieved successfully", payment)
}

// Delete handles deleting a tax payment voucher
func (h *TaxPaymentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tax payment ID")
		return
	}

	if err := h.taxPaymentService.DeleteTaxPayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax payment deleted successfully", nil)
}
