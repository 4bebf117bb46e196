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

// SalaryHandler handles payroll HTTP requests
type SalaryHandler struct {
	salaryService *service.SalaryService
}

// NewSalaryHandler creates a new salary handler
func NewSalaryHandler(salaryService *service.SalaryService) *SalaryHandler {
	return &SalaryHandler{salaryService: salaryService}
}

// List handles listing salary payments
func (h *SalaryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.SalaryFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Employee: c.Query("employee"),
	}

	if monthStr := c.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			params.Month = &month
		}
	}

	if yearStr := c.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			params.Year = &year
		}
	}

	result, err := h.salaryService.ListSalaries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Salary payments retrieved successfully", result)
}

// Create handles creating a salary payment
func (h *SalaryHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Month        int             `json:"month" binding:"required"`
		Year         int             `json:"year" binding:"required"`
		EmployeeName string          `json:"employee_name" binding:"required"`
		BaseSalary   decimal.Decimal `json:"base_salary"`
		Bonus        decimal.Decimal `json:"bonus"`
		Deduction    decimal.Decimal `json:"deduction"`
		PaymentDate  *time.Time      `json:"payment_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.salaryService.CreateSalary(c.Request.Context(), &service.CreateSalaryInput{
		UserID:       *userID,
		Month:        req.Month,
		Year:         req.Year,
		EmployeeName: req.EmployeeName,
		BaseSalary:   req.BaseSalary,
		Bonus:        req.Bonus,
		Deduction:    req.Deduction,
		PaymentDate:  req.PaymentDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Salary payment recorded successfully", payment)
}

// Get handles getting a single salary payment
func (h *SalaryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid salary payment ID")
		return
	}

	payment, err := h.salaryService.GetSalary(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Salary payment retrieved successfully", payment)
}

// Update handles correcting a salary payment
func (h *SalaryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid salary payment ID")
		return
	}

	var req struct {
		BaseSalary  *decimal.Decimal `json:"base_salary"`
		Bonus       *decimal.Decimal `json:"bonus"`
		Deduction   *decimal.Decimal `json:"deduction"`
		PaymentDate *time.Time       `json:"payment_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.salaryService.UpdateSalary(c.Request.Context(), &service.UpdateSalaryInput{
		ID:          id,
		BaseSalary:  req.BaseSalary,
		Bonus:       req.Bonus,
		Deduction:   req.Deduction,
		PaymentDate: req.PaymentDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Salary payment updated successfully", payment)
}

// Delete handles deleting a salary payment
func (h *SalaryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid salary payment ID")
		return
	}

	if err := h.salaryService.DeleteSalary(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Salary payment deleted successfully", nil)
}
