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

// ExpenseHandler handles operating expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List handles listing expense vouchers
func (h *ExpenseHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ExpenseFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if categoryStr := c.Query("category"); categoryStr != "" {
		if categoryInt, err := strconv.Atoi(categoryStr); err == nil {
			category := enum.ExpenseCategory(categoryInt)
			params.Category = &category
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

	result, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// Create handles creating an expense voucher
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Date          *time.Time           `json:"date"`
		Amount        decimal.Decimal      `json:"amount"`
		Category      enum.ExpenseCategory `json:"category"`
		Description   string               `json:"description"`
		PaymentMethod enum.PaymentMethod   `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), &service.CreateExpenseInput{
		UserID:        *userID,
		Date:          req.Date,
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// Get handles getting a single expense voucher
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// Update handles updating an expense voucher
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req struct {
		Date          *time.Time            `json:"date"`
		Amount        *decimal.Decimal      `json:"amount"`
		Category      *enum.ExpenseCategory `json:"category"`
		Description   *string               `json:"description"`
		PaymentMethod *enum.PaymentMethod   `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), &service.UpdateExpenseInput{
		ID:            id,
		Date:          req.Date,
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles deleting an expense voucher
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense deleted successfully", nil)
}
