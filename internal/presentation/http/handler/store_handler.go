package handler

import (
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/application/service"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StoreHandler handles store-related HTTP requests
type StoreHandler struct {
	storeService *service.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// Create handles creating a store
func (h *StoreHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Name    string  `json:"name" binding:"required,min=2,max=255"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
		TaxCode *string `json:"tax_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), &service.CreateStoreInput{
		OwnerID: *userID,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		TaxCode: req.TaxCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Store created successfully", store)
}

// List handles listing the stores the user belongs to
func (h *StoreHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	stores, err := h.storeService.ListStores(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stores retrieved successfully", stores)
}

// Get handles getting a single store
func (h *StoreHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	store, err := h.storeService.GetStore(c.Request.Context(), id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store retrieved successfully", store)
}

// Update handles updating a store
func (h *StoreHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	var req struct {
		Name    string  `json:"name"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
		TaxCode *string `json:"tax_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), &service.UpdateStoreInput{
		StoreID: id,
		UserID:  *userID,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		TaxCode: req.TaxCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store updated successfully", store)
}

// ListMembers handles listing a store's members
func (h *StoreHandler) ListMembers(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	members, err := h.storeService.ListMembers(c.Request.Context(), id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Members retrieved successfully", members)
}

// AddMember handles adding a member to a store
func (h *StoreHandler) AddMember(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	var req struct {
		Email string `json:"email" binding:"required,email"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	membership, err := h.storeService.AddMember(c.Request.Context(), &service.AddMemberInput{
		StoreID:     id,
		RequestedBy: *userID,
		Email:       req.Email,
		Role:        req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Member added successfully", membership)
}

// RemoveMember handles removing a member from a store
func (h *StoreHandler) RemoveMember(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	memberID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.BadRequest(c, "Invalid member ID")
		return
	}

	if err := h.storeService.RemoveMember(c.Request.Context(), id, *userID, memberID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member removed successfully", nil)
}
