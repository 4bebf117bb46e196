package middleware

import (
	"errors"
	"strings"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	infraRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/infrastructure/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StoreIDHeader selects the active store when the request does not come in
// through a store subdomain. Desktop POS clients talk to the API directly by
// IP and rely on this header.
const StoreIDHeader = "X-Store-ID"

// ExtractStoreFromHost extracts the store slug from a subdomain
// e.g., "taphoa-ba-lan.cuahangtaphoa.vn" -> "taphoa-ba-lan"
func ExtractStoreFromHost(host string) (string, error) {
	// Remove port if present
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return "", errors.New("invalid subdomain")
	}
	return parts[0], nil
}

// StoreMiddleware resolves the active store from the subdomain or the
// X-Store-ID header and adds it to the context. Every ledger row is scoped
// to a store, so the resolved ID drives all repository queries downstream.
func StoreMiddleware(storeRepo repository.StoreRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := resolveStore(c, storeRepo)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if store == nil {
			// No store selected; endpoints that need one enforce it
			// via RequireStore.
			c.Set("store_id", uuid.Nil)
			c.Next()
			return
		}

		// Validate user has access to this store (if authenticated)
		userIDVal, exists := c.Get("user_id")
		if exists {
			userID, ok := userIDVal.(uuid.UUID)
			if ok && userID != uuid.Nil {
				isMember, _ := storeRepo.IsMember(c.Request.Context(), store.ID, userID)
				if !isMember {
					response.Forbidden(c, "Access denied to this store")
					c.Abort()
					return
				}
			}
		}

		// Set store in Gin context (for middleware/handlers)
		c.Set("store_id", store.ID)
		c.Set("store", store)

		// Also set store ID in request context (for services/repositories)
		ctx := infraRepo.WithStore(c.Request.Context(), store.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func resolveStore(c *gin.Context, storeRepo repository.StoreRepository) (*entity.Store, error) {
	if slug, err := ExtractStoreFromHost(c.Request.Host); err == nil {
		store, err := storeRepo.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	if raw := c.GetHeader(StoreIDHeader); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, nil
		}
		store, err := storeRepo.GetByID(c.Request.Context(), id)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	return nil, nil
}

// RequireStore ensures a valid store context exists
func RequireStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID, exists := c.Get("store_id")
		if !exists {
			response.BadRequest(c, "Store context required")
			c.Abort()
			return
		}

		id, ok := storeID.(uuid.UUID)
		if !ok || id == uuid.Nil {
			response.BadRequest(c, "Store context required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetStoreID retrieves the store ID from gin context
func GetStoreID(c *gin.Context) uuid.UUID {
	storeID, exists := c.Get("store_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := storeID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
