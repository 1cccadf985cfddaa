package promotions

import (
	"net/http"

	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/errors"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List promotions
// @Description Active discount codes, proxied from the backend
// @Tags promotions
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/promotions [get]
func ListHandler(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := client.Promotions(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to fetch promotions", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Promotions: list})
	}
}

// CreateHandler godoc
// @Summary Create a promotion
// @Description Register a new discount code
// @Tags promotions
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Promotion details"
// @Success 201 {object} PromotionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/promotions [post]
func CreateHandler(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid promotion payload", err)
			return
		}

		store, ok := gate.StoreFrom(c)
		if !ok {
			errors.InternalError(c, "session not resolved", nil)
			return
		}

		promo, err := client.CreatePromotion(c.Request.Context(), store.Token(), req.Code, req.DiscountPercentage, req.ExpiresAt)
		if err != nil {
			errors.BadRequest(c, "failed to create promotion", err)
			return
		}

		c.JSON(http.StatusCreated, PromotionResponse{Promotion: promo})
	}
}

// UpdateHandler godoc
// @Summary Update a promotion
// @Description Apply a partial promotion update
// @Tags promotions
// @Accept json
// @Produce json
// @Param id path string true "Promotion ID"
// @Param request body UpdateRequest true "Fields to change"
// @Success 200 {object} PromotionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/promotions/{id} [put]
func UpdateHandler(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid update payload", err)
			return
		}

		store, ok := gate.StoreFrom(c)
		if !ok {
			errors.InternalError(c, "session not resolved", nil)
			return
		}

		update := backend.PromotionUpdate{
			Code:               req.Code,
			DiscountPercentage: req.DiscountPercentage,
			ExpiresAt:          req.ExpiresAt,
		}
		promo, err := client.UpdatePromotion(c.Request.Context(), store.Token(), c.Param("id"), update)
		if err != nil {
			errors.BadRequest(c, "failed to update promotion", err)
			return
		}

		c.JSON(http.StatusOK, PromotionResponse{Promotion: promo})
	}
}

// DeleteHandler godoc
// @Summary Delete a promotion
// @Description Remove a discount code
// @Tags promotions
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/promotions/{id} [delete]
func DeleteHandler(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := gate.StoreFrom(c)
		if !ok {
			errors.InternalError(c, "session not resolved", nil)
			return
		}

		if err := client.DeletePromotion(c.Request.Context(), store.Token(), c.Param("id")); err != nil {
			errors.BadRequest(c, "failed to delete promotion", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
