package users

import (
	"context"
	"net/http"
	"strconv"

	"codeberg.org/skillsprint/webfront/internal/errors"
	"codeberg.org/skillsprint/webfront/internal/session"
	"codeberg.org/skillsprint/webfront/skillsprint/users"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 50

// Store is the slice of the user repository the handlers use
type Store interface {
	FindByID(ctx context.Context, userID string) (*users.User, error)
	List(ctx context.Context, limit, offset int) ([]users.User, error)
	Count(ctx context.Context) (int, error)
	UpdateRole(ctx context.Context, userID string, role session.Role) (*users.User, error)
}

// ListHandler godoc
// @Summary List users
// @Description Admin-only listing of locally provisioned users
// @Tags users
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/users [get]
func ListHandler(userRepo Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
		if err != nil || limit <= 0 || limit > 200 {
			limit = defaultPageSize
		}

		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}

		list, err := userRepo.List(c.Request.Context(), limit, offset)
		if err != nil {
			errors.InternalError(c, "failed to list users", err)
			return
		}

		total, err := userRepo.Count(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to count users", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Users: list, Total: total})
	}
}

// GetHandler godoc
// @Summary Get a user
// @Description Admin-only lookup of one locally provisioned user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/users/{id} [get]
func GetHandler(userRepo Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")
		if userID == "" {
			errors.BadRequest(c, "user id required", nil)
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

// UpdateRoleHandler godoc
// @Summary Update a user's role
// @Description Admin-only role assignment
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateRoleRequest true "New role"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/users/{id}/role [put]
func UpdateRoleHandler(userRepo Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")
		if userID == "" {
			errors.BadRequest(c, "user id required", nil)
			return
		}

		var req UpdateRoleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		role := session.Role(req.Role)
		if !role.Valid() {
			errors.BadRequest(c, "invalid role", nil)
			return
		}

		user, err := userRepo.UpdateRole(c.Request.Context(), userID, role)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}
