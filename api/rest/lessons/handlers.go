package lessons

import (
	"net/http"

	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/errors"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"github.com/gin-gonic/gin"
)

// CreateHandler godoc
// @Summary Create a lesson
// @Description Add a lesson to a course, proxied to the backend
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Lesson details"
// @Success 201 {object} CreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/lessons [post]
func CreateHandler(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid lesson payload", err)
			return
		}

		store, ok := gate.StoreFrom(c)
		if !ok {
			errors.InternalError(c, "session not resolved", nil)
			return
		}

		id, err := client.CreateLesson(c.Request.Context(), store.Token(), req.CourseID, req.Title, req.VideoURL, req.Avatar)
		if err != nil {
			errors.BadRequest(c, "failed to create lesson", err)
			return
		}

		c.JSON(http.StatusCreated, CreateResponse{ID: id})
	}
}

// ReorderHandler godoc
// @Summary Reorder lessons
// @Description Rewrite the lesson ordering for a course
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body ReorderRequest true "Ordered lesson IDs"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/lessons/reorder [put]
func ReorderHandler(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReorderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid reorder payload", err)
			return
		}

		store, ok := gate.StoreFrom(c)
		if !ok {
			errors.InternalError(c, "session not resolved", nil)
			return
		}

		if err := client.ReorderLessons(c.Request.Context(), store.Token(), req.IDs); err != nil {
			errors.BadRequest(c, "failed to reorder lessons", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// UpdateHandler godoc
// @Summary Update a lesson
// @Description Apply a partial lesson update
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param request body UpdateRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/lessons/{id} [patch]
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

		update := backend.LessonUpdate{
			ID:       c.Param("id"),
			Order:    req.Order,
			Title:    req.Title,
			VideoURL: req.VideoURL,
			Avatar:   req.Avatar,
			Visible:  req.Visible,
		}
		if err := client.UpdateLesson(c.Request.Context(), store.Token(), update); err != nil {
			errors.BadRequest(c, "failed to update lesson", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
