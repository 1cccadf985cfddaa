package quizzes

import (
	"net/http"

	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/errors"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"github.com/gin-gonic/gin"
)

// CreateHandler godoc
// @Summary Create a quiz
// @Description Add a quiz to a course, proxied to the backend
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Quiz details"
// @Success 201 {object} CreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/quizzes [post]
func CreateHandler(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid quiz payload", err)
			return
		}

		store, ok := gate.StoreFrom(c)
		if !ok {
			errors.InternalError(c, "session not resolved", nil)
			return
		}

		id, err := client.CreateQuiz(c.Request.Context(), store.Token(), req.CourseID, req.Title, string(req.Questions))
		if err != nil {
			errors.BadRequest(c, "failed to create quiz", err)
			return
		}

		c.JSON(http.StatusCreated, CreateResponse{ID: id})
	}
}

// ReorderHandler godoc
// @Summary Reorder quizzes
// @Description Rewrite the quiz ordering for a course
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body ReorderRequest true "Ordered quiz IDs"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/quizzes/reorder [put]
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

		if err := client.ReorderQuizzes(c.Request.Context(), store.Token(), req.IDs); err != nil {
			errors.BadRequest(c, "failed to reorder quizzes", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
