package courses

import (
	"net/http"

	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List courses
// @Description Public course catalog, proxied from the backend
// @Tags courses
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/courses [get]
func ListHandler(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := client.Courses(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to fetch courses", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Courses: list})
	}
}

// GetHandler godoc
// @Summary Get a course
// @Description One catalog entry by slug
// @Tags courses
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} CourseResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/courses/{slug} [get]
func GetHandler(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			errors.BadRequest(c, "course slug required", nil)
			return
		}

		course, err := client.Course(c.Request.Context(), slug)
		if err != nil {
			errors.NotFound(c, "course")
			return
		}

		c.JSON(http.StatusOK, CourseResponse{Course: course})
	}
}
