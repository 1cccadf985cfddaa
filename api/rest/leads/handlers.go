package leads

import (
	"context"
	"net/http"
	"strconv"

	"codeberg.org/skillsprint/webfront/internal/errors"
	"codeberg.org/skillsprint/webfront/skillsprint/leads"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 50

// Store is the slice of the lead repository the handlers use
type Store interface {
	Create(ctx context.Context, email, name, message, source string) (*leads.Lead, error)
	List(ctx context.Context, limit, offset int) ([]leads.Lead, error)
	Count(ctx context.Context) (int, error)
}

// CreateHandler godoc
// @Summary Capture a lead
// @Description Record a marketing lead or contact inquiry from the storefront
// @Tags leads
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Lead fields"
// @Success 201 {object} LeadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/leads [post]
// @Security BearerAuth
func CreateHandler(leadRepo Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// a signed-in caller may omit the email; the bearer claims fill it
		email := req.Email
		if email == "" {
			email = c.GetString("user_email")
		}
		if email == "" {
			errors.BadRequest(c, "email required", nil)
			return
		}

		source := req.Source
		if source == "" {
			source = leads.SourceContact
		}

		lead, err := leadRepo.Create(c.Request.Context(), email, req.Name, req.Message, source)
		if err != nil {
			errors.InternalError(c, "failed to record lead", err)
			return
		}

		c.JSON(http.StatusCreated, LeadResponse{Lead: lead})
	}
}

// ListHandler godoc
// @Summary List captured leads
// @Description Admin-only listing of edge-captured leads
// @Tags leads
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/leads [get]
func ListHandler(leadRepo Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
		if err != nil || limit <= 0 || limit > 200 {
			limit = defaultPageSize
		}

		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}

		list, err := leadRepo.List(c.Request.Context(), limit, offset)
		if err != nil {
			errors.InternalError(c, "failed to list leads", err)
			return
		}

		total, err := leadRepo.Count(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to count leads", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Leads: list, Total: total})
	}
}
