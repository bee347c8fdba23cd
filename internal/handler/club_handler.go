package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hoos-helper/advisor-api/internal/models"
	"github.com/hoos-helper/advisor-api/pkg/response"
)

type clubService interface {
	List(ctx context.Context, filter models.ClubFilter) ([]models.Club, *models.Pagination, error)
	Recommended(ctx context.Context, interests string) ([]models.Club, error)
}

// ClubHandler exposes student organization endpoints.
type ClubHandler struct {
	service clubService
}

// NewClubHandler constructs a club handler.
func NewClubHandler(svc clubService) *ClubHandler {
	return &ClubHandler{service: svc}
}

// List godoc
// @Summary List student clubs
// @Description List clubs with search and category filters
// @Tags Clubs
// @Produce json
// @Param search query string false "Match club name or description"
// @Param category query string false "Filter by category"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /clubs [get]
func (h *ClubHandler) List(c *gin.Context) {
	var filter models.ClubFilter
	filter.Search = c.Query("search")
	filter.Category = c.Query("category")
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}
	filter.SortBy = c.Query("sort")
	filter.SortOrder = c.Query("order")

	clubs, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, clubs, pagination)
}

// Recommended godoc
// @Summary Recommend clubs by interests
// @Tags Clubs
// @Produce json
// @Param interests query string false "Space-separated interest keywords"
// @Success 200 {object} response.Envelope
// @Router /clubs/recommended [get]
func (h *ClubHandler) Recommended(c *gin.Context) {
	clubs, err := h.service.Recommended(c.Request.Context(), c.Query("interests"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, clubs, nil)
}
