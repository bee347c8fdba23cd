package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hoos-helper/advisor-api/internal/service"
	"github.com/hoos-helper/advisor-api/pkg/response"
)

type scrapeService interface {
	Trigger(jobType string) (string, error)
}

// ScrapeHandler exposes background scrape triggers.
type ScrapeHandler struct {
	service scrapeService
	metrics *service.MetricsService
}

// NewScrapeHandler constructs a scrape handler. metrics may be nil.
func NewScrapeHandler(svc scrapeService, metrics *service.MetricsService) *ScrapeHandler {
	return &ScrapeHandler{service: svc, metrics: metrics}
}

// Courses godoc
// @Summary Trigger course catalog scraping
// @Tags Scraping
// @Produce json
// @Success 202 {object} response.Envelope
// @Router /scrape/courses [post]
func (h *ScrapeHandler) Courses(c *gin.Context) {
	h.trigger(c, service.JobScrapeCourses)
}

// Clubs godoc
// @Summary Trigger club directory scraping
// @Tags Scraping
// @Produce json
// @Success 202 {object} response.Envelope
// @Router /scrape/clubs [post]
func (h *ScrapeHandler) Clubs(c *gin.Context) {
	h.trigger(c, service.JobScrapeClubs)
}

// Documents godoc
// @Summary Trigger reference document scraping
// @Tags Scraping
// @Produce json
// @Success 202 {object} response.Envelope
// @Router /scrape/documents [post]
func (h *ScrapeHandler) Documents(c *gin.Context) {
	h.trigger(c, service.JobScrapeDocuments)
}

func (h *ScrapeHandler) trigger(c *gin.Context, jobType string) {
	jobID, err := h.service.Trigger(jobType)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveScrapeJob(jobType)
	}

	response.Accepted(c, gin.H{"status": "started", "jobId": jobID})
}
