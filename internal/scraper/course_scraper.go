package scraper

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/hoos-helper/advisor-api/internal/models"
	"github.com/hoos-helper/advisor-api/pkg/config"
)

type courseSink interface {
	Upsert(ctx context.Context, course *models.Course) error
}

// CourseScraper pulls the course catalog from the configured listing
// page and upserts one row per course.
type CourseScraper struct {
	url       string
	userAgent string
	client    *http.Client
	sink      courseSink
	logger    *zap.Logger
}

// NewCourseScraper constructs a CourseScraper.
func NewCourseScraper(cfg config.ScraperConfig, sink courseSink, logger *zap.Logger) *CourseScraper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseScraper{
		url:       cfg.CourseCatalogURL,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.RequestTimeout},
		sink:      sink,
		logger:    logger,
	}
}

// Run fetches and stores the catalog. Rows that fail to parse are
// skipped and counted, not fatal.
func (s *CourseScraper) Run(ctx context.Context) error {
	document, err := fetchDocument(ctx, s.client, s.url, s.userAgent)
	if err != nil {
		return err
	}

	var stored, skipped int
	document.Find("tr.course").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if ctx.Err() != nil {
			return false
		}

		course, ok := parseCourseRow(row)
		if !ok {
			skipped++
			return true
		}

		if err := s.sink.Upsert(ctx, course); err != nil {
			s.logger.Sugar().Warnw("failed to store course", "code", course.Code, "error", err)
			skipped++
			return true
		}
		stored++
		return true
	})
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.logger.Sugar().Infow("course scrape finished", "stored", stored, "skipped", skipped)
	return nil
}

func parseCourseRow(row *goquery.Selection) (*models.Course, bool) {
	code := collapseWhitespace(row.Find("td.course-num").Text())
	title := collapseWhitespace(row.Find("td.course-title").Text())
	if code == "" || title == "" {
		return nil, false
	}

	credits := 0
	if raw := collapseWhitespace(row.Find("td.course-credits").Text()); raw != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(strings.SplitN(raw, ".", 2)[0])); err == nil {
			credits = parsed
		}
	}

	var prerequisites []string
	row.Find("td.course-prereqs a").Each(func(_ int, link *goquery.Selection) {
		if prereq := collapseWhitespace(link.Text()); prereq != "" {
			prerequisites = append(prerequisites, prereq)
		}
	})

	return &models.Course{
		Code:          code,
		Title:         title,
		Description:   collapseWhitespace(row.Find("td.course-desc").Text()),
		Credits:       credits,
		Department:    departmentOf(code),
		Level:         levelOf(code),
		Prerequisites: prerequisites,
	}, true
}

func departmentOf(code string) string {
	if idx := strings.IndexByte(code, ' '); idx > 0 {
		return code[:idx]
	}
	return code
}

// levelOf derives the thousand-level bucket from the course number,
// e.g. "CS 2100" -> 2000.
func levelOf(code string) int {
	idx := strings.IndexByte(code, ' ')
	if idx < 0 || idx+1 >= len(code) {
		return 0
	}
	number, err := strconv.Atoi(strings.TrimSpace(code[idx+1:]))
	if err != nil {
		return 0
	}
	return (number / 1000) * 1000
}
