package scraper

import (
	"context"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/hoos-helper/advisor-api/internal/models"
	"github.com/hoos-helper/advisor-api/pkg/config"
)

type clubSink interface {
	Upsert(ctx context.Context, club *models.Club) error
}

// ClubScraper pulls the student organization directory.
type ClubScraper struct {
	url       string
	userAgent string
	client    *http.Client
	sink      clubSink
	logger    *zap.Logger
}

// NewClubScraper constructs a ClubScraper.
func NewClubScraper(cfg config.ScraperConfig, sink clubSink, logger *zap.Logger) *ClubScraper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClubScraper{
		url:       cfg.ClubDirectoryURL,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.RequestTimeout},
		sink:      sink,
		logger:    logger,
	}
}

// Run fetches and stores the directory.
func (s *ClubScraper) Run(ctx context.Context) error {
	document, err := fetchDocument(ctx, s.client, s.url, s.userAgent)
	if err != nil {
		return err
	}

	var stored, skipped int
	document.Find("div.organization").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if ctx.Err() != nil {
			return false
		}

		club, ok := parseClubCard(card)
		if !ok {
			skipped++
			return true
		}

		if err := s.sink.Upsert(ctx, club); err != nil {
			s.logger.Sugar().Warnw("failed to store club", "name", club.Name, "error", err)
			skipped++
			return true
		}
		stored++
		return true
	})
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.logger.Sugar().Infow("club scrape finished", "stored", stored, "skipped", skipped)
	return nil
}

func parseClubCard(card *goquery.Selection) (*models.Club, bool) {
	name := collapseWhitespace(card.Find("h3.org-name").Text())
	if name == "" {
		return nil, false
	}

	var tags []string
	card.Find("span.org-tag").Each(func(_ int, tag *goquery.Selection) {
		if text := collapseWhitespace(tag.Text()); text != "" {
			tags = append(tags, text)
		}
	})

	website, _ := card.Find("a.org-website").Attr("href")
	email := collapseWhitespace(card.Find("a.org-email").Text())

	return &models.Club{
		Name:        name,
		Description: collapseWhitespace(card.Find("p.org-description").Text()),
		Category:    collapseWhitespace(card.Find("span.org-category").Text()),
		Tags:        tags,
		Email:       email,
		Website:     website,
	}, true
}
