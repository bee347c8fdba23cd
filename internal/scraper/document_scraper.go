package scraper

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/hoos-helper/advisor-api/internal/models"
	"github.com/hoos-helper/advisor-api/pkg/config"
)

type documentSink interface {
	Upsert(ctx context.Context, doc *models.Document) error
}

// DocumentScraper fetches the configured reference pages and stores
// their readable text for advising retrieval.
type DocumentScraper struct {
	urls      []string
	userAgent string
	client    *http.Client
	sink      documentSink
	logger    *zap.Logger
}

// NewDocumentScraper constructs a DocumentScraper.
func NewDocumentScraper(cfg config.ScraperConfig, sink documentSink, logger *zap.Logger) *DocumentScraper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentScraper{
		urls:      cfg.DocumentURLs,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.RequestTimeout},
		sink:      sink,
		logger:    logger,
	}
}

// Run fetches every configured page. A single bad page is logged and
// skipped so one dead link cannot starve the rest of the corpus.
func (s *DocumentScraper) Run(ctx context.Context) error {
	var stored int
	for _, url := range s.urls {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, err := s.scrapePage(ctx, url)
		if err != nil {
			s.logger.Sugar().Warnw("failed to scrape document", "url", url, "error", err)
			continue
		}

		if err := s.sink.Upsert(ctx, doc); err != nil {
			s.logger.Sugar().Warnw("failed to store document", "url", url, "error", err)
			continue
		}
		stored++
	}

	s.logger.Sugar().Infow("document scrape finished", "stored", stored, "total", len(s.urls))
	return nil
}

func (s *DocumentScraper) scrapePage(ctx context.Context, url string) (*models.Document, error) {
	document, err := fetchDocument(ctx, s.client, url, s.userAgent)
	if err != nil {
		return nil, err
	}

	document.Find("script, style, nav, footer").Remove()

	title := collapseWhitespace(document.Find("title").Text())
	if title == "" {
		title = url
	}

	return &models.Document{
		Title:   title,
		Source:  url,
		Content: collapseWhitespace(document.Find("body").Text()),
	}, nil
}
