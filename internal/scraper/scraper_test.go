package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoos-helper/advisor-api/internal/models"
	"github.com/hoos-helper/advisor-api/pkg/config"
)

type courseSinkMock struct {
	courses []models.Course
}

func (m *courseSinkMock) Upsert(ctx context.Context, course *models.Course) error {
	m.courses = append(m.courses, *course)
	return nil
}

type clubSinkMock struct {
	clubs []models.Club
}

func (m *clubSinkMock) Upsert(ctx context.Context, club *models.Club) error {
	m.clubs = append(m.clubs, *club)
	return nil
}

type documentSinkMock struct {
	docs []models.Document
}

func (m *documentSinkMock) Upsert(ctx context.Context, doc *models.Document) error {
	m.docs = append(m.docs, *doc)
	return nil
}

func scraperConfig(url string) config.ScraperConfig {
	return config.ScraperConfig{
		CourseCatalogURL: url,
		ClubDirectoryURL: url,
		DocumentURLs:     []string{url},
		UserAgent:        "advisor-api-test",
		RequestTimeout:   5 * time.Second,
	}
}

func TestCourseScraperRun(t *testing.T) {
	const page = `<html><body><table>
        <tr class="course">
            <td class="course-num">CS 2100</td>
            <td class="course-title">Data Structures and Algorithms I</td>
            <td class="course-credits">3</td>
            <td class="course-desc">Introduction to data structures.</td>
            <td class="course-prereqs"><a href="#">CS 1110</a></td>
        </tr>
        <tr class="course"><td class="course-num"></td><td class="course-title">broken row</td></tr>
    </table></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "advisor-api-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	sink := &courseSinkMock{}
	scraper := NewCourseScraper(scraperConfig(server.URL), sink, nil)

	require.NoError(t, scraper.Run(context.Background()))
	require.Len(t, sink.courses, 1)

	course := sink.courses[0]
	assert.Equal(t, "CS 2100", course.Code)
	assert.Equal(t, "Data Structures and Algorithms I", course.Title)
	assert.Equal(t, 3, course.Credits)
	assert.Equal(t, "CS", course.Department)
	assert.Equal(t, 2000, course.Level)
	assert.Equal(t, []string{"CS 1110"}, []string(course.Prerequisites))
}

func TestClubScraperRun(t *testing.T) {
	const page = `<html><body>
        <div class="organization">
            <h3 class="org-name">Hoos Hacking</h3>
            <p class="org-description">Hackathon organization and coding community</p>
            <span class="org-category">Tech</span>
            <span class="org-tag">Technology</span>
            <span class="org-tag">Hackathons</span>
            <a class="org-website" href="https://hooshacking.org">site</a>
        </div>
        <div class="organization"><p class="org-description">nameless card</p></div>
    </body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	sink := &clubSinkMock{}
	scraper := NewClubScraper(scraperConfig(server.URL), sink, nil)

	require.NoError(t, scraper.Run(context.Background()))
	require.Len(t, sink.clubs, 1)

	club := sink.clubs[0]
	assert.Equal(t, "Hoos Hacking", club.Name)
	assert.Equal(t, "Tech", club.Category)
	assert.Equal(t, []string{"Technology", "Hackathons"}, []string(club.Tags))
	assert.Equal(t, "https://hooshacking.org", club.Website)
}

func TestDocumentScraperRun(t *testing.T) {
	const page = `<html><head><title>Registration Deadlines</title>
        <script>ignored()</script></head>
        <body><nav>menu</nav><p>Add/drop closes   two weeks in.</p><footer>footer</footer></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	sink := &documentSinkMock{}
	scraper := NewDocumentScraper(scraperConfig(server.URL), sink, nil)

	require.NoError(t, scraper.Run(context.Background()))
	require.Len(t, sink.docs, 1)

	doc := sink.docs[0]
	assert.Equal(t, "Registration Deadlines", doc.Title)
	assert.Equal(t, server.URL, doc.Source)
	assert.Equal(t, "Add/drop closes two weeks in.", doc.Content)
}

func TestDocumentScraperSkipsBadPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	sink := &documentSinkMock{}
	scraper := NewDocumentScraper(scraperConfig(server.URL), sink, nil)

	require.NoError(t, scraper.Run(context.Background()))
	assert.Empty(t, sink.docs)
}
