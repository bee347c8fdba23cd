package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoos-helper/advisor-api/pkg/jobs"
)

type queueMock struct {
	enqueued []jobs.Job
	err      error
}

func (m *queueMock) Enqueue(job jobs.Job) error {
	if m.err != nil {
		return m.err
	}
	m.enqueued = append(m.enqueued, job)
	return nil
}

type scraperMock struct {
	runs int
	err  error
}

func (m *scraperMock) Run(ctx context.Context) error {
	m.runs++
	return m.err
}

func TestScrapeServiceTrigger(t *testing.T) {
	queue := &queueMock{}
	svc := NewScrapeService(queue, nil)

	jobID, err := svc.Trigger(JobScrapeCourses)

	require.NoError(t, err)
	assert.NotEmpty(t, jobID)
	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, JobScrapeCourses, queue.enqueued[0].Type)
	assert.Equal(t, jobID, queue.enqueued[0].ID)
}

func TestScrapeServiceTriggerUnknownType(t *testing.T) {
	svc := NewScrapeService(&queueMock{}, nil)

	_, err := svc.Trigger("scrape_everything")

	assert.Error(t, err)
}

func TestScrapeServiceTriggerWithoutQueue(t *testing.T) {
	svc := NewScrapeService(nil, nil)

	_, err := svc.Trigger(JobScrapeClubs)

	assert.Error(t, err)
}

type invalidatorMock struct {
	deleted []string
}

func (m *invalidatorMock) Delete(ctx context.Context, keys ...string) error {
	m.deleted = append(m.deleted, keys...)
	return nil
}

func TestScrapeDispatcherHandle(t *testing.T) {
	courses := &scraperMock{}
	dispatcher := NewScrapeDispatcher(courses, nil, nil, nil, nil)

	err := dispatcher.Handle(context.Background(), jobs.Job{ID: "1", Type: JobScrapeCourses})

	require.NoError(t, err)
	assert.Equal(t, 1, courses.runs)
}

func TestScrapeDispatcherHandleInvalidatesCatalogCache(t *testing.T) {
	invalidator := &invalidatorMock{}
	dispatcher := NewScrapeDispatcher(&scraperMock{}, &scraperMock{}, nil, invalidator, nil)

	require.NoError(t, dispatcher.Handle(context.Background(), jobs.Job{ID: "1", Type: JobScrapeCourses}))
	require.NoError(t, dispatcher.Handle(context.Background(), jobs.Job{ID: "2", Type: JobScrapeClubs}))

	assert.Equal(t, []string{catalogCacheKey}, invalidator.deleted)
}

func TestScrapeDispatcherHandleMissingScraper(t *testing.T) {
	dispatcher := NewScrapeDispatcher(nil, nil, nil, nil, nil)

	err := dispatcher.Handle(context.Background(), jobs.Job{ID: "1", Type: JobScrapeClubs})

	assert.NoError(t, err)
}

func TestScrapeDispatcherHandleScraperError(t *testing.T) {
	documents := &scraperMock{err: errors.New("fetch failed")}
	dispatcher := NewScrapeDispatcher(nil, nil, documents, nil, nil)

	err := dispatcher.Handle(context.Background(), jobs.Job{ID: "1", Type: JobScrapeDocuments})

	assert.Error(t, err)
}
