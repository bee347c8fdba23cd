package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoos-helper/advisor-api/internal/models"
)

type courseServiceMock struct {
	courses    []models.Course
	err        error
	lastFilter models.CourseFilter
}

func (m *courseServiceMock) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, *models.Pagination, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.courses, &models.Pagination{Page: 1, PageSize: 20, TotalCount: len(m.courses)}, nil
}

func getRequest(t *testing.T, target string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Request = req
	return w, c
}

func TestCourseHandlerList(t *testing.T) {
	mockSvc := &courseServiceMock{
		courses: []models.Course{{Code: "CS 2100", Title: "Data Structures and Algorithms I", Department: "CS", Level: 2000}},
	}
	handler := NewCourseHandler(mockSvc)

	w, c := getRequest(t, "/courses?search=data&department=CS&level=2000")
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CS 2100")
	assert.Equal(t, "data", mockSvc.lastFilter.Search)
	assert.Equal(t, "CS", mockSvc.lastFilter.Department)
	assert.Equal(t, 2000, mockSvc.lastFilter.Level)
	assert.Equal(t, 1, mockSvc.lastFilter.Page)
	assert.Equal(t, 20, mockSvc.lastFilter.PageSize)
}

type clubServiceMock struct {
	clubs         []models.Club
	recommended   []models.Club
	lastInterests string
}

func (m *clubServiceMock) List(ctx context.Context, filter models.ClubFilter) ([]models.Club, *models.Pagination, error) {
	return m.clubs, &models.Pagination{Page: 1, PageSize: 20, TotalCount: len(m.clubs)}, nil
}

func (m *clubServiceMock) Recommended(ctx context.Context, interests string) ([]models.Club, error) {
	m.lastInterests = interests
	return m.recommended, nil
}

func TestClubHandlerRecommended(t *testing.T) {
	mockSvc := &clubServiceMock{
		recommended: []models.Club{{Name: "Data Science Club", Category: "Academic"}},
	}
	handler := NewClubHandler(mockSvc)

	w, c := getRequest(t, "/clubs/recommended?interests=data+science")
	handler.Recommended(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Data Science Club")
	assert.Equal(t, "data science", mockSvc.lastInterests)
}
