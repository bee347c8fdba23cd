package planner

import "github.com/hoos-helper/advisor-api/internal/models"

// Graph maps a course code to the codes that must be completed before
// it. A code with no entry has zero prerequisites; absence is never an
// error. The graph is built once and treated as read-only afterwards.
type Graph map[string][]string

// Prerequisites returns the required-before list for code, or nil when
// the code is unknown to the graph.
func (g Graph) Prerequisites(code string) []string {
	return g[code]
}

// GraphFromCourses builds a prerequisite graph from catalog rows.
func GraphFromCourses(courses []models.Course) Graph {
	g := make(Graph, len(courses))
	for _, course := range courses {
		prereqs := make([]string, len(course.Prerequisites))
		copy(prereqs, course.Prerequisites)
		g[course.Code] = prereqs
	}
	return g
}

// DefaultGraph returns the fixed fallback table used when the catalog
// is unavailable.
func DefaultGraph() Graph {
	return Graph{
		"CS 1110":   {},
		"CS 2100":   {"CS 1110"},
		"CS 2120":   {"CS 2100"},
		"CS 3100":   {"CS 2100", "CS 2120"},
		"CS 4750":   {"CS 2120"},
		"CS 4710":   {"CS 2120"},
		"MATH 1310": {},
		"MATH 1320": {"MATH 1310"},
		"MATH 2310": {"MATH 1320"},
		"APMA 3080": {"MATH 1320"},
	}
}
