package planner

import (
	"fmt"
	"sort"

	"github.com/hoos-helper/advisor-api/internal/models"
)

// Default credit-load thresholds. All three are overridable through
// Options since real courses vary between one and four-plus credits.
const (
	DefaultCourseCredits  = 3
	DefaultMinTermCredits = 12
	DefaultMaxTermCredits = 18
)

// Options tunes the credit-load advisory pass.
type Options struct {
	DefaultCourseCredits int
	MinTermCredits       int
	MaxTermCredits       int
}

// Validator checks a multi-year course plan against a fixed
// prerequisite graph. It is pure and holds no mutable state, so one
// instance may serve concurrent requests.
type Validator struct {
	graph          Graph
	credits        map[string]int
	defaultCredits int
	minTermCredits int
	maxTermCredits int
}

// New constructs a Validator over graph. credits supplies per-course
// credit values from the catalog; codes absent from it fall back to
// the configured default.
func New(graph Graph, credits map[string]int, opts Options) *Validator {
	if graph == nil {
		graph = Graph{}
	}
	if opts.DefaultCourseCredits <= 0 {
		opts.DefaultCourseCredits = DefaultCourseCredits
	}
	if opts.MinTermCredits <= 0 {
		opts.MinTermCredits = DefaultMinTermCredits
	}
	if opts.MaxTermCredits <= 0 {
		opts.MaxTermCredits = DefaultMaxTermCredits
	}
	return &Validator{
		graph:          graph,
		credits:        credits,
		defaultCredits: opts.DefaultCourseCredits,
		minTermCredits: opts.MinTermCredits,
		maxTermCredits: opts.MaxTermCredits,
	}
}

// termKey orders terms chronologically. Fall opens the labeled
// academic year, so (N, Fall) precedes (N, Spring). Comparison is
// numeric field-by-field; string keys would misorder year 9 vs 10.
type termKey struct {
	year    int
	ordinal int
}

func (k termKey) before(o termKey) bool {
	if k.year != o.year {
		return k.year < o.year
	}
	return k.ordinal < o.ordinal
}

// Validate checks plan for prerequisite violations and abnormal
// per-term credit load. Grouping, not input order, determines the
// outcome; shuffling entries within the same terms yields an identical
// result. Duplicate placements of one code are processed
// independently, and a course that produced findings still counts as
// completed for later terms: findings are advisory, never blocking.
func (v *Validator) Validate(plan models.StudentPlan) models.ValidationResult {
	timeline := make(map[termKey][]models.PlannedCourse)
	for _, course := range plan.Courses {
		key := termKey{year: course.Year, ordinal: course.Semester.Ordinal()}
		timeline[key] = append(timeline[key], course)
	}

	keys := make([]termKey, 0, len(timeline))
	for key := range timeline {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })

	errors := []models.Finding{}
	warnings := []models.Finding{}

	completed := make(map[string]struct{})
	for _, key := range keys {
		term := timeline[key]

		inTerm := make(map[string]struct{}, len(term))
		for _, course := range term {
			inTerm[course.CourseCode] = struct{}{}
		}

		for _, course := range term {
			for _, prereq := range v.graph.Prerequisites(course.CourseCode) {
				if _, done := completed[prereq]; done {
					continue
				}
				// Same-term co-enrollment satisfies the requirement.
				if _, concurrent := inTerm[prereq]; concurrent {
					continue
				}
				errors = append(errors, models.Finding{
					CourseCode: course.CourseCode,
					Year:       course.Year,
					Semester:   course.Semester,
					Message:    fmt.Sprintf("Missing prerequisite: %s", prereq),
					Severity:   models.SeverityError,
				})
			}
		}

		for _, course := range term {
			completed[course.CourseCode] = struct{}{}
		}
	}

	for _, key := range keys {
		term := timeline[key]

		total := 0
		for _, course := range term {
			total += v.creditsFor(course.CourseCode)
		}

		semester := term[0].Semester
		switch {
		case total < v.minTermCredits:
			warnings = append(warnings, models.Finding{
				Year:     key.year,
				Semester: semester,
				Message:  fmt.Sprintf("Low credit load: %d credits (minimum %d recommended)", total, v.minTermCredits),
				Severity: models.SeverityWarning,
			})
		case total > v.maxTermCredits:
			warnings = append(warnings, models.Finding{
				Year:     key.year,
				Semester: semester,
				Message:  fmt.Sprintf("High credit load: %d credits (maximum %d recommended)", total, v.maxTermCredits),
				Severity: models.SeverityWarning,
			})
		}
	}

	return models.ValidationResult{
		IsValid:  len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

func (v *Validator) creditsFor(code string) int {
	if credits, ok := v.credits[code]; ok && credits > 0 {
		return credits
	}
	return v.defaultCredits
}
