package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hoos-helper/advisor-api/internal/llm"
	"github.com/hoos-helper/advisor-api/internal/models"
	"github.com/hoos-helper/advisor-api/internal/planner"
	appErrors "github.com/hoos-helper/advisor-api/pkg/errors"
	"github.com/hoos-helper/advisor-api/pkg/export"
)

type catalogSnapshotter interface {
	Snapshot(ctx context.Context) (planner.Graph, map[string]int)
}

// GeneratePlanRequest describes the plan-generation payload.
type GeneratePlanRequest struct {
	Major     string `json:"major" validate:"required"`
	StartYear int    `json:"startYear" validate:"omitempty,min=1900"`
	Interests string `json:"interests"`
}

// GeneratedPlan pairs a model-produced plan with its validation.
type GeneratedPlan struct {
	Plan       models.StudentPlan      `json:"plan"`
	Validation models.ValidationResult `json:"validation"`
}

// PlannerService wraps the prerequisite validator behind the request
// boundary and drives LLM plan generation and PDF export.
type PlannerService struct {
	catalog   catalogSnapshotter
	generator llm.Generator
	pdf       *export.PDFExporter
	opts      planner.Options
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPlannerService constructs a PlannerService.
func NewPlannerService(catalog catalogSnapshotter, generator llm.Generator, pdf *export.PDFExporter, opts planner.Options, validate *validator.Validate, logger *zap.Logger) *PlannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &PlannerService{catalog: catalog, generator: generator, pdf: pdf, opts: opts, validator: validate, logger: logger}
}

// Validate checks a plan against the catalog's prerequisite graph.
// Shape violations are rejected before the validator runs; domain
// findings come back inside the result, never as errors.
func (s *PlannerService) Validate(ctx context.Context, plan models.StudentPlan) (*models.ValidationResult, error) {
	if err := checkPlanShape(plan); err != nil {
		return nil, err
	}

	graph, credits := s.snapshot(ctx)
	result := planner.New(graph, credits, s.opts).Validate(plan)
	return &result, nil
}

// Generate asks the model for a multi-year plan, parses its free-text
// reply, and validates the result before returning it.
func (s *PlannerService) Generate(ctx context.Context, req GeneratePlanRequest) (*GeneratedPlan, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid generation payload")
	}
	if s.generator == nil {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "plan generation is not configured")
	}

	graph, credits := s.snapshot(ctx)

	prompt := buildGenerationPrompt(req, graph)
	text, err := s.generator.Generate(ctx, llm.GenerateRequest{
		System:   generationSystemPrompt,
		Messages: []llm.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "plan generation failed")
	}

	plan, err := parseGeneratedPlan(text)
	if err != nil {
		s.logger.Warn("unparseable generated plan", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "model returned an unparseable plan")
	}
	plan.StartYear = req.StartYear

	validation := planner.New(graph, credits, s.opts).Validate(*plan)
	return &GeneratedPlan{Plan: *plan, Validation: validation}, nil
}

// Export renders a plan as a chronological PDF table.
func (s *PlannerService) Export(ctx context.Context, plan models.StudentPlan) ([]byte, error) {
	if err := checkPlanShape(plan); err != nil {
		return nil, err
	}

	_, credits := s.snapshot(ctx)

	ordered := make([]models.PlannedCourse, len(plan.Courses))
	copy(ordered, plan.Courses)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Year != ordered[j].Year {
			return ordered[i].Year < ordered[j].Year
		}
		return ordered[i].Semester.Ordinal() < ordered[j].Semester.Ordinal()
	})

	defaultCredits := s.opts.DefaultCourseCredits
	if defaultCredits <= 0 {
		defaultCredits = planner.DefaultCourseCredits
	}

	data := export.Dataset{Headers: []string{"Year", "Semester", "Course", "Credits"}}
	for _, course := range ordered {
		courseCredits := credits[course.CourseCode]
		if courseCredits <= 0 {
			courseCredits = defaultCredits
		}
		data.Rows = append(data.Rows, map[string]string{
			"Year":     strconv.Itoa(course.Year),
			"Semester": string(course.Semester),
			"Course":   course.CourseCode,
			"Credits":  strconv.Itoa(courseCredits),
		})
	}

	payload, err := s.pdf.Render(data, "Course Plan")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render plan export")
	}
	return payload, nil
}

func (s *PlannerService) snapshot(ctx context.Context) (planner.Graph, map[string]int) {
	if s.catalog == nil {
		return planner.DefaultGraph(), nil
	}
	return s.catalog.Snapshot(ctx)
}

// checkPlanShape rejects malformed entries before they reach the
// validator: the validator itself never errors for well-formed input.
func checkPlanShape(plan models.StudentPlan) error {
	for i, course := range plan.Courses {
		if strings.TrimSpace(course.CourseCode) == "" {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("courses[%d]: courseCode is required", i))
		}
		if course.Year < 1 {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("courses[%d]: year must be a positive integer", i))
		}
		if !course.Semester.Valid() {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("courses[%d]: semester must be Fall or Spring", i))
		}
	}
	return nil
}

const generationSystemPrompt = `You are an academic planning assistant. You produce multi-year course plans as strict JSON with no commentary. The JSON shape is {"courses": [{"courseCode": string, "year": integer, "semester": "Fall"|"Spring"}]}. Respect prerequisite ordering and keep each term between 12 and 18 credits.`

func buildGenerationPrompt(req GeneratePlanRequest, graph planner.Graph) string {
	codes := make([]string, 0, len(graph))
	for code := range graph {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var builder strings.Builder
	builder.WriteString("Known courses and their prerequisites:\n")
	for _, code := range codes {
		prereqs := graph.Prerequisites(code)
		if len(prereqs) == 0 {
			fmt.Fprintf(&builder, "- %s (no prerequisites)\n", code)
			continue
		}
		fmt.Fprintf(&builder, "- %s (requires %s)\n", code, strings.Join(prereqs, ", "))
	}

	fmt.Fprintf(&builder, "\nGenerate a four-year plan for a %s major.", req.Major)
	if req.Interests != "" {
		fmt.Fprintf(&builder, " The student is interested in %s.", req.Interests)
	}
	builder.WriteString(" Reply with JSON only.")

	return builder.String()
}

// parseGeneratedPlan tolerates fenced code blocks and surrounding
// prose around the model's JSON reply.
func parseGeneratedPlan(text string) (*models.StudentPlan, error) {
	raw := extractJSON(text)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in model reply")
	}

	var plan models.StudentPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("decode generated plan: %w", err)
	}
	if len(plan.Courses) == 0 {
		return nil, fmt.Errorf("generated plan contains no courses")
	}

	for i, course := range plan.Courses {
		if strings.TrimSpace(course.CourseCode) == "" || course.Year < 1 || !course.Semester.Valid() {
			return nil, fmt.Errorf("generated plan entry %d is malformed", i)
		}
	}

	return &plan, nil
}

func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
