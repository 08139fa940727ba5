package catalog

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	catalogservice "github.com/oolongtea/coursehub-sync/services/catalog"
	"github.com/oolongtea/coursehub-sync/utils/response"
	"github.com/oolongtea/coursehub-sync/utils/validation"
)

// CatalogHandler handles catalog read requests
type CatalogHandler struct {
	catalog *catalogservice.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *catalogservice.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func parseCalendarID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("calendar_id"))
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return id, nil
}

// ListCalendars handles GET /api/calendars
func (h *CatalogHandler) ListCalendars(c *fiber.Ctx) error {
	calendars, err := h.catalog.Calendars(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch calendars")
	}
	return response.Success(c, calendars)
}

// ListCampuses handles GET /api/calendars/:calendar_id/campuses
func (h *CatalogHandler) ListCampuses(c *fiber.Ctx) error {
	calendarID, err := parseCalendarID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid calendar id")
	}
	campuses, err := h.catalog.Campuses(c.Context(), calendarID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch campuses")
	}
	return response.Success(c, campuses)
}

// ListFaculties handles GET /api/calendars/:calendar_id/faculties
func (h *CatalogHandler) ListFaculties(c *fiber.Ctx) error {
	calendarID, err := parseCalendarID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid calendar id")
	}
	faculties, err := h.catalog.Faculties(c.Context(), calendarID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch faculties")
	}
	return response.Success(c, faculties)
}

// ListTeachingLanguages handles GET /api/calendars/:calendar_id/languages
func (h *CatalogHandler) ListTeachingLanguages(c *fiber.Ctx) error {
	calendarID, err := parseCalendarID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid calendar id")
	}
	languages, err := h.catalog.TeachingLanguages(c.Context(), calendarID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch teaching languages")
	}
	return response.Success(c, languages)
}

// ListCourseNatures handles GET /api/calendars/:calendar_id/natures
func (h *CatalogHandler) ListCourseNatures(c *fiber.Ctx) error {
	calendarID, err := parseCalendarID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid calendar id")
	}
	natures, err := h.catalog.CourseNatures(c.Context(), calendarID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch course natures")
	}
	return response.Success(c, natures)
}

// ListAssessments handles GET /api/calendars/:calendar_id/assessments
func (h *CatalogHandler) ListAssessments(c *fiber.Ctx) error {
	calendarID, err := parseCalendarID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid calendar id")
	}
	assessments, err := h.catalog.Assessments(c.Context(), calendarID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch assessments")
	}
	return response.Success(c, assessments)
}

// ListGrades handles GET /api/calendars/:calendar_id/grades
func (h *CatalogHandler) ListGrades(c *fiber.Ctx) error {
	calendarID, err := parseCalendarID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid calendar id")
	}
	grades, err := h.catalog.Grades(c.Context(), calendarID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch grades")
	}
	return response.Success(c, grades)
}

// ListMajorsByGrade handles GET /api/calendars/:calendar_id/grades/:grade/majors
func (h *CatalogHandler) ListMajorsByGrade(c *fiber.Ctx) error {
	calendarID, err := parseCalendarID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid calendar id")
	}
	grade, err := strconv.Atoi(c.Params("grade"))
	if err != nil {
		return response.BadRequest(c, "Invalid grade")
	}
	majors, err := h.catalog.MajorsByGrade(c.Context(), calendarID, grade)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch majors")
	}
	return response.Success(c, majors)
}

// ListClassesByMajor handles GET /api/calendars/:calendar_id/majors/:major_id/classes
func (h *CatalogHandler) ListClassesByMajor(c *fiber.Ctx) error {
	calendarID, err := parseCalendarID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid calendar id")
	}
	majorID, err := strconv.ParseUint(c.Params("major_id"), 10, 32)
	if err != nil || majorID == 0 {
		return response.BadRequest(c, "Invalid major id")
	}
	classes, err := h.catalog.ClassesByMajor(c.Context(), calendarID, uint(majorID))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch classes")
	}
	return response.Success(c, classes)
}

// ListClassesByCourseCode handles GET /api/calendars/:calendar_id/courses/:course_code/classes
// The course_code segment accepts a comma-separated list of codes.
func (h *CatalogHandler) ListClassesByCourseCode(c *fiber.Ctx) error {
	calendarID, err := parseCalendarID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid calendar id")
	}
	raw := validation.SanitizeString(c.Params("course_code"))
	if raw == "" {
		return response.BadRequest(c, "Invalid course code")
	}
	classes, err := h.catalog.ClassesByCourseCode(c.Context(), calendarID, strings.Split(raw, ",")...)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch classes")
	}
	return response.Success(c, classes)
}

// ListClassesByNature handles GET /api/calendars/:calendar_id/natures/:label_id/classes
func (h *CatalogHandler) ListClassesByNature(c *fiber.Ctx) error {
	calendarID, err := parseCalendarID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid calendar id")
	}
	labelID, err := strconv.Atoi(c.Params("label_id"))
	if err != nil {
		return response.BadRequest(c, "Invalid nature label id")
	}
	classes, err := h.catalog.ClassesByNature(c.Context(), calendarID, labelID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch classes")
	}
	return response.Success(c, classes)
}

// SearchCourses handles GET /api/calendars/:calendar_id/search?q=...&campus=...&faculty=...
func (h *CatalogHandler) SearchCourses(c *fiber.Ctx) error {
	calendarID, err := parseCalendarID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid calendar id")
	}
	filter := catalogservice.SearchFilter{
		Query:   validation.SanitizeString(c.Query("q")),
		Campus:  validation.SanitizeString(c.Query("campus")),
		Faculty: validation.SanitizeString(c.Query("faculty")),
	}
	if filter.Query == "" && filter.Campus == "" && filter.Faculty == "" {
		return response.BadRequest(c, "Missing search query")
	}
	classes, err := h.catalog.SearchCourses(c.Context(), calendarID, filter)
	if err != nil {
		return response.InternalServerError(c, "Search failed")
	}
	return response.Success(c, classes)
}

// ListClassesByTime handles GET /api/calendars/:calendar_id/classes/by-time?day=...&section=...
func (h *CatalogHandler) ListClassesByTime(c *fiber.Ctx) error {
	calendarID, err := parseCalendarID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid calendar id")
	}
	day, err := strconv.Atoi(c.Query("day"))
	if err != nil {
		return response.BadRequest(c, "Invalid day")
	}
	section, err := strconv.Atoi(c.Query("section"))
	if err != nil {
		return response.BadRequest(c, "Invalid section")
	}
	classes, err := h.catalog.CoursesByTime(c.Context(), calendarID, day, section)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch classes")
	}
	return response.Success(c, classes)
}

// LastUpdate handles GET /api/last-update
func (h *CatalogHandler) LastUpdate(c *fiber.Ctx) error {
	updated, err := h.catalog.LatestUpdateTime(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch last update time")
	}
	return response.Success(c, fiber.Map{"lastUpdate": updated})
}

// ResolveAlias handles GET /api/aliases/:system/:alias
func (h *CatalogHandler) ResolveAlias(c *fiber.Ctx) error {
	system := validation.SanitizeString(c.Params("system"))
	alias := validation.SanitizeString(c.Params("alias"))
	if system == "" || alias == "" {
		return response.BadRequest(c, "Invalid alias")
	}
	course, err := h.catalog.ResolveCourseByAlias(c.Context(), system, alias)
	if err != nil {
		return response.InternalServerError(c, "Failed to resolve alias")
	}
	if course == nil {
		return response.NotFound(c, "Alias not found")
	}
	return response.Success(c, course)
}
