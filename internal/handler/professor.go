package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/likhitatulimilli23/HCI/internal/domain"
	"github.com/likhitatulimilli23/HCI/internal/service"
	"github.com/likhitatulimilli23/HCI/internal/utils"
)

func SetupProfessorRoutes(e *echo.Echo, svc *service.Service) {
	e.GET("/api/professors", GetProfessors(svc))
	e.GET("/api/professors/:id", GetProfessorByID(svc))
	e.GET("/api/professors/:id/courses", GetProfessorCourses(svc))
	e.GET("/api/professors/:id/details", GetProfessorDetails(svc))
	e.GET("/api/professors/:id/ratings", GetProfessorRatings(svc))
	e.GET("/api/professors/:id/rating-distribution", GetRatingDistribution(svc))
}

// scopeFromRequest reads the :id path param and the optional courseId
// query param into a Scope.
func scopeFromRequest(c echo.Context) (domain.Scope, error) {
	professorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.Scope{}, errors.New("invalid professor id")
	}

	if q := c.QueryParam("courseId"); q != "" {
		courseID, err := strconv.Atoi(q)
		if err != nil {
			return domain.Scope{}, errors.New("invalid course id")
		}
		return domain.CourseScope(professorID, courseID), nil
	}

	return domain.ProfessorScope(professorID), nil
}

// GetProfessors godoc
// @Summary List professors
// @Description Get all professors with their average rating, optionally filtered by a case-insensitive name search
// @Tags professors
// @Accept json
// @Produce json
// @Param search query string false "Substring to match against professor names"
// @Success 200 {array} domain.ProfessorSummary
// @Failure 500 {object} map[string]string
// @Router /professors [get]
func GetProfessors(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		search := c.QueryParam("search")

		professors, err := svc.ListProfessors(c.Request().Context(), search)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch professors"})
		}

		if professors == nil {
			professors = []domain.ProfessorSummary{}
		}

		return c.JSON(http.StatusOK, professors)
	}
}

// GetProfessorByID godoc
// @Summary Get professor by ID
// @Description Get a single professor record
// @Tags professors
// @Accept json
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} domain.Professor
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /professors/{id} [get]
func GetProfessorByID(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid professor id"})
		}

		professor, err := svc.GetProfessor(c.Request().Context(), id)
		if errors.Is(err, utils.ErrProfessorNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Professor not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch professor"})
		}

		return c.JSON(http.StatusOK, professor)
	}
}

// GetProfessorCourses godoc
// @Summary Get courses for a professor
// @Description Get the complete course list taught by a professor
// @Tags professors
// @Accept json
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {array} domain.Course
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /professors/{id}/courses [get]
func GetProfessorCourses(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid professor id"})
		}

		courses, err := svc.GetCourses(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch courses"})
		}

		if courses == nil {
			courses = []domain.Course{}
		}

		return c.JSON(http.StatusOK, courses)
	}
}

// GetProfessorDetails godoc
// @Summary Get professor profile
// @Description Get professor attributes, course list, scoped rating stats and top tags in one view
// @Tags professors
// @Accept json
// @Produce json
// @Param id path int true "Professor ID"
// @Param courseId query int false "Narrow the stats and tags to one course"
// @Success 200 {object} domain.ProfessorDetail
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /professors/{id}/details [get]
func GetProfessorDetails(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		sc, err := scopeFromRequest(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		detail, err := svc.GetProfessorDetail(c.Request().Context(), sc)
		if errors.Is(err, utils.ErrProfessorNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Professor not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch professor details"})
		}

		return c.JSON(http.StatusOK, detail)
	}
}

// GetProfessorRatings godoc
// @Summary Get ratings for a professor
// @Description Get the unaggregated rating rows in scope, with course names joined in
// @Tags professors
// @Accept json
// @Produce json
// @Param id path int true "Professor ID"
// @Param courseId query int false "Only ratings for this course"
// @Success 200 {array} domain.Rating
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /professors/{id}/ratings [get]
func GetProfessorRatings(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		sc, err := scopeFromRequest(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		ratings, err := svc.GetRatings(c.Request().Context(), sc)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch ratings"})
		}

		if ratings == nil {
			ratings = []domain.Rating{}
		}

		return c.JSON(http.StatusOK, ratings)
	}
}

// GetRatingDistribution godoc
// @Summary Get rating distribution for a professor
// @Description Get the five-bucket rating distribution in scope, keyed awful..awesome
// @Tags professors
// @Accept json
// @Produce json
// @Param id path int true "Professor ID"
// @Param courseId query int false "Only ratings for this course"
// @Success 200 {object} service.Distribution
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /professors/{id}/rating-distribution [get]
func GetRatingDistribution(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		sc, err := scopeFromRequest(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		stats, err := svc.GetStats(c.Request().Context(), sc)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch rating distribution"})
		}

		return c.JSON(http.StatusOK, stats.Distribution)
	}
}
