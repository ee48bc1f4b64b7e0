package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/likhitatulimilli23/HCI/internal/domain"
	"github.com/likhitatulimilli23/HCI/internal/service"
)

func SetupRatingRoutes(e *echo.Echo, svc *service.Service) {
	e.POST("/api/ratings", AddRating(svc))
}

// AddRating godoc
// @Summary Submit a rating
// @Description Append a new rating for a professor; the submission date is assigned by the server
// @Tags ratings
// @Accept json
// @Produce json
// @Param rating body domain.NewRatingRequest true "Rating to submit"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /ratings [post]
func AddRating(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.NewRatingRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		id, err := svc.SubmitRating(c.Request().Context(), &req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save rating"})
		}

		return c.JSON(http.StatusOK, map[string]int{"id": id})
	}
}
