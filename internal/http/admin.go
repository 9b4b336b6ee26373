package http

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v4"
	"github.com/pairline/pairline/internal/service/intake"
)

// listConsultationsHandler serves the admin panel's consultation queue.
// There is no authentication gate on this route; see the note in server.go.
func listConsultationsHandler(svc *intake.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := 50
		offset := 0
		if v := c.QueryParam("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
				limit = n
			}
		}
		if v := c.QueryParam("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				offset = n
			}
		}

		consultations, err := svc.ListConsultations(c.Request().Context(), c.QueryParam("status"), limit, offset)
		if err != nil {
			c.Logger().Errorf("consultation list failed: %v", err)

			return c.JSON(http.StatusInternalServerError, map[string]any{
				"success": false,
				"message": "Failed to list consultations",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"success":       true,
			"consultations": consultations,
		})
	}
}
