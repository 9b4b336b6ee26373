package http

import (
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v4"
	"github.com/pairline/pairline/internal/service/intake"
)

func searchNumbersHandler(svc *intake.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := 10
		if v := c.QueryParam("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
				limit = n
			}
		}

		pattern := strings.TrimSpace(c.QueryParam("pattern"))
		areaCode := strings.TrimSpace(c.QueryParam("area_code"))

		numbers, err := svc.SearchNumbers(c.Request().Context(), pattern, areaCode, limit)
		if err != nil {
			c.Logger().Errorf("number search failed: %v", err)

			return c.JSON(http.StatusInternalServerError, map[string]any{
				"success": false,
				"message": "Failed to search numbers",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"success": true,
			"numbers": numbers,
		})
	}
}
