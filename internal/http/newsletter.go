package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pairline/pairline/internal/service/intake"
	"github.com/pairline/pairline/internal/validate"
)

type subscribeReq struct {
	Email  string `json:"email"`
	Source string `json:"source"` // consultation | newsletter | download
}

func subscribeHandler(svc *intake.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req subscribeReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"success": false,
				"errors":  []validate.Violation{{Field: "body", Message: "malformed request body"}},
			})
		}

		violations, err := svc.Subscribe(c.Request().Context(), req.Email, req.Source)
		if err != nil {
			c.Logger().Errorf("newsletter insert failed: %v", err)

			return c.JSON(http.StatusInternalServerError, map[string]any{
				"success": false,
				"message": "Failed to save subscription",
			})
		}
		if len(violations) > 0 {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"success": false,
				"errors":  violations,
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"success": true,
			"message": "Subscribed",
		})
	}
}
