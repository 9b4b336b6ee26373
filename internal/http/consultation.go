package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/pairline/pairline/internal/model"
	"github.com/pairline/pairline/internal/service/intake"
	"github.com/pairline/pairline/internal/validate"
)

func submitConsultationHandler(svc *intake.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req model.ConsultationInput
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"success": false,
				"errors":  []validate.Violation{{Field: "body", Message: "malformed request body"}},
			})
		}

		id, violations, err := svc.SubmitConsultation(c.Request().Context(), req)
		if err != nil {
			log.Errorf("consultation insert failed: %v", err)

			return c.JSON(http.StatusInternalServerError, map[string]any{
				"success": false,
				"message": "Failed to save consultation request",
			})
		}
		if len(violations) > 0 {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"success": false,
				"errors":  violations,
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"success":        true,
			"message":        "Consultation request received. We will contact you within one business day.",
			"consultationId": id,
		})
	}
}
