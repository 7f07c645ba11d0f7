// path: controllers/helpers.go
package controllers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kausheya2006/RaiseUrVoice/models"
	"github.com/Kausheya2006/RaiseUrVoice/store"
)

func badReq(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResp{OK: false, Error: msg})
}

func serverErr(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResp{OK: false, Error: err.Error()})
}

// storeErr maps store failures onto response categories. Backend details
// are logged, not returned.
func (h *Handler) storeErr(c *fiber.Ctx, op string, err error) error {
	status := fiber.StatusInternalServerError
	msg := "storage unavailable"
	switch {
	case errors.Is(err, store.ErrValidation):
		status, msg = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, store.ErrNotFound):
		status, msg = fiber.StatusNotFound, err.Error()
	case errors.Is(err, store.ErrConflict):
		status, msg = fiber.StatusConflict, err.Error()
	default:
		h.log.Error(op+" failed",
			zap.Error(err),
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
		)
	}
	return c.Status(status).JSON(models.ErrorResp{OK: false, Error: msg})
}

func (h *Handler) ctx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), h.timeout)
}

func isJSON(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

// parseAuthorityReq reads name, email and honourScore from a JSON body or
// from form fields.
func parseAuthorityReq(c *fiber.Ctx) (models.AuthorityReq, error) {
	var req models.AuthorityReq
	if isJSON(c) {
		if err := c.BodyParser(&req); err != nil {
			return req, errors.New("invalid JSON")
		}
		return req, nil
	}

	req.Name = c.FormValue("name")
	req.Email = c.FormValue("email")
	if v := strings.TrimSpace(c.FormValue("honourScore")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid honourScore %q", v)
		}
		req.HonourScore = &n
	}
	return req, nil
}
