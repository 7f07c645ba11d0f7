// path: controllers/authorities.go
package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kausheya2006/RaiseUrVoice/models"
)

func (h *Handler) HandleListAuthorities(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	items, err := h.authorities.ListAll(ctx)
	if err != nil {
		return h.storeErr(c, "list authorities", err)
	}
	return c.Status(fiber.StatusOK).JSON(models.AuthorityListResp{OK: true, Items: items})
}

// HandleLogin only checks the operator credential; it issues no session.
// Maintenance endpoints verify the same credential on every request.
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginReq
	if isJSON(c) {
		if err := c.BodyParser(&req); err != nil {
			return badReq(c, "invalid JSON")
		}
	} else {
		req.ID = c.FormValue("id")
		req.Password = c.FormValue("password")
	}

	if !h.verifier.Verify(req.ID, req.Password) {
		h.log.Warn("operator login rejected", zap.String("ip", c.IP()))
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResp{OK: false, Error: "invalid credentials"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

func (h *Handler) HandleAddAuthority(c *fiber.Ctx) error {
	req, err := parseAuthorityReq(c)
	if err != nil {
		return badReq(c, err.Error())
	}
	score := 0
	if req.HonourScore != nil {
		score = *req.HonourScore
	}

	ctx, cancel := h.ctx(c)
	defer cancel()
	a, err := h.authorities.Create(ctx, req.Name, req.Email, score)
	if err != nil {
		return h.storeErr(c, "create authority", err)
	}

	h.log.Info("authority added", zap.String("id", a.ID.Hex()), zap.String("email", a.Email))
	return c.Status(fiber.StatusOK).JSON(models.AuthorityResp{OK: true, Authority: a})
}

// HandleUpdateScore replaces an authority's honour score. The target is
// chosen by email when one is given, otherwise by name.
func (h *Handler) HandleUpdateScore(c *fiber.Ctx) error {
	req, err := parseAuthorityReq(c)
	if err != nil {
		return badReq(c, err.Error())
	}
	if req.HonourScore == nil {
		return badReq(c, "missing honourScore")
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	var a models.Authority
	if email := strings.TrimSpace(req.Email); email != "" {
		a, err = h.authorities.UpdateHonourScoreByEmail(ctx, email, *req.HonourScore)
	} else {
		a, err = h.authorities.UpdateHonourScore(ctx, req.Name, *req.HonourScore)
	}
	if err != nil {
		return h.storeErr(c, "update honour score", err)
	}

	h.log.Info("honour score updated", zap.String("id", a.ID.Hex()), zap.Int("honourScore", a.HonourScore))
	return c.Status(fiber.StatusOK).JSON(models.AuthorityResp{OK: true, Authority: a})
}
