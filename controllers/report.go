// path: controllers/report.go
package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kausheya2006/RaiseUrVoice/imagecodec"
	"github.com/Kausheya2006/RaiseUrVoice/models"
)

// HandlePostReport accepts a multipart (or urlencoded) issue submission with
// up to MaxImagesPerReport files under the "images" key.
func (h *Handler) HandlePostReport(c *fiber.Ctx) error {
	r := models.IssueReport{
		Name:   c.FormValue("name"),
		Mobile: c.FormValue("mobile"),
		Aadhar: c.FormValue("aadhar"),
		Issue:  c.FormValue("issue"),
		Area:   c.FormValue("area"),
	}

	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return badReq(c, "invalid multipart form")
		}
		files := form.File["images"]
		if len(files) > models.MaxImagesPerReport {
			return badReq(c, fmt.Sprintf("at most %d images per report, got %d", models.MaxImagesPerReport, len(files)))
		}
		for _, fh := range files {
			img, err := imagecodec.FromFileHeader(fh)
			if err != nil {
				return serverErr(c, err)
			}
			r.Images = append(r.Images, img)
		}
	}

	ctx, cancel := h.ctx(c)
	defer cancel()
	id, err := h.reports.Create(ctx, r)
	if err != nil {
		return h.storeErr(c, "create report", err)
	}

	h.log.Info("report created", zap.String("id", id), zap.Int("images", len(r.Images)))
	return c.Status(fiber.StatusOK).JSON(models.CreateReportResp{OK: true, ID: id})
}

// HandleReportImage streams one stored image back as its original bytes.
func (h *Handler) HandleReportImage(c *fiber.Ctx) error {
	idx, err := strconv.Atoi(c.Params("index"))
	if err != nil || idx < 0 {
		return badReq(c, "invalid image index")
	}

	ctx, cancel := h.ctx(c)
	defer cancel()
	r, err := h.reports.Get(ctx, c.Params("id"))
	if err != nil {
		return h.storeErr(c, "get report", err)
	}
	if idx >= len(r.Images) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResp{OK: false, Error: "image not found"})
	}

	img := r.Images[idx]
	raw, err := imagecodec.Bytes(img)
	if err != nil {
		return serverErr(c, err)
	}
	ct := img.ContentType
	if ct == "" {
		ct = fiber.MIMEOctetStream
	}
	c.Set(fiber.HeaderContentType, ct)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", img.Filename))
	return c.Status(fiber.StatusOK).Send(raw)
}
