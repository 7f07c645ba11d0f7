// path: controllers/reports_list.go
package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kausheya2006/RaiseUrVoice/analytics"
	"github.com/Kausheya2006/RaiseUrVoice/imagecodec"
	"github.com/Kausheya2006/RaiseUrVoice/models"
)

// HandleListReports returns every report, oldest first, images inline.
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	reports, err := h.reports.ListAll(ctx)
	if err != nil {
		return h.storeErr(c, "list reports", err)
	}

	items := make([]models.ReportItem, 0, len(reports))
	for _, r := range reports {
		item := models.NewReportItem(r)
		for i := range item.Images {
			item.Images[i].DataURI = imagecodec.DataURI(item.Images[i].Image)
		}
		items = append(items, item)
	}
	return c.Status(fiber.StatusOK).JSON(models.ReportListResp{OK: true, Items: items})
}

// HandleAnalysis returns monthly filed/solved/pending counts for charting.
func (h *Handler) HandleAnalysis(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	reports, err := h.reports.ListAll(ctx)
	if err != nil {
		return h.storeErr(c, "list reports", err)
	}

	b := analytics.Monthly(reports, h.loc)
	if h.legacyLabels {
		b = b.WithLegacyLabels()
	}
	return c.Status(fiber.StatusOK).JSON(models.AnalysisResp{
		OK:      true,
		Labels:  b.Labels,
		Filed:   b.Filed,
		Solved:  b.Solved,
		Pending: b.Pending,
		Total:   b.Total,
	})
}
