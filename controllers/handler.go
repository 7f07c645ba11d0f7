// path: controllers/handler.go
package controllers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Kausheya2006/RaiseUrVoice/models"
	"github.com/Kausheya2006/RaiseUrVoice/operator"
)

type ReportRepository interface {
	Create(ctx context.Context, r models.IssueReport) (string, error)
	ListAll(ctx context.Context) ([]models.IssueReport, error)
	Get(ctx context.Context, id string) (models.IssueReport, error)
}

type AuthorityRepository interface {
	Create(ctx context.Context, name, email string, honourScore int) (models.Authority, error)
	ListAll(ctx context.Context) ([]models.Authority, error)
	UpdateHonourScore(ctx context.Context, name string, score int) (models.Authority, error)
	UpdateHonourScoreByEmail(ctx context.Context, email string, score int) (models.Authority, error)
}

type Options struct {
	// Timeout bounds each store round-trip made for a request.
	Timeout           time.Duration
	Location          *time.Location
	LegacyMonthLabels bool
}

// Handler serves the report and authority endpoints.
type Handler struct {
	reports      ReportRepository
	authorities  AuthorityRepository
	verifier     operator.Verifier
	log          *zap.Logger
	timeout      time.Duration
	loc          *time.Location
	legacyLabels bool
}

func New(reports ReportRepository, authorities AuthorityRepository, verifier operator.Verifier, log *zap.Logger, opts Options) *Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = 8 * time.Second
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Handler{
		reports:      reports,
		authorities:  authorities,
		verifier:     verifier,
		log:          log,
		timeout:      opts.Timeout,
		loc:          opts.Location,
		legacyLabels: opts.LegacyMonthLabels,
	}
}

// Verifier exposes the operator check so routes can guard endpoints with it.
func (h *Handler) Verifier() operator.Verifier {
	return h.verifier
}
