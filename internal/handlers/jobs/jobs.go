package jobs

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/fuelfleet/internal/dto"
	"github.com/GlebRadaev/fuelfleet/internal/handlers/apierr"
	"github.com/GlebRadaev/fuelfleet/internal/jobs"
	"github.com/GlebRadaev/fuelfleet/pkg/utils"
)

//go:generate mockgen -source=jobs.go -destination=mock_jobs.go -package=jobs

type Runner interface {
	Reconcile(ctx context.Context) (*jobs.ReconcileReport, error)
	ResetQuotas(ctx context.Context) (int64, error)
}

type JobHandler struct {
	runner Runner
}

func New(runner Runner) *JobHandler {
	return &JobHandler{runner: runner}
}

// Reconcile godoc
//
//	@Summary		Rebuild tank levels from history
//	@Description	Runs the reconciliation job now. Answers 409 while another run holds the job lock.
//	@Tags			Jobs
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	jobs.ReconcileReport
//	@Failure		409	{object}	utils.Response	"Job already running"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/reconcile [post]
func (h *JobHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	report, err := h.runner.Reconcile(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// ResetQuotas godoc
//
//	@Summary		Reset every employee quota to its initial value
//	@Tags			Jobs
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.QuotaResetResponseDTO
//	@Failure		409	{object}	utils.Response	"Job already running"
//	@Router			/api/jobs/quota-reset [post]
func (h *JobHandler) ResetQuotas(w http.ResponseWriter, r *http.Request) {
	n, err := h.runner.ResetQuotas(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.QuotaResetResponseDTO{Reset: n})
}
