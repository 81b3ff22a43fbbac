package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/fuelfleet/internal/dto"
	"github.com/GlebRadaev/fuelfleet/internal/jobs"
)

func NewReconcileCommand(api *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Rebuild every tank level from its order and dispense history",
		Long: `Rebuild every tank level from its order and dispense history.

Fails with 409 while another reconciliation holds the job lock.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var report jobs.ReconcileReport
			if err := api.post("/api/jobs/reconcile", &report); err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), api.opts.Format, &report)
		},
	}
}

func printReport(w io.Writer, format string, report *jobs.ReconcileReport) error {
	if format == "json" {
		return writeJSON(w, report)
	}
	fmt.Fprintf(w, "tanks: %d  corrected: %d  failed: %d  took: %s\n", report.Tanks, report.Corrected, report.Failed, report.Duration)
	for _, r := range report.Results {
		switch {
		case r.Error != "":
			fmt.Fprintf(w, "  %s  error: %s\n", r.TankID, r.Error)
		case r.Changed():
			fmt.Fprintf(w, "  %s  %s -> %s\n", r.TankID, r.Previous, r.Level)
		}
	}
	return nil
}

func NewResetQuotasCommand(api *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-quotas",
		Short: "Reset every employee quota to its initial value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.QuotaResetResponseDTO
			if err := api.post("/api/jobs/quota-reset", &resp); err != nil {
				return err
			}
			if api.opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "quotas reset: %d\n", resp.Reset)
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
