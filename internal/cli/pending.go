package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/fuelfleet/internal/dto"
)

type PendingOptions struct {
	Count bool
}

func NewPendingCommand(api *apiClient) *cobra.Command {
	opts := &PendingOptions{}

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List dispenses waiting for approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if opts.Count {
				var resp dto.CountResponseDTO
				if err := api.get("/api/transactions/pending/count", &resp); err != nil {
					return err
				}
				if api.opts.Format == "json" {
					return writeJSON(out, resp)
				}
				fmt.Fprintln(out, resp.Count)
				return nil
			}

			var trs []dto.PendingTransactionResponseDTO
			if err := api.get("/api/transactions/pending", &trs); err != nil {
				return err
			}
			if api.opts.Format == "json" {
				return writeJSON(out, trs)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTANK\tEMPLOYEE\tCAR\tFUEL\tLITRES\tCREATED")
			for _, tr := range trs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", tr.ID, tr.Tank.Name, tr.Employee.Name, tr.Car.Plate,
					tr.Car.Fuel.Name, tr.Amount, tr.CreatedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.Count, "count", false, "print only the number of pending dispenses")

	return cmd
}
