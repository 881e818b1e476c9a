package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/movaro/console/pkg/client"
)

func newRequestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Manage garage service requests (admin)",
	}

	var opts client.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List service requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			page, err := api.ListServiceRequests(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("list service requests: %w", err)
			}
			if len(page.Items) == 0 {
				fmt.Println("No service requests found.")
				return nil
			}
			fmt.Printf("%-6s  %-22s  %-20s  %-28s  %s\n", "ID", "CUSTOMER", "VEHICLE", "ISSUE", "STATUS")
			for _, r := range page.Items {
				vehicle := fmt.Sprintf("%s %s", r.VehicleMake, r.VehicleModel)
				fmt.Printf("%-6s  %-22s  %-20s  %-28s  %s\n", r.ID, r.CustomerName, vehicle, r.Issue, r.Status)
			}
			pageFooter(len(page.Items), page.Total)
			return nil
		},
	}
	listFlags(list, &opts)

	var notes string
	setStatus := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a service request to a new status",
		Long:  "Move a service request along its lifecycle: received, in_progress, completed or rejected. Invalid jumps are rejected before the update is sent.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			r, err := api.UpdateServiceRequestStatus(cmd.Context(), args[0], args[1], notes)
			if err != nil {
				return fmt.Errorf("update service request status: %w", err)
			}
			fmt.Printf("Request %s is now %s\n", r.ID, r.Status)
			if r.Notes != "" {
				fmt.Printf("Notes: %s\n", r.Notes)
			}
			return nil
		},
	}
	setStatus.Flags().StringVar(&notes, "notes", "", "Operator note to attach to the status change")

	cmd.AddCommand(list, setStatus)
	return cmd
}
