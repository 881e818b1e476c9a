package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the operations summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			s, err := api.Dashboard(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch dashboard: %w", err)
			}

			fmt.Printf("Bookings:         %d (%d pending)\n", s.TotalBookings, s.PendingBookings)
			fmt.Printf("Orders:           %d (%d pending)\n", s.TotalOrders, s.PendingOrders)
			fmt.Printf("Products:         %d\n", s.TotalProducts)
			fmt.Printf("Open requests:    %d\n", s.OpenServiceRequests)
			fmt.Printf("Revenue (month):  %.2f\n", s.RevenueMonth)
			return nil
		},
	}
}
