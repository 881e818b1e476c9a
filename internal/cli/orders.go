package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/movaro/console/pkg/client"
)

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage supply orders (admin)",
	}

	var opts client.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			page, err := api.ListOrders(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("list orders: %w", err)
			}
			if len(page.Items) == 0 {
				fmt.Println("No orders found.")
				return nil
			}
			fmt.Printf("%-6s  %-22s  %-6s  %10s  %-12s  %s\n", "ID", "CUSTOMER", "ITEMS", "TOTAL", "STATUS", "UPDATED")
			for _, o := range page.Items {
				fmt.Printf("%-6s  %-22s  %-6d  %10.2f  %-12s  %s\n",
					o.ID, o.CustomerName, len(o.Items), o.Total, o.Status, o.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			pageFooter(len(page.Items), page.Total)
			return nil
		},
	}
	listFlags(list, &opts)

	setStatus := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move an order to a new status",
		Long:  "Move an order along its lifecycle: pending, processing, shipped, delivered or cancelled. Invalid jumps are rejected before the update is sent.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			o, err := api.UpdateOrderStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("update order status: %w", err)
			}
			fmt.Printf("Order %s is now %s\n", o.ID, o.Status)
			return nil
		},
	}

	cmd.AddCommand(list, setStatus)
	return cmd
}
