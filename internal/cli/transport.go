package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/movaro/console/pkg/client"
)

// listFlags registers the shared filter/pagination flags on a list command.
func listFlags(cmd *cobra.Command, opts *client.ListOptions) {
	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Filter by free-text search")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "Page number (1-based)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Page size")
}

func pageFooter(shown, total int) {
	if shown < total {
		fmt.Printf("\n(%d of %d shown)\n", shown, total)
	}
}

func newBookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Inspect transport bookings",
	}

	var opts client.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			page, err := api.ListBookings(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("list bookings: %w", err)
			}
			if len(page.Items) == 0 {
				fmt.Println("No bookings found.")
				return nil
			}
			fmt.Printf("%-6s  %-22s  %-18s  %-18s  %-10s  %s\n", "ID", "CUSTOMER", "PICKUP", "DROP", "STATUS", "DATE")
			for _, b := range page.Items {
				fmt.Printf("%-6s  %-22s  %-18s  %-18s  %-10s  %s\n",
					b.ID, b.CustomerName, b.Pickup, b.Drop, b.Status, b.Date.Local().Format("2006-01-02 15:04"))
			}
			pageFooter(len(page.Items), page.Total)
			return nil
		},
	}
	listFlags(list, &opts)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			b, err := api.GetBooking(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get booking: %w", err)
			}
			fmt.Printf("ID:       %s\nCustomer: %s (%s)\nRoute:    %s -> %s\nDate:     %s\nStatus:   %s\n",
				b.ID, b.CustomerName, b.Phone, b.Pickup, b.Drop,
				b.Date.Local().Format("2006-01-02 15:04"), b.Status)
			if b.VehicleID != "" {
				fmt.Printf("Vehicle:  %s\n", b.VehicleID)
			}
			if b.DriverID != "" {
				fmt.Printf("Driver:   %s\n", b.DriverID)
			}
			return nil
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func newDriversCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "Inspect transport drivers",
	}

	var opts client.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List drivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			page, err := api.ListDrivers(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("list drivers: %w", err)
			}
			if len(page.Items) == 0 {
				fmt.Println("No drivers found.")
				return nil
			}
			fmt.Printf("%-6s  %-22s  %-16s  %-14s  %s\n", "ID", "NAME", "PHONE", "LICENSE", "STATUS")
			for _, d := range page.Items {
				fmt.Printf("%-6s  %-22s  %-16s  %-14s  %s\n", d.ID, d.Name, d.Phone, d.LicenseNumber, d.Status)
			}
			pageFooter(len(page.Items), page.Total)
			return nil
		},
	}
	listFlags(list, &opts)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			d, err := api.GetDriver(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get driver: %w", err)
			}
			fmt.Printf("ID:      %s\nName:    %s\nPhone:   %s\nLicense: %s\nStatus:  %s\n",
				d.ID, d.Name, d.Phone, d.LicenseNumber, d.Status)
			return nil
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func newVehiclesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "Inspect fleet vehicles",
	}

	var opts client.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			page, err := api.ListVehicles(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("list vehicles: %w", err)
			}
			if len(page.Items) == 0 {
				fmt.Println("No vehicles found.")
				return nil
			}
			fmt.Printf("%-6s  %-14s  %-20s  %-8s  %s\n", "ID", "PLATE", "MODEL", "SEATS", "STATUS")
			for _, v := range page.Items {
				fmt.Printf("%-6s  %-14s  %-20s  %-8d  %s\n", v.ID, v.PlateNumber, v.Model, v.Capacity, v.Status)
			}
			pageFooter(len(page.Items), page.Total)
			return nil
		},
	}
	listFlags(list, &opts)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			v, err := api.GetVehicle(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get vehicle: %w", err)
			}
			fmt.Printf("ID:       %s\nPlate:    %s\nModel:    %s\nCapacity: %d\nStatus:   %s\n",
				v.ID, v.PlateNumber, v.Model, v.Capacity, v.Status)
			return nil
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}
