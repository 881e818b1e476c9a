package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/movaro/console/pkg/client"
)

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the construction-supply catalog (admin)",
	}

	cmd.AddCommand(
		newProductsListCmd(),
		newProductsGetCmd(),
		newProductsCreateCmd(),
		newProductsUpdateCmd(),
		newProductsDeleteCmd(),
	)
	return cmd
}

func newProductsListCmd() *cobra.Command {
	var opts client.ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			page, err := api.ListProducts(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("list products: %w", err)
			}
			if len(page.Items) == 0 {
				fmt.Println("No products found.")
				return nil
			}
			fmt.Printf("%-6s  %-28s  %-14s  %10s  %-8s  %s\n", "ID", "NAME", "CATEGORY", "PRICE", "UNIT", "STOCK")
			for _, p := range page.Items {
				fmt.Printf("%-6s  %-28s  %-14s  %10.2f  %-8s  %d\n", p.ID, p.Name, p.Category, p.Price, p.Unit, p.Stock)
			}
			pageFooter(len(page.Items), page.Total)
			return nil
		},
	}
	listFlags(cmd, &opts)
	return cmd
}

func newProductsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			p, err := api.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get product: %w", err)
			}
			fmt.Printf("ID:       %s\nName:     %s\nCategory: %s\nPrice:    %.2f per %s\nStock:    %d\n",
				p.ID, p.Name, p.Category, p.Price, p.Unit, p.Stock)
			if p.Description != "" {
				fmt.Printf("Details:  %s\n", p.Description)
			}
			return nil
		},
	}
}

func productInputFlags(cmd *cobra.Command, in *client.ProductInput) {
	cmd.Flags().StringVar(&in.Name, "name", "", "Product name")
	cmd.Flags().StringVar(&in.Category, "category", "", "Product category")
	cmd.Flags().StringVar(&in.Description, "description", "", "Product description")
	cmd.Flags().Float64Var(&in.Price, "price", 0, "Unit price")
	cmd.Flags().StringVar(&in.Unit, "unit", "", "Sale unit (bag, length, piece, ...)")
	cmd.Flags().IntVar(&in.Stock, "stock", 0, "Units in stock")
	cmd.Flags().StringVar(&in.ImageURL, "image-url", "", "Product image URL")
}

func newProductsCreateCmd() *cobra.Command {
	var in client.ProductInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a product to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			p, err := api.CreateProduct(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("create product: %w", err)
			}
			fmt.Printf("Created %s (%s)\n", p.ID, p.Name)
			return nil
		},
	}
	productInputFlags(cmd, &in)
	return cmd
}

func newProductsUpdateCmd() *cobra.Command {
	var in client.ProductInput
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a product's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			p, err := api.UpdateProduct(cmd.Context(), args[0], in)
			if err != nil {
				return fmt.Errorf("update product: %w", err)
			}
			fmt.Printf("Updated %s (%s)\n", p.ID, p.Name)
			return nil
		},
	}
	productInputFlags(cmd, &in)
	return cmd
}

func newProductsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a product from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			if err := api.DeleteProduct(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete product: %w", err)
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
