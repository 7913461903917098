package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	var (
		category string
		search   string
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Print the catalog the server would load",
		Long: `Print the product catalog resolved from CATALOG_PATH or the embedded seed.

Examples:
  storefront products
  storefront products --category Iran
  storefront products --search ceramic`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, err := loadCatalog(cmd.Context(), config.Load())
			if err != nil {
				return err
			}
			page := svc.List(catalogapp.ListFilter{Category: category, Search: search})
			return printProducts(cmd.OutOrStdout(), page.Products)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list products in this category")
	cmd.Flags().StringVarP(&search, "search", "s", "", "only list products matching this text")
	return cmd
}

func printProducts(w io.Writer, products []domain.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t$%s\t%s\n",
			p.ID, p.Name, p.Category,
			humanize.FormatFloat("#,###.##", p.Price.InexactFloat64()),
			humanize.Comma(int64(p.Stock)),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d products\n", len(products))
	return err
}
