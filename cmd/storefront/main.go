package main

import (
	"context"
	"fmt"
	"os"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/seed"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	serve := serveCmd()

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Handicraft storefront: catalog, session carts and pages",
		SilenceUsage:  true,
		SilenceErrors: false,
		// running without a subcommand starts the server
		RunE: serve.RunE,
	}

	root.AddCommand(serve, productsCmd())
	return root
}

// loadCatalog reads CATALOG_PATH when set, the embedded seed otherwise.
func loadCatalog(ctx context.Context, cfg config.Config) (*catalogapp.Service, string, error) {
	src := seed.Embedded()
	if cfg.CatalogPath != "" {
		var err error
		src, err = seed.FromFile(cfg.CatalogPath)
		if err != nil {
			return nil, "", err
		}
	}

	svc, err := catalogapp.Load(ctx, src)
	if err != nil {
		return nil, "", fmt.Errorf("catalog %s: %w", src.Origin(), err)
	}
	return svc, src.Origin(), nil
}
