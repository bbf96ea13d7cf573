// Command backoffice is a terminal front end for the business-management
// API: customers, projects, documents with versioned content, suppliers,
// and purchase orders.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tidewater-labs/backoffice/internal/config"
	"github.com/tidewater-labs/backoffice/internal/customers"
	"github.com/tidewater-labs/backoffice/internal/documents"
	"github.com/tidewater-labs/backoffice/internal/projects"
	"github.com/tidewater-labs/backoffice/internal/purchases"
	"github.com/tidewater-labs/backoffice/internal/suppliers"
	"github.com/tidewater-labs/backoffice/pkg/logging"
	"github.com/tidewater-labs/backoffice/pkg/rest"
)

type application struct {
	cfg    *config.Config
	logger *slog.Logger

	customers *customers.Client
	documents *documents.Client
	projects  *projects.Client
	suppliers *suppliers.Client
	purchases *purchases.Client
}

var app *application

var rootCmd = &cobra.Command{
	Use:           "backoffice",
	Short:         "Back office client for the business-management API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = newApplication()
		return err
	},
}

func init() {
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(documentsCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(suppliersCmd)
	rootCmd.AddCommand(purchasesCmd)
}

func newApplication() (*application, error) {
	// .env is optional; environment overrides still apply without it.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize configuration: %w", err)
	}

	logger := logging.New(cfg.Logging, os.Stderr)

	api, err := rest.New(rest.Config{
		BaseURL: cfg.API.BaseURL,
		Session: rest.NewSession(cfg.API.Token),
		Timeout: cfg.API.TimeoutDuration(),
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build API client: %w", err)
	}

	return &application{
		cfg:       cfg,
		logger:    logger,
		customers: customers.NewClient(api, logger),
		documents: documents.NewClient(api, logger, cfg.Upload.MaxFileSizeBytes()),
		projects:  projects.NewClient(api, logger),
		suppliers: suppliers.NewClient(api, logger),
		purchases: purchases.NewClient(api, logger),
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
