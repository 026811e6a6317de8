package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/michal/smartresume/internal/config"
	"github.com/michal/smartresume/internal/criteria"
	"github.com/michal/smartresume/internal/db"
	"github.com/michal/smartresume/internal/mail"
	"github.com/michal/smartresume/internal/pdf"
	"github.com/michal/smartresume/internal/render"
	"github.com/michal/smartresume/internal/server"
	"github.com/michal/smartresume/internal/template"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the SmartResume HTTP API server",
	Long:  "Starts the REST API serving resume preview, PDF generation and delivery, resume analysis, the contact form, and the admin back office.",
	RunE:  runServe,
}

var servePDFTimeout time.Duration

func init() {
	serveCmd.Flags().DurationVar(&servePDFTimeout, "pdf-timeout", pdf.DefaultTimeout, "Timeout for a single PDF render")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	criteriaStore, err := criteria.LoadStore(cfg.CriteriaFile)
	if err != nil {
		database.Close()
		return err
	}
	catalog, err := criteria.LoadCatalog(cfg.JobRolesFile)
	if err != nil {
		database.Close()
		return err
	}

	mailer, err := mail.New(ctx, cfg.SESRegion, cfg.FromEmail)
	if err != nil {
		database.Close()
		return fmt.Errorf("failed to create mailer: %w", err)
	}

	srv, err := server.New(cfg, server.Deps{
		Store:    database,
		Renderer: render.NewRenderer(template.FileLoader{Dir: cfg.TemplatesDir}),
		Criteria: criteriaStore,
		Catalog:  catalog,
		PDF:      pdf.NewGenerator(servePDFTimeout),
		Mailer:   mailer,
		CloseDB:  database.Close,
	})
	if err != nil {
		database.Close()
		return err
	}

	return srv.Start()
}
