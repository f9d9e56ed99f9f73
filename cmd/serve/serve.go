// Package serve starts the HTTP API server
package serve

import (
	"crednorm/experian-report/cmd/root"
	"crednorm/experian-report/internal/config"
	"crednorm/experian-report/internal/server"
	"crednorm/experian-report/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the report upload and query API",
	Long:  `Start an HTTP server exposing report upload, listing, search and delete endpoints backed by PostgreSQL.`,
	Run:   serveFunc,
}

func serveFunc(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}

	if cfg.Database.DSN == "" {
		root.Log.Fatal("No database DSN configured, set EXPREP_DATABASE_DSN or DATABASE_URL")
	}

	reports, err := store.Open(cfg.Database.DSN)
	if err != nil {
		root.Log.Fatalf("Error connecting to database: %v", err)
	}
	store.SetLogger(root.Log)

	root.Log.Infof("Starting HTTP server on %s", cfg.Server.Address)
	srv := server.New(cfg, reports, root.Log)
	if err := srv.Run(); err != nil {
		root.Log.Fatalf("Server error: %v", err)
	}
}
