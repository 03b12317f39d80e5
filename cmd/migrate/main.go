package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/murkotick/storefront-service/internal/app/catalog/repo"
	"github.com/murkotick/storefront-service/internal/app/catalog/source"
	"github.com/murkotick/storefront-service/internal/app/catalog/usecases/seed_catalog"
	committer "github.com/murkotick/storefront-service/internal/pkg/committer"
	"github.com/murkotick/storefront-service/internal/pkg/logger"
)

// A small helper for the Spanner catalog tables (typically on the emulator for local dev).
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate schema
//	go run ./cmd/migrate seed [--catalog path/to/catalog.yaml]

var (
	dbPath      string
	ddlPath     string
	catalogFile string
	timeout     time.Duration
	verbose     bool

	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Manage the Spanner catalog schema and data",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if dbPath == "" {
			return fmt.Errorf("SPANNER_DATABASE (or --database) is required, e.g. projects/test-project/instances/emulator-instance/databases/test-db")
		}
		var err error
		log, err = logger.New(logger.Options{Service: "migrate", Env: "cli", Level: "info", Verbose: verbose})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Apply the DDL statements of the migration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		return applySchema(ctx)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert the catalog (embedded or --catalog YAML) into the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		return seed(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "database", os.Getenv("SPANNER_DATABASE"), "Spanner database path")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	schemaCmd.Flags().StringVar(&ddlPath, "ddl", filepath.Join("migrations", "001_initial_schema.sql"), "DDL file")
	seedCmd.Flags().StringVar(&catalogFile, "catalog", "", "catalog YAML file (default: embedded catalog)")

	rootCmd.AddCommand(schemaCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func applySchema(ctx context.Context) error {
	stmts, err := readDDLStatements(ddlPath)
	if err != nil {
		return fmt.Errorf("read DDL: %w", err)
	}
	if len(stmts) == 0 {
		return fmt.Errorf("no DDL statements found in %s", ddlPath)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   dbPath,
		Statements: stmts,
	})
	if err != nil {
		return fmt.Errorf("UpdateDatabaseDdl: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("UpdateDatabaseDdl wait: %w", err)
	}

	log.Info("schema applied", zap.Int("statements", len(stmts)), zap.String("database", dbPath))
	return nil
}

func seed(ctx context.Context) error {
	client, err := spanner.NewClient(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("spanner.NewClient: %w", err)
	}
	defer client.Close()

	it := seed_catalog.NewInteractor(
		source.NewYAMLSource(catalogFile),
		repo.NewProductRepo(),
		repo.NewCategoryRepo(),
		committer.NewAdapter(client, log),
	)
	res, err := it.Execute(ctx)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	log.Info("catalog seeded",
		zap.Int("categories", res.Categories),
		zap.Int("products", res.Products),
		zap.String("database", dbPath))
	return nil
}

// readDDLStatements splits a DDL file on ';', dropping blanks and "--" comment lines.
func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Normalize line endings for Windows-authored files.
	sql := strings.ReplaceAll(string(b), "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	parts := strings.Split(strings.Join(kept, "\n"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out, nil
}
