package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/sandeepkv93/promo-catalog-service/internal/config"
	"github.com/sandeepkv93/promo-catalog-service/internal/database"
	"github.com/sandeepkv93/promo-catalog-service/internal/observability"
	"github.com/sandeepkv93/promo-catalog-service/internal/tools/common"
	"github.com/sandeepkv93/promo-catalog-service/internal/tools/ui"
)

type options struct {
	envFile string
	timeout time.Duration
	ci      bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "seed", Short: "Catalog demo data tooling"}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "operation timeout")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newApplyCommand(opts), newDryRunCommand(opts))
	return cmd
}

func newApplyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Insert demo promotions with their products",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(opts, "apply", func(ctx context.Context) ([]string, error) {
				db, err := loadDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				defer closeDB(db)
				if err := database.Migrate(db); err != nil {
					return nil, err
				}
				return Apply(ctx, db, database.DemoCatalog)
			})
		},
	}
}

func newDryRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dry-run",
		Short: "List the demo data apply would insert",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(opts, "dry-run", func(context.Context) ([]string, error) {
				return Plan(database.DemoCatalog), nil
			})
		},
	}
}

// Apply seeds catalog into db and describes what changed.
func Apply(ctx context.Context, db *gorm.DB, catalog []database.SeedPromotion) ([]string, error) {
	report, err := database.Seed(ctx, db, catalog)
	if err != nil {
		return nil, err
	}
	details := []string{
		fmt.Sprintf("created_promotions=%d", report.CreatedPromotions),
		fmt.Sprintf("created_products=%d", report.CreatedProducts),
	}
	if report.Noop {
		details = append(details, "demo catalog already present")
	}
	return details, nil
}

func Plan(catalog []database.SeedPromotion) []string {
	details := make([]string, 0, len(catalog))
	for _, p := range catalog {
		details = append(details, fmt.Sprintf("would ensure promotion %q (%s) with %d products", p.Name, p.Publisher, len(p.Products)))
		for _, prod := range p.Products {
			details = append(details, fmt.Sprintf("  product %q valor=%.2f categoria=%s", prod.Name, prod.Price, prod.Category))
		}
	}
	details = append(details, "no mutation executed in dry-run mode")
	return details
}

func execute(opts *options, command string, fn func(context.Context) ([]string, error)) error {
	title := "seed " + command
	start := time.Now()
	details, err := run(opts, title, fn)
	observability.RecordToolCommandRun(context.Background(), "seed", command, common.Outcome(err))
	if opts.ci {
		common.PrintCIResult(err == nil, title, details, time.Since(start), err)
	}
	if err != nil {
		os.Exit(3)
	}
	return nil
}

func run(opts *options, title string, fn func(context.Context) ([]string, error)) ([]string, error) {
	if opts.ci {
		ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
		defer cancel()
		return fn(ctx)
	}
	return ui.Run(title, fn)
}

func loadDB(envFile string) (*gorm.DB, error) {
	if err := common.LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return database.Open(cfg)
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
