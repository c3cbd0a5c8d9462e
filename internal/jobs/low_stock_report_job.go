package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// LowStockReportJob periodically reports active products whose inventory has
// fallen below the configured threshold. Runs every minute and only observes;
// restocking is an operator decision.
type LowStockReportJob struct {
	db        *gorm.DB
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockReportJob creates a job that reports low inventory levels.
func NewLowStockReportJob(db *gorm.DB, threshold int, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		db:        db,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_report_job"),
	}
}

// Start begins the low stock report job to run every minute.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Low stock report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started (running every minute)",
		"threshold", j.threshold)
	return nil
}

// Stop stops the low stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}

func (j *LowStockReportJob) report(ctx context.Context) error {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT sku, name, inventory_count
		FROM products
		WHERE status = 'active' AND inventory_count < ?
		ORDER BY inventory_count
	`, j.threshold).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var sku, name string
		var inventoryCount int

		if err = rows.Scan(&sku, &name, &inventoryCount); err != nil {
			return err
		}

		j.logger.WarnContext(ctx, "Product inventory below threshold",
			"sku", sku,
			"name", name,
			"inventory_count", inventoryCount,
			"threshold", j.threshold,
		)
	}

	return rows.Err()
}
