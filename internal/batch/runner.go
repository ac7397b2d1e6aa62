package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/smart-summarizer/internal/processor"
	"github.com/nguyentantai21042004/smart-summarizer/internal/sheet"
)

func (r *implRunner) Run(ctx context.Context) (int, error) {
	startTime := time.Now()

	rows, err := r.sheet.ReadAllRows(ctx)
	if err != nil {
		return 0, fmt.Errorf("read rows: %w", err)
	}

	// rows[0] is sheet row 1, so data starts at index FirstDataRow-1.
	first := sheet.FirstDataRow - 1
	total := max(len(rows)-first, 0)
	r.logger.Info(ctx, "========================================")
	r.logger.Info(ctx, "Total rows: %d", total)
	r.logger.Info(ctx, "========================================")

	processed := 0
	counts := make(map[processor.State]int)

	for i := first; i < len(rows); i++ {
		number := i + 1
		if err := ctx.Err(); err != nil {
			r.logger.Warn(ctx, "Run cancelled before row %d", number)
			return processed, err
		}

		row := sheet.ParseRow(number, rows[i])
		out, err := r.processor.Process(ctx, row)
		if err != nil {
			return processed, fmt.Errorf("process row %d: %w", row.Number, err)
		}

		counts[out.State]++
		if out.State == processor.StateUpdated {
			processed++
		}
	}

	r.logger.Info(ctx, "========================================")
	r.logger.Info(ctx, "Summary: %d row(s) processed and marked as Done", processed)
	r.logger.Info(ctx, "Skipped done: %d, skipped missing fields: %d, unchanged: %d",
		counts[processor.StateSkippedDone], counts[processor.StateSkippedMissingFields], counts[processor.StateUnchanged])
	r.logger.Info(ctx, "Run time: %s", time.Since(startTime).Round(time.Millisecond))
	r.logger.Info(ctx, "========================================")

	return processed, nil
}
