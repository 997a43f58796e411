package infrastructure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"parallel-blur/internal/domain"
)

type TXTReportWriter struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewTXTReportWriter(logger *zap.Logger) *TXTReportWriter {
	return &TXTReportWriter{logger: logger, now: time.Now}
}

func (w *TXTReportWriter) WriteReport(path string, results []*domain.BenchmarkResult) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	writer := bufio.NewWriter(file)
	if err := w.Format(writer, results); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	w.logger.Info("Benchmark report written", zap.String("file", path))
	return nil
}

// Format writes the report table to out.
func (w *TXTReportWriter) Format(out io.Writer, results []*domain.BenchmarkResult) error {
	var errs error
	write := func(format string, args ...any) {
		_, err := fmt.Fprintf(out, format, args...)
		errs = multierr.Append(errs, err)
	}

	write("=== Parallel Box Blur Results ===\n")
	write("Timestamp: %s\n\n", w.now().Format("2006-01-02 15:04:05"))

	// Записываем заголовок таблицы
	write("%-28s\t%8s\t%7s\t%4s\t%12s\t%12s\t%12s\t%12s\t%s\n",
		"Strategy", "Jobs", "Workers", "Runs", "Mean(s)", "StdDev(s)", "Min(s)", "Max(s)", "Output")

	for _, r := range results {
		match := ""
		if r.Verified {
			match = "  ok"
			if !r.Matches {
				match = "  MISMATCH"
			}
		}
		write("%-28s\t%8d\t%7d\t%4d\t%12.9f\t%12.9f\t%12.9f\t%12.9f\t%s%s\n",
			r.Strategy.Label(), r.Jobs, r.Workers, len(r.Samples),
			r.Mean, r.StdDev, r.Min, r.Max, r.OutputPath, match)
	}
	return errs
}
