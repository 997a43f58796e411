package app

import (
	"fmt"
	"io"
	"parallel-blur/internal/domain"
	"parallel-blur/pkg/stencil"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Benchmark times every configured strategy against the same source picture.
type Benchmark struct {
	logger  *zap.Logger
	config  *domain.Config
	blurrer domain.Blurrer
	writer  domain.PictureWriter
	out     io.Writer
	// OutputPath maps a strategy to the file its result is saved to.
	OutputPath func(strategy domain.Strategy) string
}

func NewBenchmark(logger *zap.Logger, config *domain.Config, blurrer domain.Blurrer,
	writer domain.PictureWriter, out io.Writer) *Benchmark {
	return &Benchmark{
		logger:  logger,
		config:  config,
		blurrer: blurrer,
		writer:  writer,
		out:     out,
	}
}

// Run blurs a fresh copy of source with every strategy, Repetitions times
// each, and saves the last result of each strategy. It stops at the first
// blur or save failure.
func (b *Benchmark) Run(source *domain.Picture) ([]*domain.BenchmarkResult, error) {
	strategies, err := b.config.GetStrategies()
	if err != nil {
		return nil, err
	}

	var reference *domain.Picture
	if b.config.VerifyOutput {
		reference = source.Clone()
		stencil.Sequential(reference)
	}

	results := make([]*domain.BenchmarkResult, 0, len(strategies))
	for _, strategy := range strategies {
		result, err := b.runStrategy(source, strategy, reference)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (b *Benchmark) runStrategy(source *domain.Picture, strategy domain.Strategy,
	reference *domain.Picture) (*domain.BenchmarkResult, error) {

	reps := max(1, b.config.Repetitions)
	result := &domain.BenchmarkResult{
		Strategy: strategy,
		Jobs:     stencil.JobCount(strategy, source.Width, source.Height),
		Workers:  b.config.Workers,
		Samples:  make([]float64, 0, reps),
	}
	if strategy == domain.StrategySequential {
		result.Workers = 1
	}

	var pic *domain.Picture
	for range reps {
		pic = source.Clone()

		start := time.Now()
		if err := b.blurrer.Blur(pic, strategy); err != nil {
			return nil, fmt.Errorf("blur %v: %w", strategy, err)
		}
		elapsed := time.Since(start)

		result.Samples = append(result.Samples, elapsed.Seconds())
		b.printTiming(strategy, elapsed)
	}

	result.Mean, result.StdDev = stat.MeanStdDev(result.Samples, nil)
	if len(result.Samples) < 2 {
		result.StdDev = 0
	}
	result.Min = floats.Min(result.Samples)
	result.Max = floats.Max(result.Samples)

	if reference != nil {
		result.Verified = true
		result.Matches = pic.Equal(reference)
		if !result.Matches {
			b.logger.Error("Blurred picture differs from sequential blur",
				zap.Stringer("strategy", strategy),
				zap.Int("pixels", pic.DiffCount(reference)))
		}
	}

	if b.OutputPath != nil && b.writer != nil {
		result.OutputPath = b.OutputPath(strategy)
		if err := b.writer.WritePicture(result.OutputPath, pic); err != nil {
			return nil, fmt.Errorf("save %v: %w", strategy, err)
		}
	}

	b.logger.Info("Strategy finished",
		zap.Stringer("strategy", strategy),
		zap.Int("jobs", result.Jobs),
		zap.Int("workers", result.Workers),
		zap.Float64("mean_s", result.Mean),
		zap.Float64("stddev_s", result.StdDev),
		zap.String("output", result.OutputPath))
	return result, nil
}

func (b *Benchmark) printTiming(strategy domain.Strategy, elapsed time.Duration) {
	if b.out == nil {
		return
	}
	ns := elapsed.Nanoseconds()
	fmt.Fprintf(b.out, "%s:\nTime Taken: %d.%09ds\n\n", strategy.Label(), ns/int64(time.Second), ns%int64(time.Second))
}
