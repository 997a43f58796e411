package app

import (
	"fmt"
	"parallel-blur/internal/domain"
	"parallel-blur/pkg/stencil"
	"parallel-blur/pkg/threadpool"

	"go.uber.org/zap"
)

var _ domain.WorkerPool = (*threadpool.Pool)(nil)

// BlurOrchestrator runs one blur strategy on a fresh thread pool per call.
type BlurOrchestrator struct {
	logger          *zap.Logger
	workers         int
	verifyPartition bool
	jobCount        func(strategy domain.Strategy, width, height int) int
}

func NewBlurOrchestrator(logger *zap.Logger, config *domain.Config) *BlurOrchestrator {
	return &BlurOrchestrator{
		logger:          logger,
		workers:         config.Workers,
		verifyPartition: config.VerifyPartition,
		jobCount:        stencil.JobCount,
	}
}

// Blur replaces the interior of pic with its 3x3 box blur. Every job reads the
// snapshot taken before the run and writes only its own region of pic, so the
// pool may execute jobs in any order.
func (o *BlurOrchestrator) Blur(pic *domain.Picture, strategy domain.Strategy) error {
	if strategy == domain.StrategySequential {
		stencil.Sequential(pic)
		return nil
	}

	regions, err := stencil.Partition(strategy, pic.Width, pic.Height)
	if err != nil {
		return err
	}
	if o.verifyPartition {
		if err := stencil.VerifyCover(regions, pic.Width, pic.Height); err != nil {
			return fmt.Errorf("%v partition: %w", strategy, err)
		}
	}

	// Снимок исходного изображения, только для чтения
	src := pic.Snapshot()
	defer src.Release()

	pool := threadpool.New(o.logger, o.jobCount(strategy, pic.Width, pic.Height), o.workers)
	defer pool.Destroy()

	for _, region := range regions {
		if err := pool.Submit(regionJob(src, pic, region)); err != nil {
			// Без этой задачи часть пикселей останется необработанной
			return fmt.Errorf("%v: submit %v: %w", strategy, region, err)
		}
	}

	o.logger.Debug("Jobs submitted",
		zap.Stringer("strategy", strategy),
		zap.Int("jobs", len(regions)),
		zap.Int("workers", pool.Workers()))

	if err := pool.RunAndWait(); err != nil {
		return fmt.Errorf("%v: %w", strategy, err)
	}
	return nil
}

func regionJob(src domain.Snapshot, dst *domain.Picture, region domain.Region) threadpool.Job {
	return func() {
		stencil.ApplyRegion(src, dst, region)
	}
}
