package main

import (
	"fmt"
	"os"
	"parallel-blur/internal/app"
	"parallel-blur/internal/domain"
	"parallel-blur/internal/infrastructure"
	"parallel-blur/pkg/transform"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	args := os.Args[1:]
	configPath := infrastructure.ConfigPath(args, "config.yaml")

	// Инициализация логгера
	logger := initLogger("info")
	defer logger.Sync()

	// Чтение конфигурации
	configReader := infrastructure.NewYAMLConfigReader(logger, args)
	config, err := configReader.ReadConfig(configPath)
	if err != nil {
		logger.Fatal("Failed to read config", zap.Error(err))
	}

	if len(configReader.Args()) != 1 {
		fmt.Fprintln(os.Stderr, "usage: blurbench [-config file] [flags] <image-path>")
		os.Exit(2)
	}
	inputPath := configReader.Args()[0]

	// Обновляем уровень логирования
	if config.LogFile != "" {
		logger = initLogger(config.LogLevel, config.LogFile)
	} else {
		logger = initLogger(config.LogLevel)
	}

	// Инициализация компонентов
	reader := infrastructure.NewImageFileReader(logger)
	writer := infrastructure.NewImageFileWriter(logger)
	reportWriter := infrastructure.NewTXTReportWriter(logger)
	orchestrator := app.NewBlurOrchestrator(logger, config)

	// Чтение входного изображения
	pic, err := reader.ReadPicture(inputPath)
	if err != nil {
		logger.Fatal("Failed to load picture", zap.String("path", inputPath), zap.Error(err))
	}

	for _, name := range config.PreTransforms {
		if pic, err = transform.Apply(pic, name); err != nil {
			logger.Fatal("Failed to apply transform", zap.String("transform", name), zap.Error(err))
		}
	}

	logger.Info("Starting blur benchmark",
		zap.String("input", inputPath),
		zap.Int("width", pic.Width),
		zap.Int("height", pic.Height),
		zap.Int("workers", config.Workers),
		zap.Strings("strategies", config.Strategies))

	bench := app.NewBenchmark(logger, config, orchestrator, writer, os.Stdout)
	bench.OutputPath = func(strategy domain.Strategy) string {
		return infrastructure.OutputPath(config, inputPath, strategy)
	}

	results, err := bench.Run(pic)
	if err != nil {
		logger.Fatal("Benchmark failed", zap.Error(err))
	}

	// Запись отчёта
	if config.ReportFile != "" {
		if err := reportWriter.WriteReport(config.ReportFile, results); err != nil {
			logger.Fatal("Failed to write report", zap.String("file", config.ReportFile), zap.Error(err))
		}
	}

	for _, result := range results {
		if result.Verified && !result.Matches {
			logger.Fatal("Strategy output differs from sequential blur",
				zap.Stringer("strategy", result.Strategy))
		}
	}

	logger.Info("Blur benchmark completed successfully")
}

// initLogger initializes the logger with the specified level and log file name.
func initLogger(level string, logfileName ...string) *zap.Logger {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	outputPath := []string{"stderr"}
	if len(logfileName) > 0 {
		outputPath = logfileName
	}

	config.OutputPaths = outputPath
	config.ErrorOutputPaths = outputPath
	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.DisableCaller = false

	logger, err := config.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
