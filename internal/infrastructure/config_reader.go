package infrastructure

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"parallel-blur/internal/domain"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultWorkers matches the fixed pool size the benchmark has always used.
const DefaultWorkers = 16

type YAMLConfigReader struct {
	logger *zap.Logger
	flags  *flag.FlagSet
	args   []string
}

// NewYAMLConfigReader creates a reader that applies overrides parsed from args
// (usually os.Args[1:]) on top of the YAML file.
func NewYAMLConfigReader(logger *zap.Logger, args []string) *YAMLConfigReader {
	return &YAMLConfigReader{
		logger: logger,
		flags:  flag.NewFlagSet("blurbench", flag.ContinueOnError),
		args:   args,
	}
}

func (r *YAMLConfigReader) ReadConfig(path string) (*domain.Config, error) {
	var config domain.Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.logger.Info("Config file not found, using defaults", zap.String("path", path))
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	}

	// Применяем аргументы командной строки
	if err := r.applyCommandLineFlags(&config); err != nil {
		return nil, err
	}

	// Устанавливаем значения по умолчанию
	r.setDefaults(&config)

	return &config, nil
}

// Args returns the positional arguments left after flag parsing.
func (r *YAMLConfigReader) Args() []string {
	return r.flags.Args()
}

func (r *YAMLConfigReader) applyCommandLineFlags(config *domain.Config) error {
	r.flags.String("config", "", "Path to config file")
	workers := r.flags.Int("workers", config.Workers, "Number of pool workers")
	repetitions := r.flags.Int("repetitions", config.Repetitions, "Timed runs per strategy")
	strategies := r.flags.String("strategies", strings.Join(config.Strategies, ","), "Comma separated blur strategies")
	outputDir := r.flags.String("output-dir", config.OutputDir, "Directory for blurred pictures")
	reportFile := r.flags.String("report", config.ReportFile, "Benchmark report file")
	verifyPartition := r.flags.Bool("verify-partition", config.VerifyPartition, "Check job regions before running")
	verifyOutput := r.flags.Bool("verify-output", config.VerifyOutput, "Compare results with the sequential blur")
	transforms := r.flags.String("transforms", strings.Join(config.PreTransforms, ","), "Comma separated transforms applied before blurring")
	logLevel := r.flags.String("log-level", config.LogLevel, "Log level")

	if err := r.flags.Parse(r.args); err != nil {
		return err
	}

	config.Workers = *workers
	config.Repetitions = *repetitions
	config.Strategies = splitList(*strategies)
	config.OutputDir = *outputDir
	config.ReportFile = *reportFile
	config.VerifyPartition = *verifyPartition
	config.VerifyOutput = *verifyOutput
	config.PreTransforms = splitList(*transforms)
	config.LogLevel = *logLevel
	return nil
}

func (r *YAMLConfigReader) setDefaults(config *domain.Config) {
	if config.Workers == 0 {
		config.Workers = DefaultWorkers
	}
	if config.Workers < 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Repetitions <= 0 {
		config.Repetitions = 1
	}
	if len(config.Strategies) == 0 {
		for _, s := range domain.AllStrategies {
			config.Strategies = append(config.Strategies, s.String())
		}
	}
	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if config.OutputPrefix == "" {
		config.OutputPrefix = "blur_"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ConfigPath finds the -config value in args without consuming them.
func ConfigPath(args []string, fallback string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return fallback
}
