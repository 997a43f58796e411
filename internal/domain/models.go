package domain

import (
	"errors"
	"fmt"
	"strings"
)

// MaxIntensity is the largest value a single colour channel can hold.
const MaxIntensity = 255

var (
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
	ErrInvalidSize       = errors.New("invalid picture size")
	ErrUnknownStrategy   = errors.New("unknown blur strategy")
	ErrRegionOverlap     = errors.New("regions overlap")
	ErrRegionGap         = errors.New("regions leave interior pixels uncovered")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Config представляет конфигурацию приложения
type Config struct {
	Workers         int      `yaml:"workers"`
	Repetitions     int      `yaml:"repetitions"`
	Strategies      []string `yaml:"strategies"`
	OutputDir       string   `yaml:"output_dir"`
	OutputPrefix    string   `yaml:"output_prefix"`
	ReportFile      string   `yaml:"report_file"`
	VerifyPartition bool     `yaml:"verify_partition"`
	VerifyOutput    bool     `yaml:"verify_output"`
	PreTransforms   []string `yaml:"pre_transforms"`
	LogLevel        string   `yaml:"log_level"`
	LogFile         string   `yaml:"log_file"`
}

// GetStrategies parses the configured strategy names in order.
func (c *Config) GetStrategies() ([]Strategy, error) {
	result := make([]Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		s, err := ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// Pixel представляет один пиксель изображения
type Pixel struct {
	R, G, B uint8
}

// Region is a half-open rectangle [MinX, MaxX) x [MinY, MaxY) of destination
// coordinates assigned to a single job.
type Region struct {
	MinX, MinY int
	MaxX, MaxY int
}

func (r Region) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Area returns the number of pixels in r.
func (r Region) Area() int {
	if r.Empty() {
		return 0
	}
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

func (r Region) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.MinX, r.MaxX, r.MinY, r.MaxY)
}

// Strategy представляет способ разбиения изображения на задачи
type Strategy int

const (
	StrategySequential Strategy = iota
	StrategyPixel
	StrategyRow
	StrategyColumn
	StrategyHalfVertical
	StrategyHalfHorizontal
	StrategyQuarter
)

// AllStrategies lists every strategy in benchmark order.
var AllStrategies = []Strategy{
	StrategySequential,
	StrategyPixel,
	StrategyRow,
	StrategyColumn,
	StrategyHalfVertical,
	StrategyHalfHorizontal,
	StrategyQuarter,
}

var strategyNames = map[Strategy]string{
	StrategySequential:     "sequential",
	StrategyPixel:          "pixel",
	StrategyRow:            "row",
	StrategyColumn:         "column",
	StrategyHalfVertical:   "half_vertical",
	StrategyHalfHorizontal: "half_horizontal",
	StrategyQuarter:        "quarter",
}

var strategyLabels = map[Strategy]string{
	StrategySequential:     "Sequential",
	StrategyPixel:          "Pixel by pixel",
	StrategyRow:            "Row by row",
	StrategyColumn:         "Column by column",
	StrategyHalfVertical:   "Half segments (vertical)",
	StrategyHalfHorizontal: "Half segments (horizontal)",
	StrategyQuarter:        "Quarter segments",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// Label is the human readable name used in benchmark output.
func (s Strategy) Label() string {
	if label, ok := strategyLabels[s]; ok {
		return label
	}
	return s.String()
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sequential":
		return StrategySequential, nil
	case "pixel":
		return StrategyPixel, nil
	case "row":
		return StrategyRow, nil
	case "column":
		return StrategyColumn, nil
	case "half_vertical", "half":
		return StrategyHalfVertical, nil
	case "half_horizontal":
		return StrategyHalfHorizontal, nil
	case "quarter":
		return StrategyQuarter, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// BenchmarkResult holds the timings collected for one strategy.
type BenchmarkResult struct {
	Strategy   Strategy
	Jobs       int
	Workers    int
	Samples    []float64 // seconds
	Mean       float64
	StdDev     float64
	Min, Max   float64
	OutputPath string
	Matches    bool // output identical to the sequential reference
	Verified   bool
}
