package kpifolio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds carries the tunable limits used by the integrity checker
// and the quality scanner. It is plain immutable configuration, passed
// explicitly to the checks rather than kept as process state.
type Thresholds struct {
	// OutlierMultiplier flags a spend entry greater than this multiple of
	// the project's mean spend amount.
	OutlierMultiplier float64 `yaml:"outlier_multiplier"`
	// ForecastAccuracyGap is the relative gap between forecast and actual
	// above which the integrity checker reports an accuracy breach.
	ForecastAccuracyGap float64 `yaml:"forecast_accuracy_gap"`
	// ForecastDeviation is the larger relative gap above which the quality
	// scanner reports a deviation finding.
	ForecastDeviation float64 `yaml:"forecast_deviation"`
}

// DefaultThresholds returns the standard limits: 3x mean for outliers,
// 10% forecast accuracy gap, 50% forecast deviation.
func DefaultThresholds() Thresholds {
	return Thresholds{
		OutlierMultiplier:   3,
		ForecastAccuracyGap: 0.10,
		ForecastDeviation:   0.50,
	}
}

// DecodeThresholds reads thresholds from a YAML stream. Omitted fields
// keep their default value.
func DecodeThresholds(r io.Reader) (Thresholds, error) {
	th := DefaultThresholds()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&th); err != nil {
		if err == io.EOF {
			return th, nil
		}
		return th, fmt.Errorf("decoding thresholds: %w", err)
	}
	return th, nil
}

// LoadThresholds reads thresholds from a YAML file. A missing path
// returns the defaults.
func LoadThresholds(path string) (Thresholds, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultThresholds(), nil
		}
		return DefaultThresholds(), err
	}
	defer f.Close()
	return DecodeThresholds(f)
}
