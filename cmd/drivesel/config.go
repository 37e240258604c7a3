package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/drivesel/catalog"
)

// runConfig mirrors the persistent flags in file form. Flags win over the
// file so a run.yaml can serve as a base profile.
type runConfig struct {
	Motors        string    `yaml:"motors"`
	Limb          string    `yaml:"limb"`
	Ratios        []float64 `yaml:"ratios"`
	NoReciprocals bool      `yaml:"no_reciprocals"`
}

var errMissingInputs = errors.New("drivesel: motors, limb and ratios are all required (flags or --config)")

// loadInputs resolves the catalog, ratio set and limb from flags and the
// optional config file, and applies the reciprocal expansion.
func loadInputs() (catalog.Motors, []float64, catalog.Limb, error) {
	var (
		motorsPath    = flagMotors
		limbPath      = flagLimb
		ratios        = flagRatios
		noReciprocals = flagNoReciprocals
	)

	if flagConfig != "" {
		raw, err := os.ReadFile(flagConfig)
		if err != nil {
			return nil, nil, catalog.Limb{}, fmt.Errorf("read config: %w", err)
		}
		var cfg runConfig
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, nil, catalog.Limb{}, fmt.Errorf("parse config: %w", err)
		}
		if motorsPath == "" {
			motorsPath = cfg.Motors
		}
		if limbPath == "" {
			limbPath = cfg.Limb
		}
		if len(ratios) == 0 {
			ratios = cfg.Ratios
		}
		if !noReciprocals {
			noReciprocals = cfg.NoReciprocals
		}
	}

	if motorsPath == "" || limbPath == "" || len(ratios) == 0 {
		return nil, nil, catalog.Limb{}, errMissingInputs
	}

	motors, err := catalog.LoadMotors(motorsPath)
	if err != nil {
		return nil, nil, catalog.Limb{}, err
	}
	limb, err := catalog.LoadLimb(limbPath)
	if err != nil {
		return nil, nil, catalog.Limb{}, err
	}
	if !noReciprocals {
		ratios = catalog.WithReciprocals(ratios)
	}

	return motors, ratios, limb, nil
}

// newLogger builds the process logger: development config at debug level
// under --verbose, production JSON otherwise. Both write to stderr so the
// report on stdout stays machine-readable.
func newLogger() (*zap.Logger, error) {
	if flagVerbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
