// Package config loads the YAML run plan describing which key sequences to
// generate.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/mweagle/keygen/generator"
	"github.com/mweagle/keygen/keyio"
	"gopkg.in/yaml.v3"
)

const (
	KeyTypeInt32  = "int32"
	KeyTypeInt64  = "int64"
	KeyTypeUint32 = "uint32"
	KeyTypeUint64 = "uint64"
)

// KeyTypes lists the key element types a plan may ask for.
var KeyTypes = []string{KeyTypeInt32, KeyTypeInt64, KeyTypeUint32, KeyTypeUint64}

var DefaultPercentiles = []float64{50, 90, 99}

// Plan is a set of generation runs sharing key type, seed and output settings.
type Plan struct {
	KeyType      string    `yaml:"key_type"`
	Seed         uint64    `yaml:"seed"`
	Multiplicity int       `yaml:"multiplicity"`
	Workers      int       `yaml:"workers"`
	Percentiles  []float64 `yaml:"percentiles"`
	OutputDir    string    `yaml:"output_dir"`
	Format       string    `yaml:"format"`
	Histogram    bool      `yaml:"histogram"`
	Runs         []Run     `yaml:"runs"`
}

// Run is a single key sequence. When MatchingRate is set the sequence is
// turned into a probe set after generation.
type Run struct {
	Name          string   `yaml:"name"`
	Distribution  string   `yaml:"distribution"`
	Count         int      `yaml:"count"`
	MatchingRate  *float64 `yaml:"matching_rate"`
	KeyFile       string   `yaml:"key_file"`
	HistogramFile string   `yaml:"histogram_file"`
}

// Load loads a plan from a YAML file
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	plan, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

func Parse(data []byte) (*Plan, error) {
	var plan Plan
	err := yaml.Unmarshal(data, &plan)
	if err != nil {
		return nil, err
	}
	plan.ApplyDefaults()
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// ApplyDefaults fills every unset field with its default.
func (p *Plan) ApplyDefaults() {
	if p.KeyType == "" {
		p.KeyType = KeyTypeInt64
	}
	if p.Multiplicity == 0 {
		p.Multiplicity = generator.DefaultMultiplicity
	}
	if p.Workers <= 0 {
		p.Workers = runtime.NumCPU()
	}
	if p.Percentiles == nil {
		p.Percentiles = DefaultPercentiles
	}
	if p.Format == "" {
		p.Format = keyio.FormatBinary.String()
	}
	for i := range p.Runs {
		if p.Runs[i].Name == "" {
			p.Runs[i].Name = fmt.Sprintf("%s-%d", p.Runs[i].Distribution, i)
		}
	}
}

func (p *Plan) Validate() error {
	var errs []error
	if !isKeyType(p.KeyType) {
		errs = append(errs, fmt.Errorf("unsupported key_type: %q. Supported types: %v", p.KeyType, KeyTypes))
	}
	if p.Multiplicity < 1 {
		errs = append(errs, fmt.Errorf("invalid multiplicity: %d", p.Multiplicity))
	}
	if _, formatErr := keyio.ParseFormat(p.Format); formatErr != nil {
		errs = append(errs, formatErr)
	}
	for _, eachPercentile := range p.Percentiles {
		if eachPercentile < 0 || eachPercentile > 100 {
			errs = append(errs, fmt.Errorf("invalid percentile: %.2f", eachPercentile))
		}
	}
	if len(p.Runs) == 0 {
		errs = append(errs, errors.New("plan has no runs"))
	}
	names := make(map[string]bool, len(p.Runs))
	for _, eachRun := range p.Runs {
		if runErr := eachRun.validate(); runErr != nil {
			errs = append(errs, fmt.Errorf("run %s: %w", eachRun.Name, runErr))
		}
		if names[eachRun.Name] {
			errs = append(errs, fmt.Errorf("run %s: duplicate name", eachRun.Name))
		}
		names[eachRun.Name] = true
	}
	return errors.Join(errs...)
}

func (r *Run) validate() error {
	if _, distErr := generator.ParseDistribution(r.Distribution); distErr != nil {
		return distErr
	}
	if r.Count < 0 {
		return fmt.Errorf("invalid count: %d", r.Count)
	}
	if r.MatchingRate != nil && (*r.MatchingRate < 0 || *r.MatchingRate > 1) {
		return fmt.Errorf("matching_rate must be in [0, 1]: %.3f", *r.MatchingRate)
	}
	return nil
}

func isKeyType(keyType string) bool {
	for _, eachType := range KeyTypes {
		if eachType == keyType {
			return true
		}
	}
	return false
}
