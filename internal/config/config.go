package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bill-forecast/internal/model"
	"bill-forecast/internal/scenario"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the base scenario from a separate YAML (e.g.
	// examples/scenarios/*.yaml). Explicit fields in Scenario override it.
	ScenarioFile string          `yaml:"scenario_file"`
	Scenario     ScenarioConfig  `yaml:"scenario"`
	Alternative  *ScenarioConfig `yaml:"alternative"`

	// Export is the optional CSV output path for the CLI.
	Export string `yaml:"export"`
}

type ScenarioConfig struct {
	Name         string             `yaml:"name"`
	Preset       string             `yaml:"preset"`
	StartYear    int                `yaml:"start_year"`
	HorizonYears int                `yaml:"horizon_years"`
	Bill         []LineItemConfig   `yaml:"bill"`
	Rates        map[string]float64 `yaml:"rates"`
}

type LineItemConfig struct {
	Carrier   string  `yaml:"carrier"`
	AnnualKWh float64 `yaml:"annual_kwh"`
	UnitPrice float64 `yaml:"unit_price"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If scenario_file is set, load it and merge explicit overrides on top.
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Interpret relative paths as relative to the config file
			// directory first, falling back to cwd-relative.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := loadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := c.Scenario.ToRequest(); err != nil {
		return fmt.Errorf("scenario invalid: %w", err)
	}
	if c.Alternative != nil {
		if _, err := c.AlternativeRequest(); err != nil {
			return fmt.Errorf("alternative scenario invalid: %w", err)
		}
	}
	return nil
}

// ToRequest resolves the scenario into a validated ProjectionRequest.
// Rates start from the named preset (catalog defaults when unset) and are
// overlaid with explicit per-carrier entries.
func (s ScenarioConfig) ToRequest() (model.ProjectionRequest, error) {
	rates := model.RateMap{}
	if s.Preset != "" {
		resolved, err := scenario.Resolve(s.Preset)
		if err != nil {
			return model.ProjectionRequest{}, err
		}
		rates = resolved
	}
	for name, pct := range s.Rates {
		c := model.Carrier(name)
		if !c.Valid() {
			return model.ProjectionRequest{}, fmt.Errorf("%w: unknown carrier %q", model.ErrInvalidEscalationRate, name)
		}
		rates[c] = pct
	}

	bill := make(model.Bill, 0, len(s.Bill))
	for _, li := range s.Bill {
		bill = append(bill, model.LineItem{
			Carrier:   model.Carrier(li.Carrier),
			AnnualKWh: li.AnnualKWh,
			UnitPrice: li.UnitPrice,
		})
	}

	req := model.ProjectionRequest{
		StartYear:    s.StartYear,
		HorizonYears: s.HorizonYears,
		Bill:         bill,
		Rates:        rates,
	}
	if err := req.Validate(); err != nil {
		return model.ProjectionRequest{}, err
	}
	return req, nil
}

// AlternativeRequest builds the alternative scenario's request, inheriting
// anything the alternative leaves unset from the base scenario.
func (c *Config) AlternativeRequest() (model.ProjectionRequest, error) {
	if c.Alternative == nil {
		return model.ProjectionRequest{}, errors.New("no alternative scenario configured")
	}
	merged := MergeScenario(c.Scenario, *c.Alternative)
	return merged.ToRequest()
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

func loadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base. The bill
// and the rate map replace wholesale when set; rates merge per carrier.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Preset != "" {
		out.Preset = override.Preset
	}
	if override.StartYear != 0 {
		out.StartYear = override.StartYear
	}
	if override.HorizonYears != 0 {
		out.HorizonYears = override.HorizonYears
	}
	if len(override.Bill) > 0 {
		out.Bill = override.Bill
	}
	if len(override.Rates) > 0 {
		merged := make(map[string]float64, len(base.Rates)+len(override.Rates))
		for k, v := range base.Rates {
			merged[k] = v
		}
		for k, v := range override.Rates {
			merged[k] = v
		}
		out.Rates = merged
	}
	return out
}
