package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/aretw0/zerohour/pkg/config"
	"github.com/aretw0/zerohour/pkg/domain"
	"gopkg.in/yaml.v3"
)

// LoadTable decodes a YAML scenario table.
func LoadTable(r io.Reader) (Table, error) {
	var t Table
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode scenario table: %w", err)
	}
	return t, nil
}

// LoadTableFile reads a YAML scenario table from path.
func LoadTableFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario table: %w", err)
	}
	defer f.Close()
	return LoadTable(f)
}

// Validate checks the table covers every configured scenario and only uses known labels.
func (t Table) Validate(cfg config.Config) error {
	var errs []error
	for _, scenario := range cfg.Scenarios {
		def, ok := t[scenario]
		if !ok {
			errs = append(errs, fmt.Errorf("scenario %s: missing from table", scenario))
			continue
		}
		if _, ok := def.States[cfg.DefaultState]; !ok {
			errs = append(errs, fmt.Errorf("scenario %s: missing default state %s", scenario, cfg.DefaultState))
		}
		if len(def.Signals) == 0 {
			errs = append(errs, fmt.Errorf("scenario %s: no signal templates", scenario))
		}
		for state, view := range def.States {
			if !cfg.HasState(state) {
				errs = append(errs, fmt.Errorf("scenario %s: unknown state %s", scenario, state))
			}
			if err := view.validate(cfg); err != nil {
				errs = append(errs, fmt.Errorf("scenario %s, state %s: %w", scenario, state, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (v StateView) validate(cfg config.Config) error {
	var errs []error
	if !slices.Contains(domain.RiskLevels(), v.Summary.RiskLevel) {
		errs = append(errs, fmt.Errorf("unknown risk level %q", v.Summary.RiskLevel))
	}
	if !slices.Contains(domain.ConfidenceLevels(), v.Summary.Confidence) {
		errs = append(errs, fmt.Errorf("unknown confidence %q", v.Summary.Confidence))
	}
	for _, name := range v.Summary.Domains {
		if !slices.Contains(cfg.Domains, name) {
			errs = append(errs, fmt.Errorf("unknown domain %q in summary", name))
		}
	}
	for _, name := range cfg.Domains {
		r, ok := v.Domains.Get(name)
		if !ok {
			continue
		}
		if !slices.Contains(domain.DomainStatuses(), r.Status) {
			errs = append(errs, fmt.Errorf("domain %s: unknown status %q", name, r.Status))
		}
	}
	return errors.Join(errs...)
}
