package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the cross references inside m and reports every problem
// found, joined into one error.
func (m *Model) Validate() error {
	var errs []error

	if strings.TrimSpace(m.Executable) == "" {
		errs = append(errs, errors.New("executable must not be empty"))
	}
	if m.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", m.Timeout))
	}
	if len(m.Applications) == 0 {
		errs = append(errs, errors.New("suite defines no applications"))
	}

	seen := make(map[string]struct{}, len(m.Applications))
	for _, app := range m.Applications {
		if _, dup := seen[app.Name]; dup {
			errs = append(errs, fmt.Errorf("application %q is defined more than once", app.Name))
		}
		seen[app.Name] = struct{}{}

		if app.Flag == "" {
			errs = append(errs, fmt.Errorf("application %q: flag must not be empty", app.Name))
		}
		if app.Timeout < 0 {
			errs = append(errs, fmt.Errorf("application %q: timeout must be positive, got %s", app.Name, app.Timeout))
		}
		if len(app.Configs) == 0 {
			errs = append(errs, fmt.Errorf("application %q: at least one config is required", app.Name))
		}
		for _, name := range app.Configs {
			if _, ok := m.Configs[name]; !ok {
				errs = append(errs, fmt.Errorf("application %q: unknown config %q", app.Name, name))
			}
		}
		if app.Bitstream != "" && len(m.ReconfigureCommand) == 0 {
			errs = append(errs, fmt.Errorf("application %q: bitstream set but reconfigure_command is empty", app.Name))
		}
	}

	return errors.Join(errs...)
}
