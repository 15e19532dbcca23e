// Package catalog loads caller-authored provisioning plans and compiles
// them into runner steps. The runner itself never sees the payloads; a plan
// file is the trust boundary where the operator declares what each step
// does and which steps must be followed by a reboot.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/jetup/internal/domain/runner"
	"github.com/felixgeelhaar/jetup/internal/ports"
)

// Definition is one step as declared in a plan file.
type Definition struct {
	Description    string   `yaml:"description" toml:"description"`
	Command        []string `yaml:"command" toml:"command"`
	RequiresReboot bool     `yaml:"requires_reboot" toml:"requires_reboot"`
}

// Plan is an ordered list of step definitions.
type Plan struct {
	Steps []Definition `yaml:"steps" toml:"steps"`
}

// Load reads and validates a plan file. The format is chosen by extension:
// .yaml/.yml or .toml.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var plan Plan
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &plan); err != nil {
			return nil, fmt.Errorf("parse plan %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &plan); err != nil {
			return nil, fmt.Errorf("parse plan %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported plan format %q (want .yaml, .yml, or .toml)", ext)
	}

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan %s: %w", path, err)
	}
	return &plan, nil
}

// Validate checks that every definition is executable and unambiguous.
func (p *Plan) Validate() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("plan has no steps")
	}

	seen := make(map[string]int)
	for i, def := range p.Steps {
		pos := i + 1
		if strings.TrimSpace(def.Description) == "" {
			return fmt.Errorf("step %d: missing description", pos)
		}
		if len(def.Command) == 0 {
			return fmt.Errorf("step %d (%s): missing command", pos, def.Description)
		}
		if strings.TrimSpace(def.Command[0]) == "" {
			return fmt.Errorf("step %d (%s): empty command name", pos, def.Description)
		}
		if prev, ok := seen[def.Description]; ok {
			return fmt.Errorf("step %d: description %q duplicates step %d", pos, def.Description, prev)
		}
		seen[def.Description] = pos
	}
	return nil
}

// Compile turns the plan into runner steps whose actions invoke the given
// command runner. Commands run as an argv list, never through a shell, so
// plan content cannot smuggle extra commands via quoting.
func (p *Plan) Compile(cr ports.CommandRunner) []runner.Step {
	steps := make([]runner.Step, 0, len(p.Steps))
	for i, def := range p.Steps {
		steps = append(steps, runner.Step{
			Index:          i + 1,
			Description:    def.Description,
			RequiresReboot: def.RequiresReboot,
			Action:         commandAction(cr, def.Command),
		})
	}
	return steps
}

// CommandError reports a plan command that exited non-zero. The exit code
// is preserved so the process can propagate it as its own exit status.
type CommandError struct {
	Name       string
	ExitCode   int
	Diagnostic string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("%s: exit %d", e.Name, e.ExitCode)
	}
	return fmt.Sprintf("%s: exit %d: %s", e.Name, e.ExitCode, e.Diagnostic)
}

// commandAction builds an action that runs argv and reports stderr as the
// failure diagnostic.
func commandAction(cr ports.CommandRunner, argv []string) runner.Action {
	return func(ctx context.Context) error {
		result, err := cr.Run(ctx, argv[0], argv[1:]...)
		if err != nil {
			return fmt.Errorf("%s: %w", argv[0], err)
		}
		if !result.Success() {
			diag := strings.TrimSpace(result.Stderr)
			if diag == "" {
				diag = strings.TrimSpace(result.Stdout)
			}
			return &CommandError{Name: argv[0], ExitCode: result.ExitCode, Diagnostic: diag}
		}
		return nil
	}
}
