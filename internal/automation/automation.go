package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/san-kum/retrosh/internal/console"
	"gopkg.in/yaml.v3"
)

var ErrExpectation = errors.New("automation: expected output not found")

// Scenario defines a scripted console session
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one submitted line. Expect, when set, must appear in the
// last transcript entry once the step has settled.
type ScenarioStep struct {
	Command string        `yaml:"command"`
	Pause   time.Duration `yaml:"pause"`
	Expect  string        `yaml:"expect"`
}

type StepResult struct {
	Command string
	Outcome console.Outcome
}

// Settle waits for the console to finish revealing after a step.
type Settle func(ctx context.Context, c *console.Console) error

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// RunScenario submits every step in order, settling the console after each.
// A nil settle flushes reveals instantly.
func RunScenario(ctx context.Context, scenario *Scenario, c *console.Console, settle Settle) ([]StepResult, error) {
	if settle == nil {
		settle = func(_ context.Context, c *console.Console) error {
			c.Flush()
			return nil
		}
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := settle(ctx, c); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		out := c.Submit(step.Command)
		if err := settle(ctx, c); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, StepResult{Command: step.Command, Outcome: out})

		if step.Expect != "" {
			entries := c.Entries()
			if len(entries) == 0 || !strings.Contains(entries[len(entries)-1].Text, step.Expect) {
				return results, fmt.Errorf("step %d (%s): %w: %q", i+1, step.Command, ErrExpectation, step.Expect)
			}
		}

		if step.Pause > 0 {
			select {
			case <-ctx.Done():
				return results, ctx.Err()
			case <-time.After(step.Pause):
			}
		}
	}

	return results, nil
}
