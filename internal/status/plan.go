package status

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Plan output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the formats PlanEngine accepts.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// PlanEngine is an Engine that writes the plan it receives instead of
// driving a bar.
type PlanEngine struct {
	out    io.Writer
	format string
}

// NewPlanEngine returns a PlanEngine writing format to out.
func NewPlanEngine(out io.Writer, format string) (*PlanEngine, error) {
	if !slices.Contains(Formats, format) {
		return nil, fmt.Errorf("unsupported plan format %q: must be one of: %s",
			format, strings.Join(Formats, ", "))
	}
	return &PlanEngine{out: out, format: format}, nil
}

// Run writes plan in the configured format.
func (e *PlanEngine) Run(_ context.Context, plan Plan) error {
	switch e.format {
	case FormatJSON:
		return e.writeJSON(plan)
	case FormatYAML:
		return e.writeYAML(plan)
	default:
		return e.writeText(plan)
	}
}

func (e *PlanEngine) writeJSON(plan Plan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan to JSON: %w", err)
	}
	if _, err := fmt.Fprintln(e.out, string(data)); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}

func (e *PlanEngine) writeYAML(plan Plan) error {
	normalized := Plan{Standalone: plan.Standalone, Modules: make([]Registration, 0, len(plan.Modules))}
	for _, reg := range plan.Modules {
		opts, _ := normalize(reg.Options).(map[string]any)
		normalized.Modules = append(normalized.Modules, Registration{Module: reg.Module, Options: opts})
	}

	data, err := yaml.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("failed to marshal plan to YAML: %w", err)
	}
	if _, err := e.out.Write(data); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}

func (e *PlanEngine) writeText(plan Plan) error {
	name := color.New(color.FgCyan, color.Bold)
	key := color.New(color.Faint)

	for i, reg := range plan.Modules {
		line := fmt.Sprintf("%2d  %s", i+1, name.Sprint(reg.Module))
		for _, k := range sortedKeys(reg.Options) {
			line += fmt.Sprintf(" %s=%v", key.Sprint(k), reg.Options[k])
		}
		if _, err := fmt.Fprintln(e.out, line); err != nil {
			return fmt.Errorf("failed to write plan: %w", err)
		}
	}
	return nil
}

func sortedKeys(opts Options) []string {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// normalize turns json.Number leaves into int64 or float64 so YAML emits
// them as numbers rather than quoted strings.
func normalize(value any) any {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case Options:
		return normalize(map[string]any(v))
	case map[string]any:
		if v == nil {
			return map[string]any(nil)
		}
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	default:
		return value
	}
}
