// Package config loads op0 classification tables and field layouts from
// JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/a64fields/insts"
)

// RuleConfig is one entry of the classification table.
type RuleConfig struct {
	// Pattern is a 4-symbol op0 pattern such as "100X".
	Pattern string `json:"pattern"`

	// Group is the group name assigned on a match, e.g. "immediate".
	Group string `json:"group"`
}

// FieldConfig is one field of a layout, covering bits [MSB:LSB].
type FieldConfig struct {
	Name string `json:"name"`
	MSB  int    `json:"msb"`
	LSB  int    `json:"lsb"`
}

// TableConfig holds a classification table and an optional fixed layout.
type TableConfig struct {
	// Rules are tried in order; the first match wins.
	Rules []RuleConfig `json:"rules"`

	// Fallback, if set, appends a catch-all rule assigning this group.
	// Empty means words matching no rule are reported as errors.
	Fallback string `json:"fallback,omitempty"`

	// Layout, if set, splits every word with these fields instead of
	// the layout of its group.
	Layout []FieldConfig `json:"layout,omitempty"`
}

// DefaultTableConfig returns the default op0 table with no fallback and no
// fixed layout.
func DefaultTableConfig() *TableConfig {
	c := &TableConfig{}
	for _, r := range insts.DefaultRules() {
		c.Rules = append(c.Rules, RuleConfig{
			Pattern: r.Pattern.String(),
			Group:   r.Group.String(),
		})
	}
	return c
}

// LoadConfig loads a TableConfig from a JSON file. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (*TableConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table config file: %w", err)
	}

	// Slices present in the file replace the defaults whole; decoding into
	// the default slices would merge elements field by field.
	var file struct {
		Rules    *[]RuleConfig  `json:"rules"`
		Fallback *string        `json:"fallback"`
		Layout   *[]FieldConfig `json:"layout"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse table config: %w", err)
	}

	config := DefaultTableConfig()
	if file.Rules != nil {
		config.Rules = *file.Rules
	}
	if file.Fallback != nil {
		config.Fallback = *file.Fallback
	}
	if file.Layout != nil {
		config.Layout = *file.Layout
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table config %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig writes a TableConfig to a JSON file.
func (c *TableConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize table config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write table config file: %w", err)
	}

	return nil
}

// Validate checks that every pattern, group and field is well formed.
func (c *TableConfig) Validate() error {
	if len(c.Rules) == 0 && c.Fallback == "" {
		return fmt.Errorf("rules must not be empty")
	}

	if _, err := c.InstRules(); err != nil {
		return err
	}

	if _, err := c.InstLayout(); err != nil {
		return err
	}

	return nil
}

// InstRules converts the table to insts rules, appending the fallback
// catch-all when one is configured.
func (c *TableConfig) InstRules() ([]insts.Rule, error) {
	rules := make([]insts.Rule, 0, len(c.Rules)+1)
	for i, rc := range c.Rules {
		if rc.Pattern == "" {
			return nil, fmt.Errorf("rules[%d]: pattern must not be empty", i)
		}
		if rc.Group == "" {
			return nil, fmt.Errorf("rules[%d]: group must not be empty", i)
		}

		p, err := insts.ParsePattern(rc.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rules[%d]: %w", i, err)
		}

		g, err := insts.ParseGroup(rc.Group)
		if err != nil {
			return nil, fmt.Errorf("rules[%d]: %w", i, err)
		}

		rules = append(rules, insts.Rule{Pattern: p, Group: g})
	}

	if c.Fallback != "" {
		g, err := insts.ParseGroup(c.Fallback)
		if err != nil {
			return nil, fmt.Errorf("fallback: %w", err)
		}
		rules = insts.WithFallback(rules, g)
	}

	return rules, nil
}

// InstLayout converts the configured layout. It returns nil when no layout
// is configured.
func (c *TableConfig) InstLayout() (insts.Layout, error) {
	if len(c.Layout) == 0 {
		return nil, nil
	}

	layout := make(insts.Layout, 0, len(c.Layout))
	seen := make(map[string]bool, len(c.Layout))
	for i, fc := range c.Layout {
		if fc.Name == "" {
			return nil, fmt.Errorf("layout[%d]: name must not be empty", i)
		}
		if seen[fc.Name] {
			return nil, fmt.Errorf("layout[%d]: duplicate field %q", i, fc.Name)
		}
		seen[fc.Name] = true

		m, err := insts.BitMask(fc.MSB, fc.LSB)
		if err != nil {
			return nil, fmt.Errorf("layout[%d] %q: %w", i, fc.Name, err)
		}

		layout = append(layout, insts.Field{Name: fc.Name, Mask: m})
	}

	return layout, nil
}

// DecoderOptions returns the insts.Decoder options for this table.
func (c *TableConfig) DecoderOptions() ([]insts.DecoderOption, error) {
	rules, err := c.InstRules()
	if err != nil {
		return nil, err
	}

	layout, err := c.InstLayout()
	if err != nil {
		return nil, err
	}

	opts := []insts.DecoderOption{insts.WithRules(rules)}
	if layout != nil {
		opts = append(opts, insts.WithLayout(layout))
	}

	return opts, nil
}

// Clone returns a deep copy of the TableConfig.
func (c *TableConfig) Clone() *TableConfig {
	return &TableConfig{
		Rules:    append([]RuleConfig(nil), c.Rules...),
		Fallback: c.Fallback,
		Layout:   append([]FieldConfig(nil), c.Layout...),
	}
}
