package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeConfigs(t *testing.T) {
	testCases := []struct {
		name        string
		configs     []*Config
		expected    *Config
		description string
	}{
		{
			name:        "No configs",
			configs:     nil,
			expected:    &Config{},
			description: "Should return an empty config",
		},
		{
			name: "Nil configs are skipped",
			configs: []*Config{
				nil,
				{LogLevel: ptr("info")},
				nil,
			},
			expected:    &Config{LogLevel: ptr("info")},
			description: "Should ignore nil entries",
		},
		{
			name: "Later config overrides attributes it sets",
			configs: []*Config{
				{LogLevel: ptr("warn"), Debug: ptr(true)},
				{LogLevel: ptr("debug")},
			},
			expected:    &Config{LogLevel: ptr("debug"), Debug: ptr(true)},
			description: "Should overwrite only attributes set in the later config",
		},
		{
			name: "Blocks merge attribute by attribute",
			configs: []*Config{
				{Paths: &Paths{Header: ptr("a.h"), Manifest: ptr("a.json")}},
				{Paths: &Paths{Manifest: ptr("b.json"), Ignore: ptr("ignore.txt")}},
			},
			expected: &Config{Paths: &Paths{
				Header:   ptr("a.h"),
				Manifest: ptr("b.json"),
				Ignore:   ptr("ignore.txt"),
			}},
			description: "Should keep header from the first config and take the rest from the second",
		},
		{
			name: "Register sets are replaced",
			configs: []*Config{
				{Registers: &Registers{Sets: []string{"registers", "registers_beta"}}},
				{Registers: &Registers{Sets: []string{"registers"}}},
			},
			expected:    &Config{Registers: &Registers{Sets: []string{"registers"}}},
			description: "Should replace the whole list rather than append",
		},
		{
			name: "Registers block without sets keeps base",
			configs: []*Config{
				{Registers: &Registers{Sets: []string{"registers"}}},
				{Registers: &Registers{}},
			},
			expected:    &Config{Registers: &Registers{Sets: []string{"registers"}}},
			description: "Should leave the list alone when sets is not set",
		},
		{
			name: "Explicit empty sets clears base",
			configs: []*Config{
				{Registers: &Registers{Sets: []string{"registers"}}},
				{Registers: &Registers{Sets: []string{}}},
			},
			expected:    &Config{Registers: &Registers{Sets: []string{}}},
			description: "Should clear the list when sets = []",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := mergeConfigs(tc.configs)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("%s (-want +got):\n%s", tc.description, diff)
			}
		})
	}
}

func TestMergeConfigs_DoesNotAliasInputs(t *testing.T) {
	add := &Config{Errors: &Errors{Prefix: ptr("LJME_")}}
	merged := mergeConfigs([]*Config{add})
	*merged.Errors.Prefix = "CHANGED_"

	if *add.Errors.Prefix != "LJME_" {
		t.Errorf("input config was modified through the merged config: %q", *add.Errors.Prefix)
	}
}
