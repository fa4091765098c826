package cmd

import (
	"reflect"
	"testing"

	"github.com/spf13/cobra"
	"github.com/xolan/punch/internal/interval"
)

func TestClockValue(t *testing.T) {
	tests := []struct {
		input   string
		want    interval.Clock
		wantErr bool
	}{
		{"12h", interval.Clock12, false},
		{"24h", interval.Clock24, false},
		{" 24H ", interval.Clock24, false},
		{"13h", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var v clockValue
			err := v.Set(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if v.clock != tt.want {
				t.Errorf("Set(%q) clock = %q, want %q", tt.input, v.clock, tt.want)
			}
			if v.String() != string(tt.want) {
				t.Errorf("String() = %q, want %q", v.String(), tt.want)
			}
		})
	}

	var v clockValue
	if v.Type() != "clock" {
		t.Errorf("Type() = %q, want clock", v.Type())
	}
}

func TestPolicyValue(t *testing.T) {
	tests := []struct {
		input   string
		want    interval.ErrorPolicy
		wantErr bool
	}{
		{"partial", interval.PolicyPartial, false},
		{"zero", interval.PolicyZero, false},
		{"ignore", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var v policyValue
			err := v.Set(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if v.policy != tt.want {
				t.Errorf("Set(%q) policy = %q, want %q", tt.input, v.policy, tt.want)
			}
		})
	}

	var v policyValue
	if v.Type() != "policy" {
		t.Errorf("Type() = %q, want policy", v.Type())
	}
}

func TestFlagCompletions(t *testing.T) {
	got, directive := clockCompletions(rootCmd, nil, "2")
	if !reflect.DeepEqual(got, []string{"24h"}) {
		t.Errorf("clockCompletions(\"2\") = %v", got)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("Expected NoFileComp directive, got %v", directive)
	}

	got, _ = policyCompletions(rootCmd, nil, "")
	if !reflect.DeepEqual(got, []string{"partial", "zero"}) {
		t.Errorf("policyCompletions(\"\") = %v", got)
	}
}
