package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xolan/punch/internal/interval"
)

// clockValue is a --clock flag accepting 12h or 24h. Unset means the
// configured clock.
type clockValue struct {
	clock interval.Clock
}

var _ pflag.Value = (*clockValue)(nil)

func (v *clockValue) String() string { return string(v.clock) }

func (v *clockValue) Set(s string) error {
	c, err := interval.ParseClock(s)
	if err != nil {
		return err
	}
	v.clock = c
	return nil
}

func (v *clockValue) Type() string { return "clock" }

// policyValue is a --policy flag accepting partial or zero.
type policyValue struct {
	policy interval.ErrorPolicy
}

var _ pflag.Value = (*policyValue)(nil)

func (v *policyValue) String() string { return string(v.policy) }

func (v *policyValue) Set(s string) error {
	p, err := interval.ParsePolicy(s)
	if err != nil {
		return err
	}
	v.policy = p
	return nil
}

func (v *policyValue) Type() string { return "policy" }

func clockCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(interval.ValidClocks))
	for i, c := range interval.ValidClocks {
		names[i] = string(c)
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func policyCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(interval.ValidPolicies))
	for i, p := range interval.ValidPolicies {
		names[i] = string(p)
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(values []string, prefix string) []string {
	var out []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}
