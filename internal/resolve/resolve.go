// Package resolve selects one persistent identifier path per device from its
// set of aliases, using an ordered list of preference rules.
package resolve

import (
	"path/filepath"
	"strings"
)

// Rule recognizes a class of stable alias paths.
type Rule struct {
	Name  string
	Match func(path string) bool
}

// MarkerRule matches aliases whose base name starts with the given marker,
// e.g. "wwn-" or "nvme-eui.".
func MarkerRule(marker string) Rule {
	return Rule{
		Name: strings.TrimSuffix(marker, "-"),
		Match: func(path string) bool {
			return strings.HasPrefix(filepath.Base(path), marker)
		},
	}
}

// DefaultRules prefers World Wide Name aliases. WWN paths survive reboots and
// controller remaps; bus-position aliases do not, so they are only used when
// nothing better exists.
var DefaultRules = []Rule{MarkerRule("wwn-")}

// Rules compiles configured markers into a rule list, in configuration order.
// No markers means the default WWN preference.
func Rules(markers []string) []Rule {
	if len(markers) == 0 {
		return DefaultRules
	}
	rules := make([]Rule, 0, len(markers))
	for _, m := range markers {
		rules = append(rules, MarkerRule(m))
	}
	return rules
}

// Pick selects the persistent identifier for a device from its aliases. Rules
// are tried in order and the first rule with a matching alias wins; with no
// rule match the first alias as enumerated is used. ok is false only when the
// alias list is empty, meaning the device has no persistent identifier.
func Pick(aliases []string, rules []Rule) (string, bool) {
	if len(aliases) == 0 {
		return "", false
	}
	for _, rule := range rules {
		for _, alias := range aliases {
			if rule.Match(alias) {
				return alias, true
			}
		}
	}
	return aliases[0], true
}
