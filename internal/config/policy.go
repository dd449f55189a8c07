package config

import (
	"fmt"
	"strings"

	"github.com/example/go-sanskrit-tokenizer/internal/scan"
)

const (
	PolicyUnicode = "unicode"
	PolicyASCII   = "ascii"
)

// ParsePolicy maps the configured scanner policy name to a scan.Policy.
// An empty string selects the default (unicode) policy.
func ParsePolicy(raw string) (scan.Policy, error) {
	policy := strings.ToLower(strings.TrimSpace(raw))
	switch policy {
	case "", PolicyUnicode:
		return scan.PolicyUnicode, nil
	case PolicyASCII:
		return scan.PolicyASCII, nil
	default:
		return 0, fmt.Errorf("invalid scanner policy %q (expected %s|%s)", raw, PolicyUnicode, PolicyASCII)
	}
}
