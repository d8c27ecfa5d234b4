package llm

import (
	"fmt"
	"strings"
)

// SupportedProviders returns the list of LLM providers that can be set in
// .uconv/config.yaml. The slice is a copy – callers may modify it without
// affecting the package-level data.
func SupportedProviders() []string {
	return append([]string(nil), supportedProviders...)
}

// Keep the strings in lowercase as they are matched case-insensitively
// against the config value.
var supportedProviders = []string{"huggingface"}

// ValidateProvider returns an error when name, matched case-insensitively,
// is not one of SupportedProviders.
func ValidateProvider(name string) error {
	for _, p := range supportedProviders {
		if strings.EqualFold(p, name) {
			return nil
		}
	}
	return fmt.Errorf("unknown provider %q, supported providers: %s", name, strings.Join(supportedProviders, ", "))
}
