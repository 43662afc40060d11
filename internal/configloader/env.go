package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/rcview/pkg/config"
)

// envVarPrefix is the prefix for all rcview environment variables.
const envVarPrefix = "RCVIEW_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Supported variables: RCVIEW_SEVERITIES, RCVIEW_UNITS, RCVIEW_COLOR,
// RCVIEW_EXCLUDED_CODES, RCVIEW_SHOW_EXCLUDED.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "SEVERITIES"); v != "" {
		cfg.Severities = v
	}
	if v := os.Getenv(envVarPrefix + "UNITS"); v != "" {
		cfg.Units = v
	}
	if v := os.Getenv(envVarPrefix + "COLOR"); v != "" {
		cfg.Color = config.ColorMode(v)
	}
	if v := os.Getenv(envVarPrefix + "SHOW_EXCLUDED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sSHOW_EXCLUDED: %q", envVarPrefix, v)
		}
		cfg.ShowExcluded = b
	}
	if v := os.Getenv(envVarPrefix + "EXCLUDED_CODES"); v != "" {
		codes, err := parseCodeList(v)
		if err != nil {
			return fmt.Errorf("invalid %sEXCLUDED_CODES: %w", envVarPrefix, err)
		}
		cfg.ExcludedCodes = codes
	}

	return nil
}

// parseCodeList parses a comma-separated list of integer rule codes.
func parseCodeList(value string) ([]int, error) {
	var codes []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		code, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("rule code %q is not an integer", part)
		}
		codes = append(codes, code)
	}
	return codes, nil
}
