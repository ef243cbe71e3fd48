package preflight

import (
	"strings"

	"bookbinder/internal/config"
)

// Result reports the outcome of a single preflight check. A failed check
// that is not Required is a warning.
type Result struct {
	Name     string
	Passed   bool
	Required bool
	Detail   string
}

// RunAll executes every preflight check for the given config. Directories
// that do not exist yet fail without being Required, since conversions
// create them on demand.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	for _, status := range CheckSystemDeps(cfg) {
		result := Result{Name: status.Name, Passed: status.Available, Required: true, Detail: status.Command}
		if !status.Available {
			result.Detail = status.Detail
		}
		results = append(results, result)
	}

	results = append(results, CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir))
	if strings.TrimSpace(cfg.Paths.LogDir) != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}
	return results
}

// Failed returns the required results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed && r.Required {
			failed = append(failed, r)
		}
	}
	return failed
}
