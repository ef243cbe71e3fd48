package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"bookbinder/internal/config"
	"bookbinder/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
// A missing directory is reported as a warning.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (does not exist yet)", path)}
		}
		return Result{Name: name, Required: true, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Required: true, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Required: true, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSystemDeps evaluates the external binaries a conversion needs.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	return deps.CheckBinaries(deps.EncoderRequirements(cfg.FFmpegBinary(), cfg.FFprobeBinary()))
}
