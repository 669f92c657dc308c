package azcli

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// LookupAz locates the az executable. PATH is consulted first; on Windows
// the az.cmd shim and the default Azure CLI install locations are tried as
// fallbacks. When nothing is found the bare name "az" is returned and the
// launch failure surfaces later as a Result with a synthetic exit code.
func LookupAz() string {
	if path, err := exec.LookPath("az"); err == nil {
		return path
	}

	if runtime.GOOS == "windows" {
		if path, err := exec.LookPath("az.cmd"); err == nil {
			return path
		}
		for _, env := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
			base := os.Getenv(env)
			if base == "" {
				continue
			}
			path := filepath.Join(base, "Microsoft SDKs", "Azure", "CLI2", "wbin", "az.cmd")
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return "az"
}
