// rgsweep – bulk resource group deletion for Azure.
// Collects every resource group across all visible subscriptions, filters
// them through exclusion patterns, confirms with the operator, and fans the
// deletions out over a bounded worker pool.
package main

import (
	"os"
	"time"

	"github.com/kjourdan1/rgsweep/cmd"
	"github.com/kjourdan1/rgsweep/internal/audit"
	"github.com/kjourdan1/rgsweep/internal/exitcode"
	"github.com/kjourdan1/rgsweep/internal/output"
	_ "github.com/kjourdan1/rgsweep/schemas"
)

func main() {
	start := time.Now()
	if err := cmd.Execute(); err != nil {
		code := exitcode.Of(err)
		event := audit.BuildEvent(os.Args, "failure", code, time.Since(start))
		_ = audit.Write(event)
		output.PrintError(err)
		os.Exit(code)
	}

	event := audit.BuildEvent(os.Args, "success", exitcode.OK, time.Since(start))
	_ = audit.Write(event)
}
