// Package confirm implements the consent gate between the deletion preview
// and the destructive fan-out.
package confirm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/kjourdan1/rgsweep/internal/classify"
	"github.com/kjourdan1/rgsweep/internal/output"
	"github.com/kjourdan1/rgsweep/internal/report"
)

// ErrCancelled is returned when the user aborts the prompt with Ctrl+C.
var ErrCancelled = terminal.InterruptErr

// Decision is the terminal state of the gate.
type Decision int

const (
	// Rejected means no deletion may proceed.
	Rejected Decision = iota
	// Confirmed means the operator explicitly approved the deletion.
	Confirmed
	// AutoConfirmed means dry-run mode bypassed the prompt.
	AutoConfirmed
)

// Prompter abstracts the interactive yes/no question for testing.
type Prompter interface {
	Ask(label string) (string, error)
}

// SurveyPrompter implements Prompter with survey/v2.
type SurveyPrompter struct{}

// NewSurveyPrompter returns a survey-based prompter.
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

// Ask poses a free-form question and returns the trimmed answer.
func (p *SurveyPrompter) Ask(label string) (string, error) {
	var value string
	err := survey.AskOne(&survey.Input{Message: label}, &value)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// Gate renders the grouped preview and collects operator consent.
type Gate struct {
	prompter Prompter
	dryRun   bool
	out      io.Writer
}

// NewGate creates a Gate. A nil prompter defaults to survey, a nil writer
// to stdout.
func NewGate(prompter Prompter, dryRun bool, out io.Writer) *Gate {
	if prompter == nil {
		prompter = NewSurveyPrompter()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Gate{prompter: prompter, dryRun: dryRun, out: out}
}

// Decide resolves the gate for the given partition.
//
// Dry-run auto-confirms without prompting. An empty delete set rejects
// immediately. Otherwise the preview and an irreversibility warning are
// shown and the operator is asked until they answer yes or no.
func (g *Gate) Decide(p classify.Partition) (Decision, error) {
	if g.dryRun {
		output.Info("[dry-run] simulating deletion, nothing will be deleted")
		return AutoConfirmed, nil
	}

	if len(p.ToDelete) == 0 {
		output.Warn("no resource groups to delete")
		return Rejected, nil
	}

	report.Preview(g.out, p)

	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, output.StyleWarning.Render("⚠  WARNING: this operation is IRREVERSIBLE"))
	fmt.Fprintf(g.out, "You are about to delete %d resource group(s); %d will be kept.\n\n",
		len(p.ToDelete), len(p.ToKeep))

	for {
		answer, err := g.prompter.Ask("Proceed with deletion? (y/n)")
		if err != nil {
			return Rejected, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return Confirmed, nil
		case "n", "no":
			output.Info("operation cancelled by user")
			return Rejected, nil
		default:
			fmt.Fprintln(g.out, `Unrecognized answer. Type "y" for yes or "n" for no.`)
		}
	}
}
