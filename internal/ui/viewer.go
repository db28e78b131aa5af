package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/veniger/solidity/internal/domain"
)

// FailureViewer displays failed suites from the last run in an interactive TUI.
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer.
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View shows the failed suites of a saved run. With no failures it prints a
// notice and returns without starting the TUI.
func (fv *FailureViewer) View(output *domain.RunOutput) error {
	var failures []domain.TestResult
	for _, result := range output.Details {
		if !result.Success {
			failures = append(failures, result)
		}
	}
	if len(failures) == 0 {
		color.Green("✓ No failed external tests in the last run (%s)", output.Meta.Timestamp)
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, failure := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, failure.Name), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(failures) {
			return
		}
		failure := failures[index]
		detailsView.SetText(fmt.Sprintf(
			"[yellow]Suite:[white] %s\n[yellow]Script:[white] %s\n[yellow]Exit code:[white] %d\n[yellow]Duration:[white] %s\n\n[yellow]Run:[white] %s (solc: %s %s)",
			failure.Name, failure.Path, failure.ExitCode, failure.Duration,
			output.Meta.Timestamp, output.Meta.SolcBinaryType, output.Meta.SolcBinaryPath,
		))
	}
	list.SetChangedFunc(func(int, string, string, rune) { updateDetails() })
	updateDetails()

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Failed external tests (%d of %d) | ↑↓ navigate, Ctrl+C exit ",
		len(failures), output.Meta.TotalSuites,
	))

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(list, 0, 1, true).
			AddItem(detailsView, 0, 2, false), 0, 1, true)

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
