// Command example runs a reorderable task list in the terminal.
// Drag rows with the mouse, extend the selection with shift or ctrl
// click, and navigate with the arrow keys.
package main

import (
	"fmt"
	"os"

	"github.com/go-listview/listview"
	"github.com/go-listview/listview/backend/term"
)

var tasks = []string{
	"Collect crash reports from last release",
	"Triage flaky integration tests",
	"Upgrade build image to bookworm",
	"Write migration for the sessions table",
	"Profile the hot path in the matcher",
	"Rotate the staging credentials",
	"Clean up feature flags older than a year",
	"Review the pagination RFC",
	"Fix off-by-one in the export cursor",
	"Add retry budget to the outbound client",
	"Document the deploy rollback steps",
	"Merge the dependency update batch",
	"Split the monolith config package",
	"Benchmark the new codec",
	"Audit third-party licenses",
	"Archive the old dashboards",
	"Tune the GC knobs on the ingest tier",
	"Backfill missing trace spans",
	"Remove the legacy auth shim",
	"Ship it",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	seq := listview.NewSliceSequence(func() string { return "New task" }, tasks...)

	ctrl := listview.NewController(seq,
		listview.MultiSelect(true),
		listview.UniformRowHeight(1),
		listview.DragThreshold(0),
		listview.ScrollStep(2),
		listview.WithOpt(listview.OptEdgeScrollMargin, float32(2)),
	)

	driver, err := term.NewDriver(ctrl, func(i int) string {
		label, _ := seq.Item(i)
		return label
	})
	if err != nil {
		return err
	}
	driver.SetTitle(fmt.Sprintf("tasks (%d)", seq.Len()))

	ctrl.OnChanged(func(listview.StructuralChange) {
		driver.SetTitle(fmt.Sprintf("tasks (%d)", seq.Len()))
	})

	return driver.Run()
}
