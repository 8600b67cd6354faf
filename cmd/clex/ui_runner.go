package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"clex/internal/driver"
	"clex/internal/ui"
)

type batchOutcome struct {
	results []driver.FileResult
	err     error
}

// runBatchWithUI runs TokenizeBatch while a Bubble Tea program renders the
// per-file progress to out.
func runBatchWithUI(ctx context.Context, out io.Writer, title string, files []string, opts driver.BatchOptions) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.TokenizeBatch(ctx, files, optsCopy)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// UI могла закрыться раньше (ctrl+c): дочитываем события, чтобы воркеры не встали
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
