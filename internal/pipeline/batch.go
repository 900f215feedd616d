package pipeline

import (
	"context"
	"fmt"

	"github.com/abhisek/kidlingo/internal/store"
)

// ItemError records one failed media source in a batch run.
type ItemError struct {
	MediaID int
	Name    string
	Err     error
}

// BatchReport summarises a ProcessPending run.
type BatchReport struct {
	Total     int
	Processed int
	Skipped   int
	Errors    []ItemError
}

// ProcessPending works through every media source that is not done, oldest
// first, strictly one at a time. A failing item is recorded and the queue
// moves on. Items already holding a lesson are marked done; items another
// run is actively processing are skipped; failed and stale items are reset
// to pending before they are retried.
func (p *Processor) ProcessPending(ctx context.Context) (*BatchReport, error) {
	if p.logs != nil {
		p.logs.Clear()
	}

	items, err := p.media.ListNotDone(ctx)
	if err != nil {
		return nil, err
	}
	report := &BatchReport{Total: len(items)}
	if len(items) == 0 {
		p.log.Info("no media to process")
		return report, nil
	}
	p.log.Info("batch started", "items", len(items))

	for i := range items {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		m := &items[i]
		p.log.Info(fmt.Sprintf("Processing video %d/%d: %s", i+1, len(items), m.Name), "media_id", m.ID)

		existing, err := p.lessons.ForMedia(ctx, m.ID)
		if err != nil {
			report.Errors = append(report.Errors, ItemError{MediaID: m.ID, Name: m.Name, Err: err})
			continue
		}
		if existing != nil {
			if err := p.media.MarkDone(ctx, m.ID, MsgLessonExists); err != nil {
				report.Errors = append(report.Errors, ItemError{MediaID: m.ID, Name: m.Name, Err: err})
				continue
			}
			p.log.Info("lesson already exists, marked done", "media_id", m.ID, "lesson_id", existing.ID)
			report.Skipped++
			continue
		}

		switch m.Status {
		case store.StatusProcessing:
			if p.now().Sub(m.UpdatedAt) < p.cfg.StaleAfter {
				p.log.Warn("media is being processed elsewhere, skipping", "media_id", m.ID)
				report.Skipped++
				continue
			}
			fallthrough
		case store.StatusError:
			if err := p.media.ResetPending(ctx, m.ID); err != nil {
				report.Errors = append(report.Errors, ItemError{MediaID: m.ID, Name: m.Name, Err: err})
				continue
			}
		}

		if _, err := p.Process(ctx, m.ID, Options{}); err != nil {
			report.Errors = append(report.Errors, ItemError{MediaID: m.ID, Name: m.Name, Err: err})
			continue
		}
		report.Processed++
	}

	p.log.Info("batch finished",
		"total", report.Total, "processed", report.Processed,
		"skipped", report.Skipped, "errors", len(report.Errors))
	return report, nil
}
