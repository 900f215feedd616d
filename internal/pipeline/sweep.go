package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/kidlingo/internal/logger"
	"github.com/abhisek/kidlingo/internal/store"
)

// SweepAction is what the sweeper does with a stuck media source.
type SweepAction string

const (
	SweepReset  SweepAction = "reset"
	SweepFailed SweepAction = "failed"
)

// SweepItem is one stuck media source found by a sweep.
type SweepItem struct {
	MediaID int
	Name    string
	Age     time.Duration
	Action  SweepAction
}

// SweepReport lists what a sweep found and did.
type SweepReport struct {
	Items  []SweepItem
	Reset  int
	Failed int
	DryRun bool
}

// Sweeper recovers media sources left in processing by a run that died.
type Sweeper struct {
	media store.MediaRepo
	log   *logger.Logger
	now   func() time.Time
}

// NewSweeper creates a Sweeper.
func NewSweeper(media store.MediaRepo, log *logger.Logger) *Sweeper {
	if log == nil {
		log = logger.Nop()
	}
	return &Sweeper{media: media, log: log.Named("sweeper"), now: time.Now}
}

// Sweep finds media that has been processing for longer than olderThan.
// Items whose video is gone are marked failed; the rest go back to
// pending. With dryRun nothing is written.
func (s *Sweeper) Sweep(ctx context.Context, olderThan time.Duration, dryRun bool) (*SweepReport, error) {
	now := s.now()
	stuck, err := s.media.ListStuck(ctx, now.Add(-olderThan))
	if err != nil {
		return nil, err
	}

	report := &SweepReport{DryRun: dryRun}
	for _, m := range stuck {
		item := SweepItem{MediaID: m.ID, Name: m.Name, Age: now.Sub(m.UpdatedAt), Action: SweepReset}

		_, statErr := os.Stat(m.Path)
		missing := errors.Is(statErr, os.ErrNotExist)
		if missing {
			item.Action = SweepFailed
		}

		if !dryRun {
			if missing {
				msg := fmt.Sprintf(msgFileNotFound, m.Path)
				err = s.media.MarkError(ctx, m.ID, msg, ErrMediaMissing.Error())
			} else {
				err = s.media.ResetPending(ctx, m.ID)
			}
			if err != nil {
				return report, err
			}
		}

		if missing {
			report.Failed++
		} else {
			report.Reset++
		}
		report.Items = append(report.Items, item)
		s.log.Info("stuck media", "media_id", m.ID, "name", m.Name,
			"age", item.Age.Round(time.Minute), "action", item.Action, "dry_run", dryRun)
	}
	return report, nil
}
