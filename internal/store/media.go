package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/kidlingo/ent"
	"github.com/abhisek/kidlingo/ent/mediasource"
)

type mediaRepo struct {
	client *ent.Client
}

func (r *mediaRepo) Register(ctx context.Context, m NewMedia) (*Media, bool, error) {
	existing, err := r.client.MediaSource.Query().
		Where(mediasource.Path(m.Path)).
		Only(ctx)
	if err == nil {
		return toMedia(existing), false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("lookup media %q: %w", m.Path, err)
	}

	create := r.client.MediaSource.Create().
		SetPath(m.Path).
		SetName(m.Name).
		SetSize(m.Size)
	if !m.CreatedAt.IsZero() {
		create = create.SetCreatedAt(m.CreatedAt)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race with another registration of the same path.
			got, gerr := r.GetByPath(ctx, m.Path)
			if gerr != nil {
				return nil, false, gerr
			}
			return got, false, nil
		}
		return nil, false, fmt.Errorf("save media %q: %w", m.Path, err)
	}
	return toMedia(row), true, nil
}

func (r *mediaRepo) Get(ctx context.Context, id int) (*Media, error) {
	row, err := r.client.MediaSource.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("media %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get media %d: %w", id, err)
	}
	return toMedia(row), nil
}

func (r *mediaRepo) GetByPath(ctx context.Context, path string) (*Media, error) {
	row, err := r.client.MediaSource.Query().
		Where(mediasource.Path(path)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("media %q: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("get media %q: %w", path, err)
	}
	return toMedia(row), nil
}

func (r *mediaRepo) List(ctx context.Context, opts ListOpts) ([]Media, error) {
	q := r.client.MediaSource.Query().
		Order(ent.Desc(mediasource.FieldCreatedAt), ent.Desc(mediasource.FieldID))
	if opts.Status != "" {
		q = q.Where(mediasource.StatusEQ(mediasource.Status(opts.Status)))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return toMediaList(rows), nil
}

func (r *mediaRepo) ListNotDone(ctx context.Context) ([]Media, error) {
	rows, err := r.client.MediaSource.Query().
		Where(mediasource.StatusNEQ(mediasource.StatusDone)).
		Order(ent.Asc(mediasource.FieldCreatedAt), ent.Asc(mediasource.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending media: %w", err)
	}
	return toMediaList(rows), nil
}

func (r *mediaRepo) ListStuck(ctx context.Context, cutoff time.Time) ([]Media, error) {
	rows, err := r.client.MediaSource.Query().
		Where(
			mediasource.StatusEQ(mediasource.StatusProcessing),
			mediasource.UpdatedAtLT(cutoff),
		).
		Order(ent.Asc(mediasource.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stuck media: %w", err)
	}
	return toMediaList(rows), nil
}

func (r *mediaRepo) UpdateStatus(ctx context.Context, id int, u StatusUpdate) error {
	upd := r.client.MediaSource.UpdateOneID(id)
	if u.Status != nil {
		upd = upd.SetStatus(mediasource.Status(*u.Status))
	}
	if u.Stage != nil {
		upd = upd.SetProcessingStatus(mediasource.ProcessingStatus(*u.Stage))
	}
	if u.Message != nil {
		upd = upd.SetProcessingMessage(*u.Message)
	}
	if u.ErrorMessage != nil {
		upd = upd.SetErrorMessage(*u.ErrorMessage)
	}
	if u.HasTranscript != nil {
		upd = upd.SetHasTranscript(*u.HasTranscript)
	}
	return r.save(ctx, id, upd)
}

func (r *mediaRepo) MarkDone(ctx context.Context, id int, message string) error {
	upd := r.client.MediaSource.UpdateOneID(id).
		SetStatus(mediasource.StatusDone).
		SetProcessingStatus(mediasource.ProcessingStatusDone).
		SetProcessingMessage(message).
		SetErrorMessage("").
		SetProcessedAt(time.Now())
	return r.save(ctx, id, upd)
}

func (r *mediaRepo) MarkError(ctx context.Context, id int, message, detail string) error {
	upd := r.client.MediaSource.UpdateOneID(id).
		SetStatus(mediasource.StatusError).
		SetProcessingStatus(mediasource.ProcessingStatusError).
		SetProcessingMessage(message).
		SetErrorMessage(detail)
	return r.save(ctx, id, upd)
}

func (r *mediaRepo) ResetPending(ctx context.Context, id int) error {
	upd := r.client.MediaSource.UpdateOneID(id).
		SetStatus(mediasource.StatusPending).
		SetProcessingStatus(mediasource.ProcessingStatusIdle).
		SetProcessingMessage("").
		SetErrorMessage("")
	return r.save(ctx, id, upd)
}

func (r *mediaRepo) CountByStatus(ctx context.Context) (map[MediaStatus]int, error) {
	var rows []struct {
		Status mediasource.Status `json:"status"`
		Count  int                `json:"count"`
	}
	err := r.client.MediaSource.Query().
		GroupBy(mediasource.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count media by status: %w", err)
	}

	out := map[MediaStatus]int{
		StatusPending:    0,
		StatusProcessing: 0,
		StatusDone:       0,
		StatusError:      0,
	}
	for _, row := range rows {
		out[MediaStatus(row.Status)] = row.Count
	}
	return out, nil
}

func (r *mediaRepo) save(ctx context.Context, id int, upd *ent.MediaSourceUpdateOne) error {
	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("media %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("update media %d: %w", id, err)
	}
	return nil
}

func toMedia(row *ent.MediaSource) *Media {
	return &Media{
		ID:                row.ID,
		Path:              row.Path,
		Name:              row.Name,
		Size:              row.Size,
		Status:            MediaStatus(row.Status),
		Stage:             Stage(row.ProcessingStatus),
		ProcessingMessage: row.ProcessingMessage,
		ErrorMessage:      row.ErrorMessage,
		HasTranscript:     row.HasTranscript,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
		ProcessedAt:       row.ProcessedAt,
	}
}

func toMediaList(rows []*ent.MediaSource) []Media {
	out := make([]Media, len(rows))
	for i, row := range rows {
		out[i] = *toMedia(row)
	}
	return out
}
