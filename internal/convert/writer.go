package convert

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/onepif2kdbx/internal/logging"
	"github.com/iudanet/onepif2kdbx/internal/models"
	"github.com/iudanet/onepif2kdbx/internal/target"
)

// Writer persists converted entries into a container.
type Writer struct {
	container target.Container
	log       logging.Logger
	groups    map[string]target.GroupHandle
	now       func() time.Time
}

// NewWriter creates a writer for container.
func NewWriter(container target.Container, log logging.Logger) *Writer {
	return &Writer{
		container: container,
		log:       log,
		groups:    make(map[string]target.GroupHandle),
		now:       time.Now,
	}
}

// Write adds entries to the container, creating top-level groups as needed.
// It does not save the container.
func (w *Writer) Write(ctx context.Context, entries []*models.Entry) error {
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.writeEntry(ctx, e); err != nil {
			return fmt.Errorf("failed to write entry %q: %w", e.Title, err)
		}
	}
	return nil
}

func (w *Writer) writeEntry(ctx context.Context, e *models.Entry) error {
	g, err := w.group(ctx, e.Group)
	if err != nil {
		return err
	}

	h, err := w.container.AddEntry(g, e.Title)
	if err != nil {
		return fmt.Errorf("failed to add entry: %w", err)
	}

	if e.UUID != "" {
		h.SetUUID(e.UUID)
	}
	h.SetIcon(e.Icon)
	h.SetUsername(e.Username)
	if e.URL != "" {
		h.SetURL(e.URL)
	}
	if e.Notes != "" {
		h.SetNotes(e.Notes)
	}
	if len(e.Tags) > 0 {
		h.SetTags(e.Tags)
	}
	for _, p := range e.CustomProperties {
		h.SetCustomProperty(p.Name, p.Value, p.Protected)
	}

	created, modified := e.CreatedAt, e.ModifiedAt
	if created.IsZero() {
		created = w.now()
	}
	if modified.IsZero() {
		modified = created
	}
	h.SetCreatedAt(created)
	ReplayHistory(h, e.Password, modified, e.History)

	w.log.Debug(ctx, "entry written", "title", e.Title, "group", e.Group, "history", len(e.History))
	return nil
}

// group returns the top-level group called name, creating it on first use.
func (w *Writer) group(ctx context.Context, name string) (target.GroupHandle, error) {
	if g, ok := w.groups[name]; ok {
		return g, nil
	}

	g, ok := w.container.FindGroupByName(name)
	if !ok {
		var err error
		g, err = w.container.AddGroup(w.container.Root(), name)
		if err != nil {
			return nil, fmt.Errorf("failed to add group %q: %w", name, err)
		}
		w.log.Debug(ctx, "group created", "group", name)
	}

	w.groups[name] = g
	return g, nil
}
