package convert

import (
	"context"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/iudanet/onepif2kdbx/internal/logging"
	"github.com/iudanet/onepif2kdbx/internal/models"
	"github.com/iudanet/onepif2kdbx/internal/onepif"
	"github.com/iudanet/onepif2kdbx/internal/registry"
	"github.com/iudanet/onepif2kdbx/internal/target"
)

// Source yields the records of an export. Each call to Records starts over.
type Source interface {
	Records() iter.Seq2[*onepif.Record, error]
}

// Options tune the conversion.
type Options struct {
	// SkipTrashed drops trashed records instead of filing them in the Recycle Bin.
	SkipTrashed bool
}

// Summary describes a finished run.
type Summary struct {
	Groups   map[string]int // entries per group
	Entries  int
	Skipped  int // trashed records dropped because of SkipTrashed
	Warnings int // fields dropped with a warning
}

// GroupNames returns the groups of the summary, sorted.
func (s Summary) GroupNames() []string {
	return slices.Sorted(maps.Keys(s.Groups))
}

// Converter runs the whole conversion.
type Converter struct {
	registry  *registry.Registry
	log       logging.Logger
	extractor *Extractor
	projector *Projector
	opts      Options
	skipped   int
}

// NewConverter creates a converter using reg to classify records.
func NewConverter(reg *registry.Registry, log logging.Logger, opts Options) *Converter {
	return &Converter{
		registry:  reg,
		log:       log,
		extractor: NewExtractor(log),
		projector: NewProjector(),
		opts:      opts,
	}
}

// Convert converts every record of seq. Nothing is written; the first error
// stops the conversion. Counters of the summary start from zero on each call.
func (c *Converter) Convert(ctx context.Context, seq iter.Seq2[*onepif.Record, error]) ([]*models.Entry, error) {
	c.skipped = 0
	c.extractor.reset()

	var entries []*models.Entry
	for rec, err := range seq {
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if rec.Trashed && c.opts.SkipTrashed {
			c.skipped++
			c.log.Debug(ctx, "trashed record skipped", "record", rec.Title, "uuid", rec.UUID)
			continue
		}

		entry, err := c.convertRecord(ctx, rec)
		if err != nil {
			return nil, fmt.Errorf("record %q (uuid %s): %w", rec.Title, rec.UUID, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (c *Converter) convertRecord(ctx context.Context, rec *onepif.Record) (*models.Entry, error) {
	typ, err := c.registry.Classify(rec.TypeName)
	if err != nil {
		return nil, err
	}
	props, err := c.extractor.Extract(ctx, rec)
	if err != nil {
		return nil, err
	}
	return c.projector.Project(rec, props, typ)
}

// Run converts all records of src, writes them to dst and saves it.
// dst is not touched unless every record converted.
func (c *Converter) Run(ctx context.Context, src Source, dst target.Container) (Summary, error) {
	entries, err := c.Convert(ctx, src.Records())
	if err != nil {
		return Summary{}, err
	}

	if err := NewWriter(dst, c.log).Write(ctx, entries); err != nil {
		return Summary{}, err
	}
	if err := dst.Save(); err != nil {
		return Summary{}, fmt.Errorf("failed to save database: %w", err)
	}

	sum := Summary{
		Groups:   make(map[string]int),
		Entries:  len(entries),
		Skipped:  c.skipped,
		Warnings: c.extractor.Warnings(),
	}
	for _, e := range entries {
		sum.Groups[e.Group]++
	}

	c.log.Info(ctx, "conversion finished", "entries", sum.Entries, "groups", len(sum.Groups), "skipped", sum.Skipped, "warnings", sum.Warnings)
	return sum, nil
}
