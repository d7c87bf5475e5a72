package content

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aurenox/aurenox/internal/logging"
)

// Aggregator loads all seven collections in parallel.
type Aggregator struct {
	fetcher Fetcher
	log     *zap.Logger
}

func NewAggregator(f Fetcher, log *zap.Logger) *Aggregator {
	return &Aggregator{fetcher: f, log: logging.OrNop(log)}
}

// Load issues the seven requests concurrently. Either all succeed and a complete snapshot
// is returned, or the first failure is returned as a *FetchError and no snapshot is.
func (a *Aggregator) Load(ctx context.Context) (Snapshot, error) {
	var (
		about      []AboutEntry
		events     []EventEntry
		faqs       []FaqEntry
		gallery    []GalleryImage
		shows      []ShowDetail
		summaries  []ShowSummary
		performers []HeroPerformer
	)

	g, gctx := errgroup.WithContext(ctx)
	fetch := func(resource, path string, out any) {
		g.Go(func() error {
			if err := a.fetcher.FetchCollection(gctx, path, out); err != nil {
				return &FetchError{Resource: resource, Err: err}
			}
			return nil
		})
	}
	fetch("about", PathAbout, &about)
	fetch("events", PathEvents, &events)
	fetch("faqs", PathFaqs, &faqs)
	fetch("gallery", PathGallery, &gallery)
	fetch("shows", PathShows, &shows)
	fetch("summaries", PathSummaries, &summaries)
	fetch("performers", PathPerformers, &performers)

	if err := g.Wait(); err != nil {
		a.log.Error("content load failed", zap.Error(err))
		return Snapshot{}, err
	}

	return Snapshot{
		About:      about,
		Events:     events,
		Faqs:       faqs,
		Gallery:    gallery,
		Shows:      shows,
		Summaries:  summaries,
		Performers: performers,
	}, nil
}

// LoadInto loads and publishes into s. On failure s is left untouched.
// s is not synchronized; callers on an event loop should Load in a command and
// Publish from the loop instead.
func (a *Aggregator) LoadInto(ctx context.Context, s *Store) error {
	snap, err := a.Load(ctx)
	if err != nil {
		return err
	}
	s.Publish(snap)
	return nil
}
