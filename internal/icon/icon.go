// Package icon resolves symbolic icon names to terminal glyphs.
package icon

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"github.com/aurenox/aurenox/internal/logging"
)

//go:embed glyphs.toml
var embeddedGlyphs []byte

// Icon is a resolved, renderable icon.
type Icon struct {
	Name  string
	Glyph string
}

func (i Icon) String() string { return i.Glyph }

// Catalog loads the name to glyph table.
type Catalog interface {
	Load(ctx context.Context) (map[string]string, error)
}

// CatalogFunc adapts a function to Catalog.
type CatalogFunc func(ctx context.Context) (map[string]string, error)

func (f CatalogFunc) Load(ctx context.Context) (map[string]string, error) { return f(ctx) }

// Embedded is the built-in glyph table.
var Embedded Catalog = CatalogFunc(func(context.Context) (map[string]string, error) {
	return ParseTable(embeddedGlyphs)
})

// ParseTable decodes a TOML table with a [glyphs] section.
func ParseTable(data []byte) (map[string]string, error) {
	var doc struct {
		Glyphs map[string]string `toml:"glyphs"`
	}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("parse glyph table: %w", err)
	}
	return doc.Glyphs, nil
}

// Resolver resolves names against a lazily loaded catalog and memoizes results.
// A Resolver belongs to one display; its cache dies with it. Safe for concurrent use.
type Resolver struct {
	catalog Catalog
	log     *zap.Logger

	loadOnce sync.Once
	table    map[string]string
	loadErr  error

	mu    sync.Mutex
	cache map[string]result
}

type result struct {
	icon Icon
	ok   bool
}

func NewResolver(c Catalog, log *zap.Logger) *Resolver {
	if c == nil {
		c = Embedded
	}
	return &Resolver{catalog: c, log: logging.OrNop(log), cache: map[string]result{}}
}

// Resolve looks name up. Unknown names and catalog failures resolve to no icon and are
// logged; Resolve never fails the caller.
func (r *Resolver) Resolve(ctx context.Context, name string) (Icon, bool) {
	if name == "" {
		return Icon{}, false
	}
	r.mu.Lock()
	if res, ok := r.cache[name]; ok {
		r.mu.Unlock()
		return res.icon, res.ok
	}
	r.mu.Unlock()

	r.loadOnce.Do(func() {
		r.table, r.loadErr = r.catalog.Load(ctx)
		if r.loadErr != nil {
			r.log.Error("icon catalog unavailable", zap.Error(r.loadErr))
		}
	})

	res := result{}
	if glyph, ok := r.table[name]; ok {
		res = result{icon: Icon{Name: name, Glyph: glyph}, ok: true}
	} else if r.loadErr == nil {
		fields := []zap.Field{zap.String("icon", name)}
		if s := r.suggest(name); s != "" {
			fields = append(fields, zap.String("suggestion", s))
		}
		r.log.Warn("icon not found", fields...)
	}

	r.mu.Lock()
	r.cache[name] = res
	r.mu.Unlock()
	return res.icon, res.ok
}

// suggest returns the closest known name within a small edit distance.
func (r *Resolver) suggest(name string) string {
	best, bestDist := "", 4
	for known := range r.table {
		d := levenshtein.ComputeDistance(name, known)
		if d < bestDist || (d == bestDist && best != "" && known < best) {
			best, bestDist = known, d
		}
	}
	return best
}

// Cached returns how many names have been memoized.
func (r *Resolver) Cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}
