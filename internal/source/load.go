package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/declscan/internal/model"
)

// ErrNoInput is returned when Load is called without any path.
var ErrNoInput = errors.New("no input files")

// DefaultConcurrency is the number of inputs read at the same time.
const DefaultConcurrency = 4

// Options configures Load.
type Options struct {
	// Concurrency limits how many inputs are read at once.
	// Zero means DefaultConcurrency.
	Concurrency int

	// Logger receives progress records. Nil means slog.Default().
	Logger *slog.Logger
}

// dbExtensions are the file extensions read as SQLite databases.
var dbExtensions = map[string]bool{
	".db":      true,
	".sqlite":  true,
	".sqlite3": true,
}

// Load reads every path and returns the entities as one set, in argument
// order and then in file order. Local variables and statements whose
// enclosing function is defined in the same file are linked to it.
func Load(ctx context.Context, paths []string, opts Options) (*model.AnalyzedSet, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Pre-allocate results slice to maintain order
	results := make([][]*model.Entity, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entities, err := loadFile(ctx, path)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", path, err)
			}
			logger.Debug("loaded input", "path", path, "entities", len(entities))
			results[i] = entities
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*model.Entity
	for _, entities := range results {
		linkParents(entities)
		all = append(all, entities...)
	}
	return model.NewAnalyzedSet(all...), nil
}

func loadFile(ctx context.Context, path string) ([]*model.Entity, error) {
	if dbExtensions[strings.ToLower(filepath.Ext(path))] {
		db, err := OpenDeclDB(path)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return db.Entities(ctx)
	}

	f, err := os.Open(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAnalyzed(f)
}

// linkParents replaces function-name labels with references to the function
// entity of the same name in the same file, when there is one.
func linkParents(entities []*model.Entity) {
	type funcKey struct{ filename, name string }
	funcs := make(map[funcKey]*model.Entity)
	for _, e := range entities {
		if e.Kind == model.KindFunction {
			funcs[funcKey{e.Filename, e.Name}] = e
		}
	}
	for _, e := range entities {
		if e.Parent.IsZero() || e.Parent.Entity() != nil {
			continue
		}
		if fn, ok := funcs[funcKey{e.Filename, e.Parent.Name()}]; ok {
			e.Parent = model.ParentEntity(fn)
		}
	}
}
