// Package build drives the seam front end over source files: read, parse,
// collect, bind and resolve. Units are independent and compiled in
// parallel; each gets its own module.
package build

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seam-lang/seam/internal/ast"
	"github.com/seam-lang/seam/internal/cli"
	"github.com/seam-lang/seam/internal/parser"
	"github.com/seam-lang/seam/internal/position"
	"github.com/seam-lang/seam/internal/resolver"
	"github.com/seam-lang/seam/internal/types"
)

// Result is the outcome of compiling one file. Root is nil when Err is set.
type Result struct {
	Path   string
	Source *position.SourceFile // nil when the file could not be read
	Module *types.Module
	Root   *ast.RestrictedBlock
	Err    error
}

// Compiler compiles units with the settings of a config.
type Compiler struct {
	cfg    *cli.Config
	logger *cli.Logger
	cache  *ResultCache
}

// NewCompiler creates a compiler. A nil cfg means cli.DefaultConfig().
func NewCompiler(cfg *cli.Config, logger *cli.Logger) *Compiler {
	if cfg == nil {
		cfg = cli.DefaultConfig()
	}
	return &Compiler{cfg: cfg, logger: logger, cache: NewResultCache(0)}
}

// Cache returns the compiler's result cache.
func (c *Compiler) Cache() *ResultCache { return c.cache }

// Compile compiles paths with a fresh compiler.
func Compile(ctx context.Context, cfg *cli.Config, logger *cli.Logger, paths []string) ([]Result, error) {
	return NewCompiler(cfg, logger).Compile(ctx, paths)
}

// Compile compiles every path, at most cfg.Jobs at a time, and returns one
// result per path in input order. Compile errors are reported in the
// results; the returned error is set only when ctx is cancelled.
func (c *Compiler) Compile(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))

	jobs := c.cfg.Jobs
	if jobs <= 0 {
		jobs = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.compileFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Compiler) compileFile(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("reading %s: %w", path, err)}
	}

	key := cacheKey(path, HashBytes(data))
	if r, ok := c.cache.Get(key); ok {
		c.logger.Debug("%s unchanged, reusing previous result", path)
		return r
	}

	start := time.Now()
	source := string(data)
	r := Result{Path: path, Source: position.NewSourceFile(path, source)}
	r.Module, r.Root, r.Err = c.compileSource(path, source)
	if r.Err == nil {
		c.logger.Info("compiled %s in %s", path, time.Since(start).Round(time.Microsecond))
	}

	c.cache.Put(key, r)
	return r
}

func (c *Compiler) compileSource(path, source string) (*types.Module, *ast.RestrictedBlock, error) {
	module, err := types.NewModule(c.cfg.Module.Name, c.cfg.Module.Version)
	if err != nil {
		return nil, nil, err
	}

	root, err := parser.New(module, path, source).Parse()
	if err != nil {
		return module, nil, err
	}
	c.logger.Debug("parsed %s: %d top-level statements", path, root.Len())

	if err := resolver.Resolve(module, root, c.logger); err != nil {
		return module, nil, err
	}
	return module, root, nil
}
