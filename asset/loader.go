// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package asset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync/atomic"

	"github.com/gogpu/gemstone"
	"github.com/gogpu/gemstone/internal/cache"
)

// ErrNoAsset is returned when every candidate path failed to load.
var ErrNoAsset = errors.New("asset: no gem image could be loaded")

// DefaultPrimary is the gem image tried first.
const DefaultPrimary = "diamond-base.png"

// DefaultFallbacks are tried in order after the primary path fails.
var DefaultFallbacks = []string{
	"diamond.base.png",
	"diamond-base.png",
	"diam5.png",
	"diam1.png",
}

// Cache shares decoded textures between loaders reading the same files.
type Cache struct {
	c *cache.Cache[string, *Texture]
}

// NewCache creates a texture cache holding about limit textures.
func NewCache(limit int) *Cache {
	return &Cache{c: cache.New[string, *Texture](limit)}
}

// Len returns the number of cached textures.
func (c *Cache) Len() int { return c.c.Len() }

// Loader resolves the gem image from a primary path and an ordered list of
// fallbacks.
type Loader struct {
	// FS is read for every path. Nil means the working directory.
	FS fs.FS

	// Primary is tried first. Empty means DefaultPrimary.
	Primary string

	// Fallbacks are tried in order after Primary. Nil means DefaultFallbacks.
	Fallbacks []string

	// MaxSize caps the texture edge. Zero means DefaultMaxSize.
	MaxSize int

	// Cache, when set, is consulted before decoding.
	Cache *Cache
}

// Paths returns the candidate paths in the order Load tries them. Leading
// slashes are dropped and each path appears once.
func (l *Loader) Paths() []string {
	primary := l.Primary
	if primary == "" {
		primary = DefaultPrimary
	}
	fallbacks := l.Fallbacks
	if fallbacks == nil {
		fallbacks = DefaultFallbacks
	}

	seen := make(map[string]bool, len(fallbacks)+1)
	out := make([]string, 0, len(fallbacks)+1)
	for _, p := range append([]string{primary}, fallbacks...) {
		p = path.Clean(strings.TrimLeft(p, "/"))
		if p == "." || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func (l *Loader) fsys() fs.FS {
	if l.FS != nil {
		return l.FS
	}
	return os.DirFS(".")
}

func (l *Loader) maxSize() int {
	if l.MaxSize > 0 {
		return l.MaxSize
	}
	return DefaultMaxSize
}

// Load returns the texture of the first path that decodes. When every path
// fails, the error wraps ErrNoAsset and each per-path failure. Load checks
// ctx between paths.
func (l *Loader) Load(ctx context.Context) (*Texture, error) {
	log := gemstone.Logger()
	var errs []error
	for _, p := range l.Paths() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := l.loadPath(p)
		if err == nil {
			log.Info("asset: gem image loaded", "path", p, "width", t.Width(), "height", t.Height())
			return t, nil
		}
		log.Debug("asset: candidate failed", "path", p, "err", err)
		errs = append(errs, fmt.Errorf("%s: %w", p, err))
	}
	log.Warn("asset: all candidates failed, using fallback rendering", "tried", len(errs))
	return nil, fmt.Errorf("%w: %w", ErrNoAsset, errors.Join(errs...))
}

func (l *Loader) loadPath(p string) (*Texture, error) {
	decode := func() (*Texture, error) {
		f, err := l.fsys().Open(p)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return Decode(f, l.maxSize())
	}
	if l.Cache == nil {
		return decode()
	}
	return l.Cache.c.GetOrCreate(fmt.Sprintf("%s@%d", p, l.maxSize()), decode)
}

// Start loads the texture on a new goroutine and returns immediately.
func (l *Loader) Start(ctx context.Context) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		t, err := l.Load(ctx)
		p.err = err
		p.tex.Store(t)
		close(p.done)
	}()
	return p
}

// Pending is an asynchronous texture load. It is a Source: Texture returns
// nil until the load has completed successfully, so a renderer keeps drawing
// its fallback until the frame that first observes the finished texture.
type Pending struct {
	tex  atomic.Pointer[Texture]
	err  error
	done chan struct{}
}

// Texture returns the loaded texture, or nil while loading or after failure.
func (p *Pending) Texture() *Texture { return p.tex.Load() }

// Done is closed once loading finished, successfully or not.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Err returns the load error once done, and nil before.
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Wait blocks until the load finishes or ctx is done.
func (p *Pending) Wait(ctx context.Context) (*Texture, error) {
	select {
	case <-p.done:
		return p.tex.Load(), p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
