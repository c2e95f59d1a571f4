// Package session assembles the reusable template from which per-render
// session parameters are derived.
//
// A ParamsBuilder is copy-on-write: PlusFlag and WithTheme return a new
// builder and never modify the receiver, so a builder handed out after
// preparation can be shared read-only by every render that follows. All
// builders derived from the same NewParamsBuilder call share one validity
// flag; Invalidate on any of them retires the whole family once the engine
// they were prepared for has been released.
package session

import (
	"errors"
	"log/slog"
	"maps"
	"sync/atomic"

	"github.com/giantswarm/renderenv/internal/resources"
	"github.com/giantswarm/renderenv/internal/sentinel"
)

// ErrInvalidated is returned by Params after the engine the builder was
// prepared for has been released.
const ErrInvalidated = sentinel.Error("session params builder used after renderer close")

// Callback is the project-side collaborator the engine calls back into while
// rendering, chiefly to translate between generated resource IDs and
// resource references.
type Callback interface {
	// ResourceID returns the ID for ref, allocating one if needed.
	ResourceID(ref resources.Reference) int32
	// ResolveResourceID maps an ID back to the reference it was issued for.
	ResolveResourceID(id int32) (resources.Reference, bool)
}

// Flag names an engine render flag.
type Flag string

// FlagDoNotRenderOnCreate stops the engine from rendering while a session is
// being created, so the first frame is taken explicitly.
const FlagDoNotRenderOnCreate Flag = "doNotRenderOnCreate"

// BuilderParams holds the collaborators of a new ParamsBuilder.
type BuilderParams struct {
	Callback           Callback
	Logger             *slog.Logger
	FrameworkResources *resources.Repository
	ProjectResources   *resources.Repository
	Assets             *resources.AssetRepository
}

// ParamsBuilder is an immutable template of engine inputs.
type ParamsBuilder struct {
	callback  Callback
	logger    *slog.Logger
	framework *resources.Repository
	project   *resources.Repository
	assets    *resources.AssetRepository

	flags        map[Flag]any
	themeName    string
	projectTheme bool

	invalidated *atomic.Bool
}

// NewParamsBuilder returns a builder with no flags and no theme.
//
// Panics if any collaborator is nil.
func NewParamsBuilder(p BuilderParams) *ParamsBuilder {
	switch {
	case p.Callback == nil:
		panic("renderenv: NewParamsBuilder callback must not be nil")
	case p.Logger == nil:
		panic("renderenv: NewParamsBuilder logger must not be nil")
	case p.FrameworkResources == nil || p.ProjectResources == nil:
		panic("renderenv: NewParamsBuilder resource repositories must not be nil")
	case p.Assets == nil:
		panic("renderenv: NewParamsBuilder asset repository must not be nil")
	}
	return &ParamsBuilder{
		callback:    p.Callback,
		logger:      p.Logger,
		framework:   p.FrameworkResources,
		project:     p.ProjectResources,
		assets:      p.Assets,
		flags:       map[Flag]any{},
		invalidated: new(atomic.Bool),
	}
}

func (b *ParamsBuilder) clone() *ParamsBuilder {
	c := *b
	c.flags = maps.Clone(b.flags)
	return &c
}

// PlusFlag returns a copy of b with flag set to value.
func (b *ParamsBuilder) PlusFlag(flag Flag, value any) *ParamsBuilder {
	c := b.clone()
	c.flags[flag] = value
	return c
}

// WithTheme returns a copy of b using the named theme. projectTheme reports
// whether the theme is defined by the project rather than the framework.
func (b *ParamsBuilder) WithTheme(name string, projectTheme bool) *ParamsBuilder {
	c := b.clone()
	c.themeName = name
	c.projectTheme = projectTheme
	return c
}

// Flag returns the value of flag and whether it is set.
func (b *ParamsBuilder) Flag(flag Flag) (any, bool) {
	v, ok := b.flags[flag]
	return v, ok
}

// Theme returns the theme name and whether it is a project theme.
func (b *ParamsBuilder) Theme() (name string, projectTheme bool) {
	return b.themeName, b.projectTheme
}

// Callback returns the render callback.
func (b *ParamsBuilder) Callback() Callback { return b.callback }

// Logger returns the engine logger.
func (b *ParamsBuilder) Logger() *slog.Logger { return b.logger }

// FrameworkResources returns the framework repository.
func (b *ParamsBuilder) FrameworkResources() *resources.Repository { return b.framework }

// ProjectResources returns the project repository.
func (b *ParamsBuilder) ProjectResources() *resources.Repository { return b.project }

// Assets returns the asset repository.
func (b *ParamsBuilder) Assets() *resources.AssetRepository { return b.assets }

// Valid reports whether the builder may still be used.
func (b *ParamsBuilder) Valid() bool { return !b.invalidated.Load() }

// Invalidate retires b and every builder derived from the same template.
func (b *ParamsBuilder) Invalidate() { b.invalidated.Store(true) }

// Params is a snapshot of a builder, detached from later builder changes.
type Params struct {
	Callback           Callback
	Logger             *slog.Logger
	FrameworkResources *resources.Repository
	ProjectResources   *resources.Repository
	Assets             *resources.AssetRepository
	Flags              map[Flag]any
	ThemeName          string
	ProjectTheme       bool
}

// Params returns a snapshot for one render session.
func (b *ParamsBuilder) Params() (Params, error) {
	if !b.Valid() {
		return Params{}, ErrInvalidated
	}
	if b.themeName == "" {
		return Params{}, errors.New("session params: no theme set")
	}
	return Params{
		Callback:           b.callback,
		Logger:             b.logger,
		FrameworkResources: b.framework,
		ProjectResources:   b.project,
		Assets:             b.assets,
		Flags:              maps.Clone(b.flags),
		ThemeName:          b.themeName,
		ProjectTheme:       b.projectTheme,
	}, nil
}
