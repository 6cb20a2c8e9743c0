package platform

import (
	"context"

	"github.com/aretw0/introspection"

	"github.com/aretw0/intervals/pkg/adapters/fs"
	"github.com/aretw0/intervals/pkg/core"
	"github.com/aretw0/intervals/pkg/worksheet"
)

// Runtime is a core.Service together with the settings that drive worksheet
// discovery, grading and watching.
type Runtime struct {
	*core.Service
	settings Settings
}

// Settings returns the resolved options the runtime was built with.
func (r *Runtime) Settings() Settings {
	return r.settings
}

// Discover lists the worksheets under root matching the sheet pattern.
func (r *Runtime) Discover(root string) ([]string, error) {
	return worksheet.Discover(root, r.settings.SheetPattern)
}

// Expand resolves files, directories and globs to worksheet paths.
func (r *Runtime) Expand(targets []string) ([]string, error) {
	return worksheet.Expand(targets, r.settings.SheetPattern)
}

// GradeAll grades paths with at most Workers sheets in flight.
func (r *Runtime) GradeAll(ctx context.Context, paths []string) (worksheet.Report, error) {
	return worksheet.GradeAll(ctx, r.Service, paths, r.settings.Workers)
}

// NewWatcher watches root for worksheets matching the sheet pattern,
// settling bursts for Debounce.
func (r *Runtime) NewWatcher(root string) *fs.Watcher {
	return fs.NewWatcher(fs.Config{
		Root:     root,
		Pattern:  r.settings.SheetPattern,
		Debounce: r.settings.Debounce,
		Logger:   r.Logger(),
	})
}

// RuntimeState exposes the service counters and the effective settings.
type RuntimeState struct {
	core.ServiceState
	Workers      int    `json:"workers"`
	SheetPattern string `json:"sheet_pattern"`
	Debounce     string `json:"debounce"`
}

// State implements introspection.Introspectable.
func (r *Runtime) State() any {
	return RuntimeState{
		ServiceState: r.Service.State().(core.ServiceState),
		Workers:      r.settings.Workers,
		SheetPattern: r.settings.SheetPattern,
		Debounce:     r.settings.Debounce.String(),
	}
}

// ComponentType implements introspection.Component.
func (r *Runtime) ComponentType() string {
	return "runtime"
}

var _ introspection.Introspectable = (*Runtime)(nil)
var _ introspection.Component = (*Runtime)(nil)
