package rbxdb

import (
	"github.com/go-logr/logr"

	"github.com/cdjkit/rbxdb/pkg/logging"
)

// ProgressCallback reports build progress one stage at a time, e.g.
// ("pdb", 0, 1) and ("pdb", 1, 1) before and after export.pdb is encoded,
// or ("anlz", 17, 400) after rendering the analysis files of the 17th of
// 400 tracks.
type ProgressCallback func(stage string, current, total int)

// Options configures a Builder: its logger, progress callback and DJ
// profile name.
type Options struct {
	Logger        *logging.Logger
	Progress      ProgressCallback
	DJProfileName string
}

// Option mutates Options, mirroring the teacher's functional-options
// pattern (pkg/options.Option).
type Option func(*Options)

// WithLogger sets the logr.Logger a Builder reports through.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = logging.NewLogger(l)
	}
}

// WithProgress sets a callback invoked as each stage of the build
// completes units of work.
func WithProgress(cb ProgressCallback) Option {
	return func(o *Options) {
		o.Progress = cb
	}
}

// WithDJProfileName sets the name written into djprofile.nxs.
func WithDJProfileName(name string) Option {
	return func(o *Options) {
		o.DJProfileName = name
	}
}

func defaultOptions() Options {
	return Options{
		Logger: logging.DefaultLogger(),
	}
}

func (o *Options) report(stage string, current, total int) {
	if o.Progress != nil {
		o.Progress(stage, current, total)
	}
}
