// Package ljmcheck cross-checks the error codes declared in LabJackM.h against
// ljm_constants.json, and checks the manifest's register names.
//
// Run performs one complete, sequential pass over the three inputs and returns
// every advisory finding. Structural problems in the inputs (a missing file, a
// manifest element without a required field) are returned as errors instead.
package ljmcheck

import (
	"bytes"
	"context"

	"github.com/labjack/ljmcheck/internal"
	"github.com/labjack/ljmcheck/internal/check"
)

type (
	ErrorEntry        = check.ErrorEntry
	Diagnostic        = check.Diagnostic
	Kind              = check.Kind
	MissingFieldError = check.MissingFieldError
	FileSystem        = internal.FileSystem
)

// NewWrappedFS returns a FileSystem rooted at root. Paths given to Run must then
// be unrooted, slash-separated and free of "..".
func NewWrappedFS(root string) FileSystem {
	return internal.NewWrappedFS(root)
}

// NewOSFS returns a FileSystem that reads host paths as given.
func NewOSFS() FileSystem {
	return internal.OSFS{}
}

// Options configures a Run. Zero values fall back to the LJM defaults.
type Options struct {
	FS           FileSystem // host filesystem when nil
	HeaderPath   string
	ManifestPath string
	IgnorePath   string
	ErrorMacro   string
	ErrorPrefix  string
	RegisterSets []string // check.DefaultRegisterSets when nil
	Logger       Logger   // no logging when nil
}

// Result holds everything a run found.
type Result struct {
	HeaderPath     string
	ManifestPath   string
	HeaderErrors   []ErrorEntry
	ManifestErrors []ErrorEntry

	WeirdNames      []Diagnostic // header names without the error prefix
	HeaderPrimary   []Diagnostic // header entries the manifest does not confirm
	ManifestPrimary []Diagnostic // manifest entries the header does not confirm
	Registers       []Diagnostic
}

// Count returns the total number of diagnostics.
func (r *Result) Count() int {
	return len(r.WeirdNames) + len(r.HeaderPrimary) + len(r.ManifestPrimary) + len(r.Registers)
}

// Run loads the inputs, reconciles header and manifest errors in both
// directions and validates register names.
func Run(ctx context.Context, opts Options) (*Result, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = internal.OSFS{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = NoopLogger{}
	}

	ignore, err := loadIgnoreList(fsys, opts.IgnorePath)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "loaded ignore list", map[string]any{"path": opts.IgnorePath, "names": ignore.Len()})

	rawHeader, err := fsys.ReadFile(opts.HeaderPath)
	if err != nil {
		return nil, stageError(StageHeader, opts.HeaderPath, err)
	}
	headerErrors, weird, err := check.ParseHeader(string(rawHeader), check.HeaderOptions{
		Macro:  opts.ErrorMacro,
		Prefix: opts.ErrorPrefix,
		Ignore: ignore,
	})
	if err != nil {
		return nil, stageError(StageHeader, opts.HeaderPath, err)
	}
	logger.Info(ctx, "extracted header errors", map[string]any{"path": opts.HeaderPath, "entries": len(headerErrors)})

	rawManifest, err := fsys.ReadFile(opts.ManifestPath)
	if err != nil {
		return nil, stageError(StageManifest, opts.ManifestPath, err)
	}
	sets := opts.RegisterSets
	if sets == nil {
		sets = check.DefaultRegisterSets
	}
	manifest, err := check.ParseManifest(rawManifest, sets)
	if err != nil {
		return nil, stageError(StageManifest, opts.ManifestPath, err)
	}
	manifestErrors := manifest.ErrorEntries(opts.ErrorPrefix)
	logger.Info(ctx, "extracted manifest errors", map[string]any{"path": opts.ManifestPath, "entries": len(manifestErrors)})

	result := &Result{
		HeaderPath:      opts.HeaderPath,
		ManifestPath:    opts.ManifestPath,
		HeaderErrors:    headerErrors,
		ManifestErrors:  manifestErrors,
		WeirdNames:      weird,
		HeaderPrimary:   check.Reconcile(opts.HeaderPath, headerErrors, manifestErrors),
		ManifestPrimary: check.Reconcile(opts.ManifestPath, manifestErrors, headerErrors),
		Registers:       check.ValidateRegisterSets(manifest.RegisterSets),
	}
	internal.Debugf("run finished with %d diagnostics", result.Count())
	if n := result.Count(); n > 0 {
		logger.Warn(ctx, "drift found", map[string]any{"diagnostics": n})
	}
	return result, nil
}

func loadIgnoreList(fsys FileSystem, path string) (check.IgnoreSet, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return check.IgnoreSet{}, stageError(StageIgnoreList, path, err)
	}
	set, err := check.ParseIgnoreList(bytes.NewReader(data))
	if err != nil {
		return check.IgnoreSet{}, stageError(StageIgnoreList, path, err)
	}
	return set, nil
}
