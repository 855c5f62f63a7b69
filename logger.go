// logger.go
// User-facing logging infrastructure for ljmcheck.
//
// This file defines the Logger interface and adapters for the progress and
// summary logs a run emits. Findings themselves are never logged; they are
// returned in the Result. Internal debugging is handled separately by
// internal.Debugf.

package ljmcheck

import (
	"context"
	"io"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-log/tfsdklog"
)

// Logger is the interface for user-facing logs emitted by a run.
type Logger interface {
	Debug(ctx context.Context, msg string, keyvals map[string]any)
	Info(ctx context.Context, msg string, keyvals map[string]any)
	Warn(ctx context.Context, msg string, keyvals map[string]any)
	Error(ctx context.Context, msg string, keyvals map[string]any)
}

// ParseLevel maps a config log level to an hclog level. "silent" disables logs.
func ParseLevel(level string) hclog.Level {
	if level == "silent" {
		return hclog.Off
	}
	return hclog.LevelFromString(level)
}

// NoopLogger discards everything.
type NoopLogger struct{}

func (NoopLogger) Debug(context.Context, string, map[string]any) {}
func (NoopLogger) Info(context.Context, string, map[string]any)  {}
func (NoopLogger) Warn(context.Context, string, map[string]any)  {}
func (NoopLogger) Error(context.Context, string, map[string]any) {}

// HCLogger is an adapter that emits human readable logs through go-hclog.
type HCLogger struct {
	log hclog.Logger
}

// NewHCLogger returns an HCLogger writing to w at the given level.
func NewHCLogger(w io.Writer, level hclog.Level) *HCLogger {
	return &HCLogger{log: hclog.New(&hclog.LoggerOptions{
		Name:   "ljmcheck",
		Level:  level,
		Output: w,
	})}
}

func (l *HCLogger) Debug(_ context.Context, msg string, keyvals map[string]any) {
	l.log.Debug(msg, flatten(keyvals)...)
}
func (l *HCLogger) Info(_ context.Context, msg string, keyvals map[string]any) {
	l.log.Info(msg, flatten(keyvals)...)
}
func (l *HCLogger) Warn(_ context.Context, msg string, keyvals map[string]any) {
	l.log.Warn(msg, flatten(keyvals)...)
}
func (l *HCLogger) Error(_ context.Context, msg string, keyvals map[string]any) {
	l.log.Error(msg, flatten(keyvals)...)
}

// flatten turns keyvals into hclog's alternating key/value arguments, sorted by key.
func flatten(keyvals map[string]any) []any {
	keys := make([]string, 0, len(keyvals))
	for k := range keyvals {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	args := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, k, keyvals[k])
	}
	return args
}

// TFLogLogger is an adapter that emits JSON logs using Terraform's tflog
// package. The context passed to each call must carry a root logger, see
// WithTFLog.
type TFLogLogger struct{}

// WithTFLog returns a context carrying a tflog root logger at level.
func WithTFLog(ctx context.Context, level hclog.Level) context.Context {
	return tfsdklog.NewRootProviderLogger(ctx,
		tfsdklog.WithLogName("ljmcheck"),
		tfsdklog.WithLevel(level),
	)
}

func (l TFLogLogger) Debug(ctx context.Context, msg string, keyvals map[string]any) {
	tflog.Debug(ctx, msg, keyvals)
}
func (l TFLogLogger) Info(ctx context.Context, msg string, keyvals map[string]any) {
	tflog.Info(ctx, msg, keyvals)
}
func (l TFLogLogger) Warn(ctx context.Context, msg string, keyvals map[string]any) {
	tflog.Warn(ctx, msg, keyvals)
}
func (l TFLogLogger) Error(ctx context.Context, msg string, keyvals map[string]any) {
	tflog.Error(ctx, msg, keyvals)
}
