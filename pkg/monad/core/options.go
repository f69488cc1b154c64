package core

import (
	"context"
	"log/slog"
)

type OptionKey string

const (
	AwaitOptionKey  OptionKey = "await_options"
	LoggerOptionKey OptionKey = "logger_options"
)

// AwaitPolicy decides how awaiting a None or a Left settles
type AwaitPolicy int

const (
	// RejectEmpty settles immediately with a named error
	RejectEmpty AwaitPolicy = iota
	// BlockEmpty suspends until the context is done
	BlockEmpty
)

func (p AwaitPolicy) String() string {
	switch p {
	case RejectEmpty:
		return "reject"
	case BlockEmpty:
		return "block"
	default:
		return "unknown"
	}
}

type AwaitOptions struct {
	Policy AwaitPolicy
}

type LoggerOptions struct {
	Logger *slog.Logger
}

func WithAwaitPolicy(ctx context.Context, policy AwaitPolicy) context.Context {
	return context.WithValue(ctx, AwaitOptionKey, AwaitOptions{Policy: policy})
}

func GetAwaitPolicy(ctx context.Context, defaultPolicy AwaitPolicy) AwaitPolicy {
	options, ok := ctx.Value(AwaitOptionKey).(AwaitOptions)
	if ok {
		return options.Policy
	}
	return defaultPolicy
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// LoggerFrom returns the context logger or slog.Default
func LoggerFrom(ctx context.Context) *slog.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return slog.Default()
}
