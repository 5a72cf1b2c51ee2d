package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/slidez"
)

// openLogger writes text logs to path, or discards them when path is empty.
// The terminal belongs to the slideshow, so logs never go to stdout.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log %s: %w", path, err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

// hookLogging routes slider signals to logger.
func hookLogging(logger *slog.Logger) {
	capitan.Hook(slidez.TransitionCompleted, func(ctx context.Context, e *capitan.Event) {
		id, _ := slidez.KeySlider.From(e)
		index, _ := slidez.KeyIndex.From(e)
		logger.InfoContext(ctx, "slide active", "slider", id, "index", index)
	})

	capitan.Hook(slidez.TransitionRejected, func(ctx context.Context, e *capitan.Event) {
		id, _ := slidez.KeySlider.From(e)
		reason, _ := slidez.KeyReason.From(e)
		target, _ := slidez.KeyDirection.From(e)
		logger.DebugContext(ctx, "request rejected", "slider", id, "target", target, "reason", reason)
	})

	capitan.Hook(slidez.SlideshowPlayed, func(ctx context.Context, e *capitan.Event) {
		id, _ := slidez.KeySlider.From(e)
		period, _ := slidez.KeyPeriod.From(e)
		logger.InfoContext(ctx, "slideshow playing", "slider", id, "period", period)
	})

	capitan.Hook(slidez.SlideshowStopped, func(ctx context.Context, e *capitan.Event) {
		id, _ := slidez.KeySlider.From(e)
		logger.InfoContext(ctx, "slideshow stopped", "slider", id)
	})

	capitan.Hook(slidez.SlideshowSuspended, func(ctx context.Context, e *capitan.Event) {
		id, _ := slidez.KeySlider.From(e)
		logger.DebugContext(ctx, "slideshow suspended", "slider", id)
	})

	capitan.Hook(slidez.SlideshowResumed, func(ctx context.Context, e *capitan.Event) {
		id, _ := slidez.KeySlider.From(e)
		logger.DebugContext(ctx, "slideshow resumed", "slider", id)
	})

	capitan.Hook(slidez.MediaLoaded, func(ctx context.Context, e *capitan.Event) {
		url, _ := slidez.KeyURL.From(e)
		latency, _ := slidez.KeyLatency.From(e)
		logger.InfoContext(ctx, "media loaded", "url", url, "latency", latency)
	})

	capitan.Hook(slidez.MediaLoadFailed, func(ctx context.Context, e *capitan.Event) {
		url, _ := slidez.KeyURL.From(e)
		errMsg, _ := slidez.KeyError.From(e)
		logger.WarnContext(ctx, "media load failed", "url", url, "error", errMsg)
	})

	capitan.Hook(slidez.DeckLoaded, func(ctx context.Context, e *capitan.Event) {
		path, _ := slidez.KeyPath.From(e)
		format, _ := slidez.KeyFormat.From(e)
		count, _ := slidez.KeyCount.From(e)
		logger.InfoContext(ctx, "deck loaded", "path", path, "format", format, "slides", count)
	})

	capitan.Hook(slidez.DeckInvalid, func(ctx context.Context, e *capitan.Event) {
		path, _ := slidez.KeyPath.From(e)
		format, _ := slidez.KeyFormat.From(e)
		errMsg, _ := slidez.KeyError.From(e)
		logger.WarnContext(ctx, "deck rejected", "path", path, "format", format, "error", errMsg)
	})

	capitan.Hook(slidez.SliderClosed, func(ctx context.Context, e *capitan.Event) {
		id, _ := slidez.KeySlider.From(e)
		logger.DebugContext(ctx, "slider closed", "slider", id)
	})
}
