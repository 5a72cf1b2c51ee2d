package slidez

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/zoobzio/capitan"
)

// WatchDeck watches a deck file and emits a freshly parsed deck whenever its
// contents change. The current deck is emitted immediately. Revisions that
// fail to parse or validate are skipped and reported through the DeckInvalid
// signal. The channel is closed when ctx is done.
//
// The parent directory is watched so editors that save by renaming a temp
// file over the deck are picked up.
func WatchDeck(ctx context.Context, path string) (<-chan *Deck, error) {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to watch deck %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch deck %s: %w", path, err)
	}

	out := make(chan *Deck)
	codec := CodecFor(path)

	go func() {
		defer close(out)
		defer watcher.Close()

		var last []byte
		emit := func() bool {
			data, err := os.ReadFile(path)
			if err != nil || bytes.Equal(data, last) {
				return true
			}
			last = data

			deck, err := ParseDeck(data, codec)
			if err != nil {
				capitan.Emit(ctx, DeckInvalid,
					KeyPath.Field(path),
					KeyFormat.Field(codec.ContentType()),
					KeyError.Field(err.Error()),
				)
				return true
			}
			capitan.Emit(ctx, DeckLoaded,
				KeyPath.Field(path),
				KeyFormat.Field(codec.ContentType()),
				KeySlider.Field(deck.ID),
				KeyCount.Field(len(deck.Slides)),
			)

			select {
			case out <- deck:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if !emit() {
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}
