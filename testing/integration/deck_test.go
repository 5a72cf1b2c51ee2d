package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zoobzio/slidez"
)

const deckV1 = `id: hero
config:
  carousel: false
  transition_duration_ms: 0
slides:
  - content: one
  - content: two
`

const deckV2 = `id: hero
config:
  carousel: true
  transition_duration_ms: 0
slides:
  - content: one
  - content: two
  - content: three
`

func receive(t *testing.T, decks <-chan *slidez.Deck) *slidez.Deck {
	t.Helper()
	select {
	case d, ok := <-decks:
		if !ok {
			t.Fatal("deck channel closed")
		}
		return d
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for deck")
		return nil
	}
}

func TestDeckWatcher_RebuildsSlider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(deckV1), 0o600); err != nil {
		t.Fatalf("failed to write deck: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	decks, err := slidez.WatchDeck(ctx, path)
	if err != nil {
		t.Fatalf("WatchDeck() error = %v", err)
	}

	first, err := receive(t, decks).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer first.Close()
	first.Start(ctx)

	if first.ID() != "hero" || first.Len() != 2 {
		t.Fatalf("unexpected slider %s with %d slides", first.ID(), first.Len())
	}
	if first.Request(slidez.Prev()) {
		t.Error("expected boundary rejection without carousel")
	}

	if err := os.WriteFile(path, []byte(deckV2), 0o600); err != nil {
		t.Fatalf("failed to update deck: %v", err)
	}

	second, err := receive(t, decks).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer second.Close()
	second.Start(ctx)

	if second.Len() != 3 {
		t.Fatalf("expected 3 slides, got %d", second.Len())
	}
	if !second.Request(slidez.Prev()) {
		t.Fatal("expected carousel wrap to be accepted")
	}
	if !waitFor(t, 2*time.Second, func() bool { return second.Index() == 2 }) {
		t.Errorf("expected wrap to slide 2, got %d", second.Index())
	}
}

func TestDeckWatcher_RegistryPlayback(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"intro", "outro"} {
		body := "id: " + name + "\nslides:\n  - content: a\n  - content: b\n"
		if err := os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o600); err != nil {
			t.Fatalf("failed to write deck: %v", err)
		}
	}

	reg := slidez.NewRegistry()
	defer reg.Close()

	for _, name := range []string{"intro", "outro"} {
		deck, err := slidez.LoadDeck(filepath.Join(dir, name+".yaml"))
		if err != nil {
			t.Fatalf("LoadDeck() error = %v", err)
		}
		s, err := deck.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if err := reg.Add(s); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		s.Start(context.Background())
	}

	n, err := reg.Play("*")
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 sliders played, got %d", n)
	}

	n, err = reg.Stop("intro")
	if err != nil || n != 1 {
		t.Fatalf("Stop() = %d, %v", n, err)
	}
	intro, _ := reg.Get("intro")
	outro, _ := reg.Get("outro")
	if intro.Playing() {
		t.Error("intro should be stopped")
	}
	if !outro.Playing() {
		t.Error("outro should still be playing")
	}
}
