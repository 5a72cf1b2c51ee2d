package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zoobzio/slidez"
)

// eventMsg carries a slider event into the bubbletea loop, tagged with the
// slider that published it.
type eventMsg struct {
	source *slidez.Slider
	event  slidez.Event
}

// deckMsg carries a reloaded deck.
type deckMsg struct {
	deck *slidez.Deck
}

// subscribe forwards every event of s to ch. Events are dropped when the
// loop falls behind; the view re-reads slider state on every render.
func subscribe(s *slidez.Slider, ch chan<- eventMsg) {
	s.Bus().SubscribeAll(func(_ context.Context, e slidez.Event) {
		select {
		case ch <- eventMsg{source: s, event: e}:
		default:
		}
	})
}

func waitForEvent(ch <-chan eventMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func waitForDeck(ch <-chan *slidez.Deck) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		d, ok := <-ch
		if !ok {
			return nil
		}
		return deckMsg{deck: d}
	}
}
