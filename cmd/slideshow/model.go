package main

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zoobzio/slidez"
)

// Terminal cells are converted to approximate pixels so drag distances
// compare against the same swipe threshold as touch input.
const (
	cellWidth  = 8
	cellHeight = 16
)

// chromeRows is the number of rows below the frame: status and help.
const chromeRows = 2

var markup = regexp.MustCompile(`<[^>]*>`)

type model struct {
	ctx    context.Context
	deck   *slidez.Deck
	slider *slidez.Slider
	opts   []slidez.Option
	cache  *slidez.ImageCache
	events chan eventMsg
	decks  <-chan *slidez.Deck

	keys keyMap
	help help.Model

	width, height int
	hovering      bool
	dragging      bool
	shown         map[int]bool
	status        string
	err           error
}

// newModel builds the slider for deck and starts it. opts are applied to
// every slider the model builds, including after a reload.
func newModel(ctx context.Context, deck *slidez.Deck, cache *slidez.ImageCache, decks <-chan *slidez.Deck, opts ...slidez.Option) (model, error) {
	m := model{
		ctx:    ctx,
		cache:  cache,
		opts:   append([]slidez.Option{slidez.WithCache(cache)}, opts...),
		events: make(chan eventMsg, 64),
		decks:  decks,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	if err := m.load(deck); err != nil {
		return model{}, err
	}
	return m, nil
}

// load replaces the running slider with one built from deck.
func (m *model) load(deck *slidez.Deck) error {
	next, err := deck.Build(m.opts...)
	if err != nil {
		return err
	}
	if m.slider != nil {
		m.slider.Close()
	}
	m.deck = deck
	m.slider = next
	m.shown = make(map[int]bool)
	m.hovering = false
	m.dragging = false
	subscribe(next, m.events)
	next.Start(m.ctx)
	return nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), waitForDeck(m.decks))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case eventMsg:
		m.observe(msg)
		return m, waitForEvent(m.events)

	case deckMsg:
		if !reflect.DeepEqual(msg.deck, m.deck) {
			if err := m.load(msg.deck); err != nil {
				m.err = err
			} else {
				m.err = nil
				m.status = "deck reloaded"
			}
		}
		return m, waitForDeck(m.decks)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.slider.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		m.slider.Navigate(slidez.Prev())

	case key.Matches(msg, m.keys.Next):
		m.slider.Navigate(slidez.Next())

	case key.Matches(msg, m.keys.Jump):
		if i, err := strconv.Atoi(msg.String()); err == nil {
			m.slider.Navigate(slidez.Index(i))
		}

	case key.Matches(msg, m.keys.Toggle):
		if !m.slider.Config().SlideshowControls {
			break
		}
		if m.slider.Playing() || m.slider.PausedByHover() {
			m.slider.Stop()
		} else if m.slider.Affordances().Play {
			m.slider.Play()
		}
	}
	return m, nil
}

// handleMouse maps pointer presence over the frame to hover and a left
// button drag to a touch gesture.
func (m *model) handleMouse(msg tea.MouseMsg) {
	inside := m.height == 0 || msg.Y < m.height-chromeRows
	if inside != m.hovering {
		m.hovering = inside
		if inside {
			m.slider.PointerEnter()
		} else {
			m.slider.PointerLeave()
		}
	}

	p := slidez.Point{X: float64(msg.X * cellWidth), Y: float64(msg.Y * cellHeight)}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = true
		m.slider.TouchStart(p)
	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		m.slider.TouchEnd(p)
	}
}

// observe records events from the current slider. Events from a slider
// replaced by a reload are ignored, even when the new deck reuses its ID.
func (m *model) observe(msg eventMsg) {
	if msg.source != m.slider {
		return
	}
	e := msg.event
	switch e.Topic {
	case slidez.TopicSlideShown:
		m.shown[e.Index] = true
		m.status = fmt.Sprintf("slide %d shown", e.Index+1)
	case slidez.TopicChangingSlide:
		m.status = fmt.Sprintf("slide %d → %d", e.PrevIndex+1, e.Index+1)
	case slidez.TopicNewActiveSlide:
		m.status = fmt.Sprintf("slide %d active", e.Index+1)
	case slidez.TopicPlaySlideshow:
		m.status = "slideshow playing"
	case slidez.TopicStopSlideshow:
		m.status = "slideshow stopped"
	}
}

func (m model) View() string {
	if m.slider == nil {
		return ""
	}
	snap := m.slider.Snapshot()
	slide, _ := m.slider.Slide(snap.Incoming)
	aff := m.slider.Affordances()

	title := m.deck.ID
	if title == "" {
		title = "slideshow"
	}
	header := titleStyle.Render(title) + metaStyle.Render(
		fmt.Sprintf("  %d/%d  %s  %s", snap.Incoming+1, m.slider.Len(), slide.Type, m.slider.Config().TransitionStyle),
	)

	body := contentStyle.Render(plainText(slide.Content))
	if slide.HasMedia() {
		body += "\n\n" + m.renderMedia(slide)
	}

	nav := m.renderDots(snap.Incoming)
	if m.slider.Config().NavArrows {
		nav = renderArrow("‹", aff.Prev) + "  " + nav + "  " + renderArrow("›", aff.Next)
	}

	frame := frameStyle
	if m.hovering {
		frame = frameHoverStyle
	}
	if m.width > 0 {
		frame = frame.Width(m.width - 2)
	}
	if m.height > 0 {
		frame = frame.Height(max(m.height-chromeRows-2, 1))
	}
	view := frame.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", nav))

	status := m.renderPlayback(snap) + statusStyle.Render("  "+m.status)
	if m.err != nil {
		status = errorStyle.Render(m.err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, status, m.help.View(m.keys))
}

func (m model) renderMedia(slide slidez.Slide) string {
	if m.shown[slide.Index] || m.cache.Loaded(slide.MediaURL) {
		return mediaReadyStyle.Render("▣ " + slide.MediaURL)
	}
	return mediaLoadingStyle.Render("◌ loading " + slide.MediaURL)
}

func (m model) renderDots(active int) string {
	if !m.slider.Config().NavDots {
		return ""
	}
	dots := make([]string, m.slider.Len())
	for i := range dots {
		if i == active {
			dots[i] = dotSelStyle.Render("●")
		} else {
			dots[i] = dotStyle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func (m model) renderPlayback(snap slidez.SliderState) string {
	switch {
	case snap.Playing:
		return playingStyle.Render("▶ playing")
	case snap.PausedByHover:
		return pausedStyle.Render("❚❚ paused")
	default:
		return stoppedStyle.Render("■ stopped")
	}
}

func renderArrow(glyph string, live bool) string {
	if live {
		return arrowStyle.Render(glyph)
	}
	return arrowOffStyle.Render(glyph)
}

// plainText strips markup for terminal display.
func plainText(content string) string {
	return strings.TrimSpace(markup.ReplaceAllString(content, ""))
}
