package main

import "github.com/charmbracelet/lipgloss"

var (
	colorFg     = lipgloss.Color("#24292f")
	colorMuted  = lipgloss.Color("#656d76")
	colorAccent = lipgloss.Color("#0969da")
	colorError  = lipgloss.Color("#cf222e")
	colorOK     = lipgloss.Color("#1a7f37")
	colorWarn   = lipgloss.Color("#9a6700")
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(1, 2)
	frameHoverStyle = frameStyle.BorderForeground(colorAccent)

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorFg)
	contentStyle = lipgloss.NewStyle().Foreground(colorFg)
	metaStyle    = lipgloss.NewStyle().Foreground(colorMuted)

	arrowStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	arrowOffStyle = lipgloss.NewStyle().Foreground(colorMuted).Faint(true)

	dotStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	dotSelStyle = lipgloss.NewStyle().Foreground(colorAccent)

	mediaReadyStyle   = lipgloss.NewStyle().Foreground(colorOK)
	mediaLoadingStyle = lipgloss.NewStyle().Foreground(colorWarn)

	playingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorOK)
	pausedStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	stoppedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	statusStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
