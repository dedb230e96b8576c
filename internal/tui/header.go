package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// ASCII art constants for the taskdeck header.
const (
	// asciiArtLogo is the wide mode logo. Two rows of half-block glyphs.
	asciiArtLogo = `▀█▀ ▄▀█ █▀ █▄▀ █▀▄ █▀▀ █▀▀ █▄▀
 █  █▀█ ▄█ █ █ █▄▀ ██▄ █▄▄ █ █`

	// narrowHeader is the simple text header for narrow terminals.
	narrowHeader = "═══ TASKDECK ═══"

	// wideThreshold is the minimum terminal width for displaying the logo.
	wideThreshold = 60
)

// Header renders the taskdeck header component.
// Supports wide mode (logo) and narrow mode (simple text).
type Header struct {
	width int
}

// NewHeader creates a new Header with the specified terminal width.
// Width of 0 or less triggers narrow mode.
func NewHeader(width int) *Header {
	return &Header{width: width}
}

// Render returns the header string, centered for the current width.
func (h *Header) Render() string {
	if h.width >= wideThreshold {
		return h.renderWide()
	}
	return h.renderNarrow()
}

func (h *Header) renderWide() string {
	lines := strings.Split(asciiArtLogo, "\n")
	styledLines := make([]string, 0, len(lines))

	for i, line := range lines {
		colorIdx := min(i, len(LogoGradientColors)-1)
		style := lipgloss.NewStyle().Foreground(LogoGradientColors[colorIdx])
		styledLines = append(styledLines, centerText(style.Render(line), line, h.width))
	}

	return strings.Join(styledLines, "\n")
}

func (h *Header) renderNarrow() string {
	style := lipgloss.NewStyle().Foreground(ColorPrimary)
	return centerText(style.Render(narrowHeader), narrowHeader, h.width)
}

// centerText centers styled text based on the display width of the unstyled original.
func centerText(styled, original string, totalWidth int) string {
	textWidth := runewidth.StringWidth(original)
	if totalWidth <= 0 || textWidth >= totalWidth {
		return styled
	}
	padding := (totalWidth - textWidth) / 2
	if padding <= 0 {
		return styled
	}
	return strings.Repeat(" ", padding) + styled
}

// TerminalWidth returns the current terminal width.
// Returns 0 if width cannot be determined, which selects narrow mode.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint:gosec // G115: file descriptors fit in int
	if err != nil {
		return 0
	}
	return width
}

// RenderHeader renders the header at the specified width.
func RenderHeader(width int) string {
	return NewHeader(width).Render()
}
