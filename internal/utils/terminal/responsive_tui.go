package terminal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ResponsiveTUIHelper tracks the terminal size for a bubbletea model and
// derives layout widths from it.
type ResponsiveTUIHelper struct {
	width  int
	height int
}

// NewResponsiveTUIHelper creates a new responsive TUI helper with default dimensions
func NewResponsiveTUIHelper() *ResponsiveTUIHelper {
	return &ResponsiveTUIHelper{
		width:  80,
		height: 24,
	}
}

// SetSize updates the terminal dimensions
func (h *ResponsiveTUIHelper) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// GetSize returns the current terminal dimensions
func (h *ResponsiveTUIHelper) GetSize() (int, int) {
	return h.width, h.height
}

// HandleWindowSizeMsg records the size carried by a tea.WindowSizeMsg.
func (h *ResponsiveTUIHelper) HandleWindowSizeMsg(msg tea.WindowSizeMsg) {
	h.SetSize(msg.Width, msg.Height)
}

// GetContentWidth returns the available width for content (accounting for borders)
func (h *ResponsiveTUIHelper) GetContentWidth() int {
	contentWidth := h.width - 8
	if contentWidth < 40 {
		contentWidth = 40
	}
	return contentWidth
}

// GetResponsiveSectionStyle returns a section style that adapts to terminal width
func (h *ResponsiveTUIHelper) GetResponsiveSectionStyle(baseStyle lipgloss.Style) lipgloss.Style {
	maxWidth := h.width - 4
	if maxWidth < 40 {
		maxWidth = 40
	}
	return baseStyle.Width(maxWidth)
}

// Compact reports whether the terminal is too small for the full layout.
func (h *ResponsiveTUIHelper) Compact() bool {
	return h.width < 80 || h.height < 25
}

// TruncateContentToHeight ensures content fits within terminal height
func (h *ResponsiveTUIHelper) TruncateContentToHeight(content string) string {
	lines := strings.Split(content, "\n")
	if h.height < 3 || len(lines) <= h.height-1 {
		return content
	}

	lines = lines[:h.height-2]
	lines = append(lines, lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")).
		Render("... (content truncated)"))
	return strings.Join(lines, "\n")
}
