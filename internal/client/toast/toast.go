// Package toast prints short status notifications to a terminal.
package toast

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type Level int

const (
	LevelDefault Level = iota
	LevelSuccess
	LevelError
	LevelInfo
	LevelWarning
	LevelLoading
)

// ID identifies a shown toast so it can be dismissed later.
type ID int

// Options decorate a toast.
type Options struct {
	Description string
}

type Notifier interface {
	Show(msg string, opts ...Options) ID
	Success(msg string, opts ...Options) ID
	Error(msg string, opts ...Options) ID
	Info(msg string, opts ...Options) ID
	Warning(msg string, opts ...Options) ID
	Loading(msg string, opts ...Options) ID
	// Dismiss removes a pending toast; a zero ID dismisses all of them.
	Dismiss(id ID)
}

var (
	colorSuccess = lipgloss.Color("#8BC34A")
	colorError   = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
	colorInfo    = lipgloss.Color("#2196F3")
	colorMuted   = lipgloss.Color("#6b7280")
)

type styles struct {
	levels      map[Level]lipgloss.Style
	description lipgloss.Style
}

var icons = map[Level]string{
	LevelDefault: "•",
	LevelSuccess: "✓",
	LevelError:   "✗",
	LevelInfo:    "i",
	LevelWarning: "!",
	LevelLoading: "…",
}

func newStyles(r *lipgloss.Renderer) styles {
	base := r.NewStyle().Bold(true)
	return styles{
		levels: map[Level]lipgloss.Style{
			LevelDefault: base,
			LevelSuccess: base.Foreground(colorSuccess),
			LevelError:   base.Foreground(colorError),
			LevelInfo:    base.Foreground(colorInfo),
			LevelWarning: base.Foreground(colorWarning),
			LevelLoading: base.Foreground(colorMuted).Italic(true),
		},
		description: r.NewStyle().Foreground(colorMuted).PaddingLeft(2),
	}
}

// Terminal writes toasts to w, styled for whatever color profile w supports.
type Terminal struct {
	mu      sync.Mutex
	w       io.Writer
	styles  styles
	next    ID
	pending map[ID]string
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		w:       w,
		styles:  newStyles(lipgloss.NewRenderer(w)),
		pending: make(map[ID]string),
	}
}

func (t *Terminal) emit(level Level, msg string, opts []Options) ID {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	id := t.next
	if level == LevelLoading {
		t.pending[id] = msg
	}

	var b strings.Builder
	b.WriteString(t.styles.levels[level].Render(icons[level] + " " + msg))
	for _, o := range opts {
		if o.Description != "" {
			b.WriteString("\n")
			b.WriteString(t.styles.description.Render(o.Description))
		}
	}
	fmt.Fprintln(t.w, b.String())
	return id
}

func (t *Terminal) Show(msg string, opts ...Options) ID {
	return t.emit(LevelDefault, msg, opts)
}

func (t *Terminal) Success(msg string, opts ...Options) ID {
	return t.emit(LevelSuccess, msg, opts)
}

func (t *Terminal) Error(msg string, opts ...Options) ID {
	return t.emit(LevelError, msg, opts)
}

func (t *Terminal) Info(msg string, opts ...Options) ID {
	return t.emit(LevelInfo, msg, opts)
}

func (t *Terminal) Warning(msg string, opts ...Options) ID {
	return t.emit(LevelWarning, msg, opts)
}

func (t *Terminal) Loading(msg string, opts ...Options) ID {
	return t.emit(LevelLoading, msg, opts)
}

func (t *Terminal) Dismiss(id ID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id == 0 {
		clear(t.pending)
		return
	}
	delete(t.pending, id)
}

// Pending returns the number of loading toasts not yet dismissed.
func (t *Terminal) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
