// Package terminal implements the game's terminal on top of a tcell screen:
// raw key reads, text written at a tracked position, cursor placement and clearing.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

const tabWidth = 8

type Screen struct {
	screen tcell.Screen
	styles map[rune]tcell.Style
	closed sync.Once

	// write position
	col, row int
}

type Option func(*Screen)

// WithColor draws X and O in their own colors.
func WithColor() Option {
	return func(s *Screen) {
		s.styles['X'] = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		s.styles['O'] = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	}
}

// New opens the controlling terminal.
func New(opts ...Option) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("could not create screen: %w", err)
	}

	return NewWithScreen(screen, opts...)
}

// NewWithScreen initializes and takes ownership of screen.
func NewWithScreen(screen tcell.Screen, opts ...Option) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("could not init screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	s := &Screen{
		screen: screen,
		styles: make(map[rune]tcell.Style),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// ReadKey blocks until a key is pressed. It returns apperror.ErrInputClosed once the screen is closed.
func (s *Screen) ReadKey() (Key, error) {
	s.screen.Show()

	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return KeyOther, apperror.ErrInputClosed
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			return mapKey(ev), nil
		}
	}
}

// Write draws text from the current write position and advances it.
func (s *Screen) Write(text string) {
	for _, r := range text {
		switch r {
		case '\n':
			s.col = 0
			s.row++
		case '\t':
			s.col += tabWidth - s.col%tabWidth
		default:
			style, ok := s.styles[r]
			if !ok {
				style = tcell.StyleDefault
			}
			s.screen.SetContent(s.col, s.row, r, nil, style)
			s.col++
		}
	}
}

func (s *Screen) Clear() {
	s.screen.Clear()
	s.col, s.row = 0, 0
}

// SetCursorPosition moves both the write position and the visible cursor.
func (s *Screen) SetCursorPosition(x, y int) {
	s.col, s.row = x, y
	s.screen.ShowCursor(x, y)
}

func (s *Screen) CursorPosition() (int, int) {
	return s.col, s.row
}

// Close restores the terminal. Safe to call from another goroutine, a blocked ReadKey returns.
func (s *Screen) Close() {
	s.closed.Do(s.screen.Fini)
}
