package ui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/othello-desktop/internal/usecase"
)

// UI - the terminal front end. It owns the tcell screen, translates key
// presses and mouse clicks into session actions, and redraws after each one.
type UI struct {
	logger  *slog.Logger
	screen  tcell.Screen
	session *usecase.GameSession
	board   geometry

	cursorRow  int
	cursorCol  int
	showScores bool
	message    string
}

func New(logger *slog.Logger, session *usecase.GameSession) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse()

	size := session.Game().Size

	return &UI{
		logger:    logger.With("component", "ui"),
		screen:    screen,
		session:   session,
		board:     geometry{size: size},
		cursorRow: size/2 - 1,
		cursorCol: size/2 - 1,
	}, nil
}

// Run - the event loop. Blocks until the player quits or the context is
// canceled, and releases the terminal before returning.
func (that *UI) Run(ctx context.Context) error {
	defer that.screen.Fini()

	go func() {
		<-ctx.Done()
		_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	that.draw()

	for {
		switch event := that.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if quit := that.handleKey(event); quit {
				that.logger.Info("quitting the game")
				return nil
			}
		case *tcell.EventMouse:
			that.handleMouse(event)
		case *tcell.EventResize:
			that.screen.Sync()
		case *tcell.EventInterrupt:
			return nil
		}

		that.draw()
	}
}
