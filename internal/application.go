package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/othello-desktop/internal/apperror"
	"github.com/rocketscienceinc/othello-desktop/internal/config"
	"github.com/rocketscienceinc/othello-desktop/internal/entity"
	"github.com/rocketscienceinc/othello-desktop/internal/ui"
	"github.com/rocketscienceinc/othello-desktop/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if conf.BoardSize < 4 || conf.BoardSize%2 != 0 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, conf.BoardSize)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	game := entity.NewGame(conf.BoardSize)
	session := usecase.NewGameSession(logger, game)

	userInterface, err := ui.New(logger, session)
	if err != nil {
		return fmt.Errorf("could not take over the terminal: %w", err)
	}

	log.Info("starting game", "board_size", conf.BoardSize)

	if err = userInterface.Run(ctx); err != nil {
		return fmt.Errorf("event loop error: %w", err)
	}

	printSummary(os.Stdout, game)
	log.Info("game closed")

	return nil
}

// printSummary - prints the final standing to stdout once the game screen
// has been released.
func printSummary(writer io.Writer, game *entity.Game) {
	out := termenv.NewOutput(writer)
	black, white := game.Score()

	fmt.Fprintf(out, "%s · %s %d · %s %d\n",
		out.String("final score").Bold(),
		out.String("black").Foreground(out.Color("8")), black,
		out.String("white").Foreground(out.Color("15")), white,
	)

	switch {
	case !game.IsFinished():
		fmt.Fprintln(out, "game left unfinished")
	case game.Winner == entity.PlayerTie:
		fmt.Fprintln(out, out.String("it is a draw").Bold())
	case game.Winner == entity.PlayerBlack:
		fmt.Fprintln(out, out.String("black wins").Bold())
	default:
		fmt.Fprintln(out, out.String("white wins").Bold())
	}
}
