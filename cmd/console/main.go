// Command console plays a local two-player game in the terminal.
// Moves are entered as two algebraic squares ("e2 e4"); the loop runs
// until a king is captured or the player types quit.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pseudo-shadow/chess-oopc/internal/engine"
	"github.com/pseudo-shadow/chess-oopc/internal/notation"
	"github.com/pseudo-shadow/chess-oopc/internal/render"
)

func main() {
	fmt.Println("========== Chess ==========")
	fmt.Println("Enter moves in algebraic notation (e.g., e2 e4)")
	fmt.Println("Enter 'quit' to exit")

	game := engine.NewGame()
	scanner := bufio.NewScanner(os.Stdin)

	for !game.IsGameOver() {
		fmt.Print(render.Text(game))
		fmt.Print("Enter move: ")

		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" {
			break
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Println("Invalid input format. Use 'from to' (e.g., e2 e4).")
			continue
		}

		from, err := notation.ParseSquare(fields[0])
		if err != nil {
			fmt.Println("Invalid notation. Please use algebraic notation (e.g., e2 to e4).")
			continue
		}
		to, err := notation.ParseSquare(fields[1])
		if err != nil {
			fmt.Println("Invalid notation. Please use algebraic notation (e.g., e2 to e4).")
			continue
		}

		if _, err := game.AttemptMove(from, to); err != nil {
			fmt.Println(rejectionMessage(game, err))
		}
	}

	if game.IsGameOver() {
		fmt.Print(render.Text(game))
		fmt.Println("Game over!")
	}
	fmt.Println("Thanks for playing!")
}

func rejectionMessage(game *engine.Game, cause error) string {
	switch {
	case errors.Is(cause, engine.ErrOutOfRange):
		return "Invalid coordinates."
	case errors.Is(cause, engine.ErrNoPieceAtSource):
		return "No piece at that square."
	case errors.Is(cause, engine.ErrWrongTurn):
		side := "White"
		if game.ToMove() == engine.Black {
			side = "Black"
		}
		return fmt.Sprintf("It's %s's turn.", side)
	case errors.Is(cause, engine.ErrFriendlyCapture):
		return "Cannot capture your own piece."
	case errors.Is(cause, engine.ErrIllegalMove):
		return "Invalid move for that piece."
	}
	return cause.Error()
}
