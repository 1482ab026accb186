package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"othello/game"
	"othello/searcher"

	"github.com/muesli/termenv"
)

type cli struct {
	out     *termenv.Output
	scanner *bufio.Scanner
	human   game.Disc
	cpu     *searcher.Minimax
}

func main() {
	size := flag.Int("size", game.DefaultBoardSize, "board size (even, at least 4)")
	difficulty := flag.Int("difficulty", 4, "cpu difficulty 1-5")
	white := flag.Bool("white", false, "play as White (CPU moves first)")
	flag.Parse()

	human := game.Black
	if *white {
		human = game.White
	}

	state, err := game.NewGameState(*size)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	c := &cli{
		out:     termenv.NewOutput(os.Stdout),
		scanner: bufio.NewScanner(os.Stdin),
		human:   human,
		cpu:     searcher.New(searcher.ClampDifficulty(*difficulty)),
	}
	c.play(state)
}

func (c *cli) play(state *game.GameState) {
	fmt.Printf("You are %s, CPU is %s. Enter moves as 'row col', 'q' quits.\n\n",
		c.human, c.human.Opponent())

	for {
		if _, over := state.Winner(); over {
			break
		}

		moves := state.LegalMoves()
		if len(moves) == 0 {
			fmt.Printf("No valid moves for %s. Passing.\n", state.Current)
			state = state.Pass()
			continue
		}

		c.render(state.Board, moves)
		black, white := state.Board.Score()
		fmt.Printf("Score - Black: %d, White: %d\n", black, white)

		if state.Current == c.human {
			next, quit := c.humanTurn(state)
			if quit {
				return
			}
			state = next
		} else {
			state = c.cpuTurn(state)
		}
	}

	c.finish(state)
}

func (c *cli) humanTurn(state *game.GameState) (*game.GameState, bool) {
	for {
		fmt.Print("Your move (row col): ")
		if !c.scanner.Scan() {
			return state, true
		}
		input := strings.TrimSpace(c.scanner.Text())
		if strings.EqualFold(input, "q") {
			return state, true
		}

		var row, col int
		if _, err := fmt.Sscanf(input, "%d %d", &row, &col); err != nil {
			fmt.Println("Enter two numbers, e.g. '3 4', or 'q' to quit.")
			continue
		}
		next, ok := state.Play(game.Move{Row: row, Col: col})
		if !ok {
			fmt.Println("Invalid move. Try again.")
			continue
		}
		return next, false
	}
}

func (c *cli) cpuTurn(state *game.GameState) *game.GameState {
	fmt.Printf("CPU (%s) is thinking...\n", state.Current)
	move, ok := c.cpu.FindMove(state.Board, state.Current)
	if !ok {
		fmt.Println("CPU has no valid moves. Passing.")
		return state.Pass()
	}
	next, _ := state.Play(move)
	fmt.Printf("CPU played %s\n\n", move)
	return next
}

func (c *cli) finish(state *game.GameState) {
	c.render(state.Board, nil)
	black, white := state.Board.Score()
	fmt.Printf("Final score - Black: %d, White: %d\n", black, white)

	winner, _ := state.Winner()
	switch {
	case winner == game.Empty:
		fmt.Println("It's a tie!")
	case winner == c.human:
		fmt.Println("You won!")
	default:
		fmt.Println("CPU won.")
	}
}

// render draws the board with colored discs; legal moves for the player to
// move show as dimmed markers.
func (c *cli) render(b *game.Board, legal []game.Move) {
	hints := make(map[game.Move]bool, len(legal))
	for _, m := range legal {
		hints[m] = true
	}

	fmt.Print("   ")
	for col := 0; col < b.Size(); col++ {
		fmt.Printf("%2d", col)
	}
	fmt.Println()

	for row := 0; row < b.Size(); row++ {
		fmt.Printf("%2d ", row)
		for col := 0; col < b.Size(); col++ {
			fmt.Print(" ")
			switch b.Cell(row, col) {
			case game.Black:
				fmt.Print(c.out.String("●").Foreground(c.out.Color("0")).String())
			case game.White:
				fmt.Print(c.out.String("●").Foreground(c.out.Color("15")).String())
			default:
				if hints[game.Move{Row: row, Col: col}] {
					fmt.Print(c.out.String("·").Foreground(c.out.Color("10")).String())
				} else {
					fmt.Print(c.out.String("·").Faint().String())
				}
			}
		}
		fmt.Println()
	}
}
