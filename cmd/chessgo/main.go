// Command chessgo is a demonstration CLI over the chessgo engine: it can
// print a position, run a perft node-count check, or play an interactive
// game against a toy fixed-depth negamax search. Grounded on main.go's
// trivial bitboard-printing demo and internal/perft.go's flag-driven perft
// runner, extended into real subcommands now that the engine underneath
// has something worth driving.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/treepeck/chessgo/board"
	"github.com/treepeck/chessgo/format"
	"github.com/treepeck/chessgo/game"
	"github.com/treepeck/chessgo/internal/perft"
	"github.com/treepeck/chessgo/notation"
	"github.com/treepeck/chessgo/squareset"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "print":
		runPrint(os.Args[2:])
	case "perft":
		runPerft(os.Args[2:])
	case "play":
		runPlay(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: chessgo <print|perft|play> [flags]")
}

func runPrint(args []string) {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	fenStr := fs.String("fen", game.StartFEN, "FEN string to print")
	fs.Parse(args)

	g, err := game.FromFEN(*fenStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid FEN:", err)
		os.Exit(1)
	}
	fmt.Print(format.Game(g))
}

func runPerft(args []string) {
	fs := flag.NewFlagSet("perft", flag.ExitOnError)
	fenStr := fs.String("fen", game.StartFEN, "FEN string of the root position")
	depth := fs.Int("depth", 4, "perft depth")
	fs.Parse(args)

	g, err := game.FromFEN(*fenStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid FEN:", err)
		os.Exit(1)
	}

	start := time.Now()
	nodes := perft.Perft(g.Current, g.ToMove, *depth)
	elapsed := time.Since(start)
	fmt.Printf("nodes: %d\nelapsed: %s\n", nodes, elapsed)
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	fenStr := fs.String("fen", game.StartFEN, "starting FEN string")
	depth := fs.Int("depth", 3, "search depth for the engine's replies")
	human := fs.String("side", "white", "side the human plays: white or black")
	fs.Parse(args)

	g, err := game.FromFEN(*fenStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid FEN:", err)
		os.Exit(1)
	}
	humanColor := board.White
	if *human == "black" {
		humanColor = board.Black
	}

	reader := bufio.NewScanner(os.Stdin)
	fmt.Print(format.Game(g))

	for g.Playable() {
		if g.ToMove == humanColor {
			fmt.Print("your move: ")
			if !reader.Scan() {
				return
			}
			lm, err := g.ParseMove(reader.Text())
			if err != nil {
				fmt.Println("illegal or unparseable move:", err)
				continue
			}
			g.Push(lm.Move, lm.Board)
		} else {
			lm, score := search(g.Current, g.ToMove, *depth)
			fmt.Printf("engine plays %s (score %d)\n", notation.UCI(lm.Move), score)
			g.Push(lm.Move, lm.Board)
		}
		fmt.Print(format.Game(g))
	}
	fmt.Println("game over")
}

// search is a toy fixed-depth negamax walker over the material-only
// evaluation function, grounded on tux21b-ChessBuddy's negaMax: pick the
// move that minimizes the opponent's best reply. It exists only to drive
// the play subcommand; board.Board's legal-move generator and the
// material evaluator are the parts of this engine the specification
// actually defines.
func search(b board.Board, color board.Color, depth int) (board.LegalMove, int) {
	moves := b.LegalMoves(color)
	if depth == 0 || len(moves) == 0 {
		return board.LegalMove{}, evaluate(b, color)
	}

	var best board.LegalMove
	bestScore := math.MinInt
	for _, mv := range moves {
		_, childScore := search(mv.Board, color.Opponent(), depth-1)
		childScore = -childScore
		if childScore > bestScore {
			bestScore = childScore
			best = mv
		}
	}
	return best, bestScore
}

// evaluate scores b from color's perspective: that color's material minus
// the opponent's.
func evaluate(b board.Board, color board.Color) int {
	return materialFor(b, color) - materialFor(b, color.Opponent())
}

func materialFor(b board.Board, color board.Color) int {
	sum := 0
	for k := board.Pawn; k <= board.King; k++ {
		sum += board.Material[k] * squareset.CountBits(b.Pieces(k)&b.Colors(color))
	}
	return sum
}
