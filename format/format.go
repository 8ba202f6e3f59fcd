// Package format renders a Board (and, for a running game, its side to
// move, en-passant target, and castling rights) as a human-readable
// string, mainly for visualizing test cases and a demonstration CLI.
// Grounded on format/format.go and cli/cli.go -- the teacher carries both
// as near-duplicates of the same board-printing code; this package
// consolidates them into the one board.Board-aware implementation both
// were converging towards.
package format

import (
	"strconv"
	"strings"

	"github.com/treepeck/chessgo/board"
	"github.com/treepeck/chessgo/game"
	"github.com/treepeck/chessgo/squareset"
)

var pieceSymbols = [2][6]rune{
	// Black
	{'♟', '♞', '♝', '♜', '♛', '♚'},
	// White
	{'♙', '♘', '♗', '♖', '♕', '♔'},
}

var fileLetters = "abcdefgh"

func squareName(sq int) string {
	return string([]byte{fileLetters[sq%8], '1' + byte(sq/8)})
}

// Bitboard renders a single square-set as an 8x8 grid, marking occupied
// squares with the glyph for kind/color and empty squares with '.'.
func Bitboard(set squareset.Set, kind board.Kind, color board.Color) string {
	var b strings.Builder
	colorIdx := 0
	if color == board.White {
		colorIdx = 1
	}
	for rank := 7; rank >= 0; rank-- {
		b.WriteByte('1' + byte(rank))
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			symbol := pieceSymbols[colorIdx][kind]
			if set&squareset.Square[sq] == 0 {
				symbol = '.'
			}
			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")
	return b.String()
}

// Board renders every piece on b as an 8x8 grid of Unicode glyphs.
func Board(b board.Board) string {
	var out strings.Builder
	for rank := 7; rank >= 0; rank-- {
		out.WriteByte('1' + byte(rank))
		out.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			symbol := rune('.')
			if kind, color, ok := b.PieceAt(sq); ok {
				colorIdx := 0
				if color == board.White {
					colorIdx = 1
				}
				symbol = pieceSymbols[colorIdx][kind]
			}
			out.WriteRune(symbol)
			out.WriteString("  ")
		}
		out.WriteByte('\n')
	}
	out.WriteString("   a  b  c  d  e  f  g  h\n")
	return out.String()
}

// Position renders b together with the side to move, the en-passant
// target, and the surviving castling rights.
func Position(b board.Board, active board.Color) string {
	var out strings.Builder
	out.WriteString(Board(b))

	out.WriteString("Active color: ")
	if active == board.White {
		out.WriteString("white\nEn passant: ")
	} else {
		out.WriteString("black\nEn passant: ")
	}

	if b.EnPassant() == 0 {
		out.WriteString("none\nCastling rights: ")
	} else {
		out.WriteString(squareName(squareset.BitScan(b.EnPassant())))
		out.WriteString("\nCastling rights: ")
	}

	rights := b.Castling()
	wrote := false
	if rights.Has(board.WhiteKingside) {
		out.WriteByte('K')
		wrote = true
	}
	if rights.Has(board.WhiteQueenside) {
		out.WriteByte('Q')
		wrote = true
	}
	if rights.Has(board.BlackKingside) {
		out.WriteByte('k')
		wrote = true
	}
	if rights.Has(board.BlackQueenside) {
		out.WriteByte('q')
		wrote = true
	}
	if !wrote {
		out.WriteByte('-')
	}
	out.WriteByte('\n')
	return out.String()
}

// Game renders g's current Position plus its move counters and status.
func Game(g *game.Game) string {
	var out strings.Builder
	out.WriteString(Position(g.Current, g.ToMove))
	out.WriteString("Halfmove clock: ")
	out.WriteString(strconv.Itoa(g.Halfmove))
	out.WriteString("  Fullmove: ")
	out.WriteString(strconv.Itoa(g.Fullmove))
	out.WriteByte('\n')

	if g.Status != 0 {
		out.WriteString("Status:")
		if g.Status.Has(game.Checkmate) {
			out.WriteString(" checkmate")
		}
		if g.Status.Has(game.Stalemate) {
			out.WriteString(" stalemate")
		}
		if g.Status.Has(game.Threefold) {
			out.WriteString(" threefold-repetition")
		}
		if g.Status.Has(game.FiftyMove) {
			out.WriteString(" fifty-move")
		}
		out.WriteByte('\n')
	}
	return out.String()
}
