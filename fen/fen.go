// Package fen implements Forsyth-Edwards Notation parsing and
// serialization, per §6: the six space-separated fields -- piece
// placement, active color, castling rights, en-passant target, halfmove
// clock, fullmove number -- converted to and from a board.Board plus the
// side to move and the two counters game.Game needs to resume from.
// Grounded on fen/fen.go and fen.go, generalized from the [12]uint64
// array to board.Board and from panic-on-malformed-input to error
// returns, since this package now parses untrusted external text rather
// than the engine's own trusted internal state.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/treepeck/chessgo/board"
	"github.com/treepeck/chessgo/squareset"
)

// ErrMalformedFEN is returned when a FEN string does not have the
// required six space-separated fields, or a field's contents cannot be
// parsed.
var ErrMalformedFEN = fmt.Errorf("fen: malformed FEN string")

var pieceSymbols = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

func pieceKindFromLetter(letter byte) (board.Kind, bool) {
	switch letter {
	case 'P', 'p':
		return board.Pawn, true
	case 'N', 'n':
		return board.Knight, true
	case 'B', 'b':
		return board.Bishop, true
	case 'R', 'r':
		return board.Rook, true
	case 'Q', 'q':
		return board.Queen, true
	case 'K', 'k':
		return board.King, true
	}
	return 0, false
}

// ParsePlacement converts the first FEN field into the piece-kind and
// color sets a board.Board is built from.
func ParsePlacement(field string) ([6]squareset.Set, [2]squareset.Set, error) {
	var pieces [6]squareset.Set
	var colors [2]squareset.Set
	sq := 56 // FEN describes ranks starting from the eighth.

	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '/':
			sq -= 16
		case c >= '1' && c <= '8':
			sq += int(c - '0')
		default:
			kind, ok := pieceKindFromLetter(c)
			if !ok || sq < 0 || sq > 63 {
				return pieces, colors, fmt.Errorf("%w: bad piece placement field %q", ErrMalformedFEN, field)
			}
			color := board.Black
			if c >= 'A' && c <= 'Z' {
				color = board.White
			}
			pieces[kind] |= squareset.Square[sq]
			if color == board.White {
				colors[1] |= squareset.Square[sq]
			} else {
				colors[0] |= squareset.Square[sq]
			}
			sq++
		}
	}
	return pieces, colors, nil
}

// FormatPlacement renders b's piece placement as the first FEN field.
func FormatPlacement(b board.Board) string {
	var squares [64]byte
	for k := board.Pawn; k <= board.King; k++ {
		set := b.Pieces(k)
		for set != 0 {
			sq := squareset.PopLSB(&set)
			letter := pieceSymbols[k]
			if b.Colors(board.Black)&squareset.Square[sq] != 0 {
				letter += 'a' - 'A'
			}
			squares[sq] = letter
		}
	}

	var out strings.Builder
	out.Grow(64)
	for rank := 7; rank >= 0; rank-- {
		var empty int
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			if squares[sq] == 0 {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteByte('0' + byte(empty))
				empty = 0
			}
			out.WriteByte(squares[sq])
		}
		if empty > 0 {
			out.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			out.WriteByte('/')
		}
	}
	return out.String()
}

func parseEnPassant(field string) (squareset.Set, error) {
	if field == "-" {
		return squareset.Empty, nil
	}
	if len(field) != 2 || field[0] < 'a' || field[0] > 'h' || field[1] < '1' || field[1] > '8' {
		return 0, fmt.Errorf("%w: bad en-passant field %q", ErrMalformedFEN, field)
	}
	sq := int(field[1]-'1')*8 + int(field[0]-'a')
	return squareset.Square[sq], nil
}

func formatEnPassant(ep squareset.Set) string {
	if ep == 0 {
		return "-"
	}
	sq := squareset.BitScan(ep)
	return string([]byte{"abcdefgh"[sq%8], '1' + byte(sq/8)})
}

func parseCastling(field string) (board.CastlingRights, error) {
	if field == "-" {
		return 0, nil
	}
	var rights board.CastlingRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights |= board.WhiteKingside
		case 'Q':
			rights |= board.WhiteQueenside
		case 'k':
			rights |= board.BlackKingside
		case 'q':
			rights |= board.BlackQueenside
		default:
			return 0, fmt.Errorf("%w: bad castling field %q", ErrMalformedFEN, field)
		}
	}
	return rights, nil
}

func formatCastling(rights board.CastlingRights) string {
	if rights == 0 {
		return "-"
	}
	var out strings.Builder
	if rights.Has(board.WhiteKingside) {
		out.WriteByte('K')
	}
	if rights.Has(board.WhiteQueenside) {
		out.WriteByte('Q')
	}
	if rights.Has(board.BlackKingside) {
		out.WriteByte('k')
	}
	if rights.Has(board.BlackQueenside) {
		out.WriteByte('q')
	}
	return out.String()
}

// Parse parses a full FEN string into a board.Board, the active color,
// and the halfmove and fullmove counters, per §6.
func Parse(fenStr string) (b board.Board, active board.Color, halfmove, fullmove int, err error) {
	fields := strings.Fields(fenStr)
	if len(fields) != 6 {
		return board.Board{}, board.White, 0, 0, fmt.Errorf("%w: expected 6 fields, got %d", ErrMalformedFEN, len(fields))
	}

	pieces, colors, err := ParsePlacement(fields[0])
	if err != nil {
		return board.Board{}, board.White, 0, 0, err
	}

	active = board.White
	if fields[1] == "b" {
		active = board.Black
	} else if fields[1] != "w" {
		return board.Board{}, board.White, 0, 0, fmt.Errorf("%w: bad active color field %q", ErrMalformedFEN, fields[1])
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return board.Board{}, board.White, 0, 0, err
	}

	ep, err := parseEnPassant(fields[3])
	if err != nil {
		return board.Board{}, board.White, 0, 0, err
	}

	halfmove, err = strconv.Atoi(fields[4])
	if err != nil {
		return board.Board{}, board.White, 0, 0, fmt.Errorf("%w: bad halfmove field %q", ErrMalformedFEN, fields[4])
	}
	fullmove, err = strconv.Atoi(fields[5])
	if err != nil {
		return board.Board{}, board.White, 0, 0, fmt.Errorf("%w: bad fullmove field %q", ErrMalformedFEN, fields[5])
	}

	b = board.NewBoard(pieces, colors, rights, ep)
	return b, active, halfmove, fullmove, nil
}

// Serialize renders b, the active color, and the halfmove/fullmove
// counters as a FEN string.
func Serialize(b board.Board, active board.Color, halfmove, fullmove int) string {
	var out strings.Builder
	out.Grow(64)
	out.WriteString(FormatPlacement(b))
	out.WriteByte(' ')
	if active == board.White {
		out.WriteByte('w')
	} else {
		out.WriteByte('b')
	}
	out.WriteByte(' ')
	out.WriteString(formatCastling(b.Castling()))
	out.WriteByte(' ')
	out.WriteString(formatEnPassant(b.EnPassant()))
	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(halfmove))
	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(fullmove))
	return out.String()
}
