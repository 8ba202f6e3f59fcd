// Package notation implements the textual move encodings of §4.D: UCI
// (long algebraic) encoding, PGN-lite (short algebraic, "SAN") encoding
// and parsing, and the subsumes partial-match primitive that lets a
// parsed candidate move be resolved against a concrete legal-moves list.
// Grounded on the teacher's san.go/uci.go, generalized from the packed
// Move/Position pair to board.Move/board.Board and extended with the
// decode direction the teacher never implemented.
package notation

import (
	"errors"
	"strings"

	"github.com/treepeck/chessgo/board"
	"github.com/treepeck/chessgo/squareset"
)

// ErrInvalidNotation is returned when a move string is syntactically
// unparseable or references an out-of-range square.
var ErrInvalidNotation = errors.New("notation: malformed move text")

// ErrAmbiguousMove is returned when a parsed candidate subsumes more than
// one move in the supplied legal-moves list.
var ErrAmbiguousMove = errors.New("notation: ambiguous move")

// ErrNoSuchMove is returned when a parsed candidate subsumes no move in
// the supplied legal-moves list.
var ErrNoSuchMove = errors.New("notation: no such legal move")

var fileLetters = "abcdefgh"

// squareString renders sq (0..63, a1=0) as its two-character algebraic
// name, e.g. "e4".
func squareString(sq int) string {
	file := fileLetters[sq%8]
	rank := byte('1' + sq/8)
	return string([]byte{file, rank})
}

func promotionLetter(k board.Kind, upper bool) byte {
	var letters string
	if upper {
		letters = "NBRQ"
	} else {
		letters = "nbrq"
	}
	switch k {
	case board.Knight:
		return letters[0]
	case board.Bishop:
		return letters[1]
	case board.Rook:
		return letters[2]
	case board.Queen:
		return letters[3]
	}
	return 0
}

func pieceLetter(k board.Kind) byte {
	switch k {
	case board.Knight:
		return 'N'
	case board.Bishop:
		return 'B'
	case board.Rook:
		return 'R'
	case board.Queen:
		return 'Q'
	case board.King:
		return 'K'
	}
	return 0
}

// UCI renders m in long algebraic notation: the origin square, the
// destination square, and, for a promotion, a trailing lowercase
// promotion-piece letter. Examples: "e2e4", "e7e8q".
func UCI(m board.Move) string {
	var b strings.Builder
	b.Grow(5)
	b.WriteString(squareString(m.FromSquare()))
	b.WriteString(squareString(m.ToSquare()))
	if promo := m.Promotion(); promo != board.NoKind {
		b.WriteByte(promotionLetter(promo, false))
	}
	return b.String()
}

// disambiguate picks the file letter or rank digit that distinguishes
// a move from fromA from one originating at fromB, per §4.D: prefer the
// file if the files differ, else the rank.
func disambiguate(fromA, fromB int) byte {
	if fromA%8 != fromB%8 {
		return fileLetters[fromA%8]
	}
	return byte('1' + fromA/8)
}

// SAN renders m in PGN-lite short algebraic notation. legalMoves is the
// full legal-move list the move was drawn from, used to resolve
// same-destination ambiguity between pieces of the same kind; isCheck and
// isCheckmate control the trailing '+'/'#' suffix.
func SAN(m board.Move, legalMoves []board.LegalMove, isCheck, isCheckmate bool) string {
	if m.Kind() == board.Castle {
		if m.ToSquare()%8 == 2 {
			return "0-0-0"
		}
		return "0-0"
	}

	var b strings.Builder
	piece := m.Piece()
	if letter := pieceLetter(piece); letter != 0 {
		b.WriteByte(letter)
	}

	if piece != board.Pawn {
		for _, lm := range legalMoves {
			other := lm.Move
			if other.Piece() == piece && other.MovingColor() == m.MovingColor() &&
				other.ToSquare() == m.ToSquare() && other.FromSquare() != m.FromSquare() {
				b.WriteByte(disambiguate(m.FromSquare(), other.FromSquare()))
				break
			}
		}
	}

	if m.Kind() == board.Attack {
		if piece == board.Pawn {
			b.WriteByte(fileLetters[m.FromSquare()%8])
		}
		b.WriteByte('x')
	}

	b.WriteString(squareString(m.ToSquare()))

	if promo := m.Promotion(); promo != board.NoKind {
		b.WriteByte('=')
		b.WriteByte(promotionLetter(promo, true))
	}

	if isCheckmate {
		b.WriteByte('#')
	} else if isCheck {
		b.WriteByte('+')
	}

	return b.String()
}

// candidate is a partially specified move: every field of a concrete
// board.Move except that fromSet may carry more than one bit, per the
// §4.D "from_set"/"to_set" distinction between a fully and partially
// specified move.
type candidate struct {
	piece   board.Kind
	color   board.Color
	kind    board.MoveKind
	promo   board.Kind
	fromSet squareset.Set
	toSq    int
}

// subsumes reports whether c matches a concrete move: every field besides
// the origin must match exactly, and the concrete move's origin square
// must lie within c's fromSet. This is the §4.D partial-match primitive.
func (c candidate) subsumes(m board.Move) bool {
	return c.piece == m.Piece() &&
		c.color == m.MovingColor() &&
		c.kind == m.Kind() &&
		c.promo == m.Promotion() &&
		c.toSq == m.ToSquare() &&
		c.fromSet&squareset.Square[m.FromSquare()] != 0
}

func promoKindFromLetter(letter byte) (board.Kind, bool) {
	switch letter {
	case 'N', 'n':
		return board.Knight, true
	case 'B', 'b':
		return board.Bishop, true
	case 'R', 'r':
		return board.Rook, true
	case 'Q', 'q':
		return board.Queen, true
	}
	return board.NoKind, false
}

func pieceKindFromLetter(letter byte) (board.Kind, bool) {
	switch letter {
	case 'N':
		return board.Knight, true
	case 'B':
		return board.Bishop, true
	case 'R':
		return board.Rook, true
	case 'Q':
		return board.Queen, true
	case 'K':
		return board.King, true
	}
	return board.Pawn, false
}

func squareFromString(s string) (int, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, ErrInvalidNotation
	}
	return int(s[1]-'1')*8 + int(s[0]-'a'), nil
}

// ParseSAN resolves the short-algebraic text move against legalMoves for
// the side to move color, implementing the §4.E textual move parser: it
// strips castling shortcuts, reads an optional leading piece letter,
// extracts a trailing promotion suffix, reads the destination square,
// and treats every remaining character as a disambiguating file or rank
// restriction (or the attack marker 'x'), then resolves the resulting
// candidate against legalMoves with subsumes.
func ParseSAN(move string, color board.Color, legalMoves []board.LegalMove) (board.Move, error) {
	text := strings.TrimRight(move, "+#")

	if text == "0-0" || text == "O-O" {
		return resolveCastle(color, legalMoves, true)
	}
	if text == "0-0-0" || text == "O-O-O" {
		return resolveCastle(color, legalMoves, false)
	}

	if len(text) < 2 {
		return 0, ErrInvalidNotation
	}

	piece := board.Pawn
	if k, ok := pieceKindFromLetter(text[0]); ok {
		piece = k
		text = text[1:]
	}

	promo := board.NoKind
	if idx := strings.IndexByte(text, '='); idx != -1 {
		if idx+2 > len(text) {
			return 0, ErrInvalidNotation
		}
		p, ok := promoKindFromLetter(text[idx+1])
		if !ok {
			return 0, ErrInvalidNotation
		}
		promo = p
		text = text[:idx]
	}

	if len(text) < 2 {
		return 0, ErrInvalidNotation
	}
	destText := text[len(text)-2:]
	toSq, err := squareFromString(destText)
	if err != nil {
		return 0, err
	}
	rest := text[:len(text)-2]

	kind := board.Quiet
	fromSet := squareset.Universe
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch {
		case c == 'x':
			kind = board.Attack
		case c >= 'a' && c <= 'h':
			fromSet &= squareset.File[c-'a']
		case c >= '1' && c <= '8':
			fromSet &= squareset.Rank[c-'1']
		default:
			return 0, ErrInvalidNotation
		}
	}

	cand := candidate{piece: piece, color: color, kind: kind, promo: promo, fromSet: fromSet, toSq: toSq}
	return resolve(cand, legalMoves)
}

func resolveCastle(color board.Color, legalMoves []board.LegalMove, kingside bool) (board.Move, error) {
	rank := 0
	if color == board.Black {
		rank = 7
	}
	toFile := 2
	if kingside {
		toFile = 6
	}
	cand := candidate{
		piece:   board.King,
		color:   color,
		kind:    board.Castle,
		promo:   board.NoKind,
		fromSet: squareset.Universe,
		toSq:    rank*8 + toFile,
	}
	return resolve(cand, legalMoves)
}

func resolve(cand candidate, legalMoves []board.LegalMove) (board.Move, error) {
	var found board.Move
	matches := 0
	for _, lm := range legalMoves {
		if cand.subsumes(lm.Move) {
			found = lm.Move
			matches++
			if matches > 1 {
				break
			}
		}
	}
	switch matches {
	case 0:
		return 0, ErrNoSuchMove
	case 1:
		return found, nil
	default:
		return 0, ErrAmbiguousMove
	}
}
