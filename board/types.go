// Package board implements the position representation of §4.C/§4.D: a
// bitboard-based Board (piece-kind sets, color sets, derived occupancy,
// en-passant target, castling rights), its make-move step, and the
// pseudo-legal-then-legal two-phase move generator built on package
// attacks. Move is the packed descriptor of a single half-move.
package board

import (
	"errors"

	"github.com/treepeck/chessgo/attacks"
	"github.com/treepeck/chessgo/squareset"
)

// Color is re-exported from package attacks so callers of board never need
// to import attacks themselves just to name a side.
type Color = attacks.Color

const (
	White = attacks.White
	Black = attacks.Black
)

// Kind identifies a piece kind, independent of color.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	kindCount
)

// NoKind marks the absence of a promotion piece on a Move.
const NoKind Kind = -1

// Material holds the point value of each piece kind, indexed by Kind. King
// is valued at zero: checkmate is scored through the signed-infinity
// sentinel in package game, not through material.
var Material = [kindCount]int{Pawn: 1, Knight: 3, Bishop: 3, Rook: 5, Queen: 9, King: 0}

// IsPromotionKind reports whether k is one of the four kinds a pawn may
// promote to.
func IsPromotionKind(k Kind) bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// CastlingRights is a four-bit set of which castling rights survive in a
// position: one kingside and one queenside flag per color.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	AllCastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every flag in mask is present in r.
func (r CastlingRights) Has(mask CastlingRights) bool { return r&mask == mask }

// Clear returns r with every flag in mask removed.
func (r CastlingRights) Clear(mask CastlingRights) CastlingRights { return r &^ mask }

// Kingside returns the kingside-castling flag belonging to color.
func Kingside(c Color) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// Queenside returns the queenside-castling flag belonging to color.
func Queenside(c Color) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// MoveKind classifies a Move's effect on occupancy, per §3: a quiet move
// vacates its origin and occupies an empty destination, an attack replaces
// an enemy piece (including, implicitly, an en-passant capture), a castle
// additionally relocates a rook.
type MoveKind int

const (
	Quiet MoveKind = iota
	Attack
	Castle
)

// ErrInvalidSquareIndex is the sentinel error for a square index outside
// 0..63. No function in this package returns it: the square-index
// helpers (PieceAt, NewMove, NewPromotionMove) do not range-check their
// arguments.
var ErrInvalidSquareIndex = errors.New("board: invalid square index")

// Move is the packed descriptor of a single half-move: piece kind, color,
// origin and destination squares, kind, and an optional promotion kind.
// It is the wire encoding of the §4.D Move record -- From/To always
// return a singleton SquareSet for a concrete Move such as this one; the
// multi-bit "from_set" the specification allows for a partially specified
// candidate move is represented separately, by the notation package's
// unexported candidate type, since a
// packed Move has no room to encode more than one origin square.
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 6
	moveKindShift  = 12
	movePieceShift = 14
	moveColorShift = 17
	movePromoShift = 18

	moveSquareMask = 0x3F
	moveKindMask   = 0x3
	movePieceMask  = 0x7
	moveColorMask  = 0x1
	movePromoMask  = 0x7
)

// noPromoCode is the promotion field value meaning "no promotion".
const noPromoCode = 0x7

// NewMove packs a non-promoting move.
func NewMove(piece Kind, color Color, from, to int, kind MoveKind) Move {
	return newMove(piece, color, from, to, kind, NoKind)
}

// NewPromotionMove packs a pawn move that promotes to promo.
func NewPromotionMove(color Color, from, to int, kind MoveKind, promo Kind) Move {
	return newMove(Pawn, color, from, to, kind, promo)
}

func newMove(piece Kind, color Color, from, to int, kind MoveKind, promo Kind) Move {
	promoCode := uint32(noPromoCode)
	if promo != NoKind {
		promoCode = uint32(promo)
	}
	colorCode := uint32(0)
	if color {
		colorCode = 1
	}
	return Move(uint32(from)<<moveFromShift |
		uint32(to)<<moveToShift |
		uint32(kind)<<moveKindShift |
		uint32(piece)<<movePieceShift |
		colorCode<<moveColorShift |
		promoCode<<movePromoShift)
}

// FromSquare returns the origin square index.
func (m Move) FromSquare() int { return int(m>>moveFromShift) & moveSquareMask }

// ToSquare returns the destination square index.
func (m Move) ToSquare() int { return int(m>>moveToShift) & moveSquareMask }

// From returns the origin as a singleton SquareSet, the §4.D "from_set".
func (m Move) From() squareset.Set { return squareset.Square[m.FromSquare()] }

// To returns the destination as a singleton SquareSet, the §4.D "to_set".
func (m Move) To() squareset.Set { return squareset.Square[m.ToSquare()] }

// Piece returns the kind of piece being moved (the pawn, for a promotion).
func (m Move) Piece() Kind { return Kind(int(m>>movePieceShift) & movePieceMask) }

// MovingColor returns the color of the side making the move.
func (m Move) MovingColor() Color {
	return Color(int(m>>moveColorShift)&moveColorMask == 1)
}

// Kind returns the move's quiet/attack/castle classification.
func (m Move) Kind() MoveKind { return MoveKind(int(m>>moveKindShift) & moveKindMask) }

// Promotion returns the promotion kind, or NoKind if this move does not
// promote.
func (m Move) Promotion() Kind {
	code := int(m>>movePromoShift) & movePromoMask
	if code == noPromoCode {
		return NoKind
	}
	return Kind(code)
}

// MoveList is a preallocated, append-only buffer of moves, sized at 218,
// the largest legal move count known for any reachable chess position,
// avoiding a slice allocation per generation call.
type MoveList struct {
	Moves [218]Move
	Len   int
}

// Push appends m to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Len] = m
	l.Len++
}
