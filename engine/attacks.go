package engine

// IsAttacked reports whether any piece belonging to bySide attacks sq.
// Checks pawns, knights, king, then sliding bishop/rook/queen rays; each
// ray stops at the first blocker or an edge. A diagonal step must change
// the file by exactly one, and a straight step must keep the rank
// (sideways) or the file (up and down) unchanged; anything else means the
// step wrapped around a board edge.
func (b *Board) IsAttacked(sq int, bySide Side) bool {
	sign := PieceSign(bySide)

	if bySide == White {
		if SquareRank(sq) > 0 {
			if SquareFile(sq) > 0 && b.Squares[sq-9] == Pawn {
				return true
			}
			if SquareFile(sq) < 7 && b.Squares[sq-7] == Pawn {
				return true
			}
		}
	} else {
		if SquareRank(sq) < 7 {
			if SquareFile(sq) > 0 && b.Squares[sq+7] == -Pawn {
				return true
			}
			if SquareFile(sq) < 7 && b.Squares[sq+9] == -Pawn {
				return true
			}
		}
	}

	for _, d := range KnightDirs {
		to := sq + d
		if to >= 0 && to < 64 && abs(SquareFile(to)-SquareFile(sq)) <= 2 &&
			b.Squares[to] == Piece(sign)*Knight {
			return true
		}
	}

	for _, d := range KingDirs {
		to := sq + d
		if to >= 0 && to < 64 && abs(SquareFile(to)-SquareFile(sq)) <= 1 &&
			b.Squares[to] == Piece(sign)*King {
			return true
		}
	}

	for _, d := range BishopDirs {
		for to := sq + d; to >= 0 && to < 64; to += d {
			if abs(SquareFile(to)-SquareFile(to-d)) != 1 {
				break
			}
			p := b.Squares[to]
			if p == Empty {
				continue
			}
			if p == Piece(sign)*Bishop || p == Piece(sign)*Queen {
				return true
			}
			break
		}
	}

	for _, d := range RookDirs {
		for to := sq + d; to >= 0 && to < 64; to += d {
			if abs(d) == 1 && SquareRank(to) != SquareRank(to-d) {
				break
			}
			if abs(d) == 8 && SquareFile(to) != SquareFile(to-d) {
				break
			}
			p := b.Squares[to]
			if p == Empty {
				continue
			}
			if p == Piece(sign)*Rook || p == Piece(sign)*Queen {
				return true
			}
			break
		}
	}

	return false
}
