package engine

// Piece-square tables, from White's perspective with a8 as index 0 (rank 8
// first). Indexed via MirrorSquare for White, directly for Black, so one
// table serves both colors by vertical mirror.
var (
	pstPawn = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	pstKnight = [64]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	pstBishop = [64]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	pstRook = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	}
	pstQueen = [64]int{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	pstKingMG = [64]int{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	}
	pstKingEG = [64]int{
		-50, -40, -30, -20, -20, -30, -40, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	}
)

func pstTable(pt Piece) *[64]int {
	switch pt {
	case Pawn:
		return &pstPawn
	case Knight:
		return &pstKnight
	case Bishop:
		return &pstBishop
	case Rook:
		return &pstRook
	case Queen:
		return &pstQueen
	case King:
		return &pstKingMG
	}
	return nil
}

// IsEndgame uses the reference's cheap phase test: no queens are left on
// the board, or both sides together have at most 2 queens and 2 minors.
func IsEndgame(b *Board) bool {
	queens, minors := 0, 0
	for sq := 0; sq < 64; sq++ {
		pt := PieceType(b.Squares[sq])
		if pt == Queen {
			queens++
		}
		if pt == Knight || pt == Bishop {
			minors++
		}
	}
	return queens == 0 || (queens <= 2 && minors <= 2)
}

// Evaluate returns a centipawn score from White's perspective: material,
// PSTs, bishop pair, pawn structure, passed pawns, rook files, and (in the
// middlegame only) a king pawn shield.
func Evaluate(b *Board) int {
	score := 0
	whiteBishops, blackBishops := 0, 0
	var whitePawnFiles, blackPawnFiles [8]int
	endgame := IsEndgame(b)

	for sq := 0; sq < 64; sq++ {
		p := b.Squares[sq]
		if p == Empty {
			continue
		}
		pt := PieceType(p)
		val := PieceValue[pt]
		pst := pstTable(pt)
		if pt == King && endgame {
			pst = &pstKingEG
		}

		if p > 0 {
			idx := MirrorSquare(sq)
			bonus := 0
			if pst != nil {
				bonus = pst[idx]
			}
			score += val + bonus
			if pt == Pawn {
				whitePawnFiles[SquareFile(sq)]++
			}
			if pt == Bishop {
				whiteBishops++
			}
		} else {
			bonus := 0
			if pst != nil {
				bonus = pst[sq]
			}
			score -= val + bonus
			if pt == Pawn {
				blackPawnFiles[SquareFile(sq)]++
			}
			if pt == Bishop {
				blackBishops++
			}
		}
	}

	if whiteBishops >= 2 {
		score += 30
	}
	if blackBishops >= 2 {
		score -= 30
	}

	for f := 0; f < 8; f++ {
		if whitePawnFiles[f] > 1 {
			score -= 10 * (whitePawnFiles[f] - 1)
		}
		if blackPawnFiles[f] > 1 {
			score += 10 * (blackPawnFiles[f] - 1)
		}

		wAdj := (f > 0 && whitePawnFiles[f-1] > 0) || (f < 7 && whitePawnFiles[f+1] > 0)
		bAdj := (f > 0 && blackPawnFiles[f-1] > 0) || (f < 7 && blackPawnFiles[f+1] > 0)
		if whitePawnFiles[f] > 0 && !wAdj {
			score -= 15
		}
		if blackPawnFiles[f] > 0 && !bAdj {
			score += 15
		}
	}

	for sq := 0; sq < 64; sq++ {
		p := b.Squares[sq]
		if p == Pawn {
			f, r := SquareFile(sq), SquareRank(sq)
			passed := true
			for rr := r + 1; rr < 8 && passed; rr++ {
				for ff := max(0, f-1); ff <= min(7, f+1); ff++ {
					if b.Squares[MakeSquare(ff, rr)] == -Pawn {
						passed = false
						break
					}
				}
			}
			if passed {
				score += 20 + 10*r
			}
		}
		if p == -Pawn {
			f, r := SquareFile(sq), SquareRank(sq)
			passed := true
			for rr := r - 1; rr >= 0 && passed; rr-- {
				for ff := max(0, f-1); ff <= min(7, f+1); ff++ {
					if b.Squares[MakeSquare(ff, rr)] == Pawn {
						passed = false
						break
					}
				}
			}
			if passed {
				score -= 20 + 10*(7-r)
			}
		}
	}

	for sq := 0; sq < 64; sq++ {
		p := b.Squares[sq]
		if PieceType(p) != Rook {
			continue
		}
		f := SquareFile(sq)
		if p > 0 {
			if whitePawnFiles[f] == 0 && blackPawnFiles[f] == 0 {
				score += 20
			} else if whitePawnFiles[f] == 0 {
				score += 10
			}
		} else {
			if whitePawnFiles[f] == 0 && blackPawnFiles[f] == 0 {
				score -= 20
			} else if blackPawnFiles[f] == 0 {
				score -= 10
			}
		}
	}

	if !endgame {
		for s := White; s <= Black; s++ {
			ksq := b.KingSquare[s]
			kf, kr := SquareFile(ksq), SquareRank(ksq)
			shield := 0
			pawn := Pawn
			dir := 1
			if s == Black {
				pawn = -Pawn
				dir = -1
			}
			for df := -1; df <= 1; df++ {
				ff := kf + df
				if ff < 0 || ff > 7 {
					continue
				}
				if sr := kr + dir; sr >= 0 && sr < 8 && b.Squares[MakeSquare(ff, sr)] == pawn {
					shield++
				}
				if sr := kr + 2*dir; sr >= 0 && sr < 8 && b.Squares[MakeSquare(ff, sr)] == pawn {
					shield++
				}
			}
			if s == White {
				score += shield * 10
			} else {
				score -= shield * 10
			}
		}
	}

	return score
}
