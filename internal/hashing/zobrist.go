package hashing

import (
	"math/rand"

	"github.com/lgbarn/amazons-go/internal/amazons"
)

// zobristSeed fixes the key table so hashes are stable between runs.
const zobristSeed = 0x5a6f6272697374

var (
	// pieceKeys[sq][p-1] for p in WhiteAmazon, BlackAmazon, Spear.
	pieceKeys [amazons.NumSquares][3]uint64
	blackKey  uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for sq := range pieceKeys {
		for p := range pieceKeys[sq] {
			pieceKeys[sq][p] = rng.Uint64()
		}
	}
	blackKey = rng.Uint64()
}

// ZobristHash returns the Zobrist hash of b: the pieces on every square
// and the side to move. Move history does not contribute.
func ZobristHash(b *amazons.Board) uint64 {
	var h uint64
	for _, sq := range amazons.AllSquares() {
		if p := b.Get(sq); p != amazons.Empty {
			h ^= pieceKeys[sq.Index()][p-1]
		}
	}
	if b.Turn() == amazons.Black {
		h ^= blackKey
	}
	return h
}

// UpdateHash returns h after m is played. It is equivalent to hashing the
// board after the move, without scanning every square.
func UpdateHash(h uint64, mover amazons.Side, m amazons.Move) uint64 {
	amazon := mover.Piece()
	h ^= pieceKeys[m.From.Index()][amazon-1]
	h ^= pieceKeys[m.To.Index()][amazon-1]
	h ^= pieceKeys[m.Spear.Index()][amazons.Spear-1]
	return h ^ blackKey
}

// WeakHash is a cheap second opinion for ZobristHash: a position-weighted
// sum of the occupied squares. Two boards with equal Zobrist and weak
// hashes are treated as identical.
func WeakHash(b *amazons.Board) uint64 {
	var h uint64
	for _, sq := range amazons.AllSquares() {
		if p := b.Get(sq); p != amazons.Empty {
			h += uint64(sq.Index()+1) * uint64(p) * 0x9e3779b97f4a7c15
		}
	}
	return h + uint64(b.Turn())
}
