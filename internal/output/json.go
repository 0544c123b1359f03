package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/selfplay"
)

// JSONGame represents a finished game in JSON format.
type JSONGame struct {
	ID            string     `json:"id"`
	GameNo        int        `json:"gameNo"`
	Seed          uint64     `json:"seed"`
	StartFEN      string     `json:"startFEN"`
	Result        string     `json:"result"`
	Outcome       string     `json:"outcome"`
	Winner        string     `json:"winner,omitempty"`
	PlyCount      int        `json:"plyCount"`
	Truncated     bool       `json:"truncated,omitempty"`
	Duplicate     bool       `json:"duplicate,omitempty"`
	MaxRepetition int        `json:"maxRepetition,omitempty"`
	FinalFEN      string     `json:"finalFEN,omitempty"`
	FinalSnapshot string     `json:"finalSnapshot,omitempty"`
	FinalHash     string     `json:"finalHash,omitempty"`
	Moves         []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a ply in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"`
	Move      string `json:"move"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Promotion string `json:"promotion,omitempty"`
	Special   string `json:"special,omitempty"` // "castle" or "enPassant"
	State     string `json:"state"`
	FEN       string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a record to JSON form. Per-ply FEN strings are
// included when the record carries them.
func GameToJSON(rec *selfplay.Record) *JSONGame {
	jg := &JSONGame{
		ID:            rec.GameID,
		GameNo:        rec.GameNo,
		Seed:          rec.Seed,
		StartFEN:      rec.StartFEN,
		Result:        rec.Result(),
		Outcome:       rec.Outcome.String(),
		PlyCount:      len(rec.Plies),
		Truncated:     rec.Truncated,
		Duplicate:     rec.Duplicate,
		MaxRepetition: rec.MaxRepetition,
		FinalHash:     fmt.Sprintf("%016x", rec.FinalHash),
		Moves:         make([]JSONMove, 0, len(rec.Plies)),
	}
	if w, ok := rec.Winner(); ok {
		jg.Winner = w.String()
	}
	if rec.Final != nil {
		jg.FinalFEN = rec.Final.FEN()
		jg.FinalSnapshot = rec.Final.Snapshot().String()
	}
	for i := range rec.Plies {
		jg.Moves = append(jg.Moves, convertPly(&rec.Plies[i]))
	}
	return jg
}

func convertPly(p *selfplay.Ply) JSONMove {
	jm := JSONMove{
		Ply:   p.Number,
		Color: p.Colour.String(),
		Move:  p.Move.String(),
		From:  p.Move.From.String(),
		To:    p.Move.To.String(),
		Piece: p.Piece.String(),
		State: p.State.String(),
		FEN:   p.FEN,
	}
	if p.Move.IsPromotion() {
		jm.Promotion = p.Move.Promotion.String()
	}
	switch p.Move.Kind {
	case chess.CastleMove:
		jm.Special = "castle"
	case chess.EnPassantMove:
		jm.Special = "enPassant"
	}
	return jm
}

// OutputGamesJSON writes records as a single indented JSON document.
func OutputGamesJSON(recs []*selfplay.Record, w io.Writer) error {
	out := &JSONOutput{Games: make([]*JSONGame, len(recs))}
	for i, rec := range recs {
		out.Games[i] = GameToJSON(rec)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
