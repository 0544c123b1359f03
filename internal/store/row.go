// Package store persists self-play games one row per ply.
package store

// PlyRow is one move of one game together with the position it produced.
// Optional columns are left at their zero value when not recorded.
type PlyRow struct {
	GameID string `parquet:"game_id,dict" json:"game_id"`
	GameNo int32  `parquet:"game_no" json:"game_no"`
	Seed   uint64 `parquet:"seed" json:"seed"`

	Ply    int32  `parquet:"ply" json:"ply"`
	Turn   int32  `parquet:"turn" json:"turn"`
	Colour string `parquet:"colour,dict" json:"colour"`
	Move   string `parquet:"move" json:"move"`
	Piece  string `parquet:"piece,dict" json:"piece"`

	// State is the game state after the move; Outcome is the state the
	// game finished in and is the same on every row of a game.
	State   string `parquet:"state,dict" json:"state"`
	Outcome string `parquet:"outcome,dict" json:"outcome"`

	HalfMoveClock int32 `parquet:"half_move_clock" json:"half_move_clock"`

	Snapshot   []byte `parquet:"snapshot,optional,zstd" json:"snapshot,omitempty"`
	Hash       uint64 `parquet:"hash,optional" json:"hash,omitempty"`
	FEN        string `parquet:"fen,optional,zstd" json:"fen,omitempty"`
	DurationNS int64  `parquet:"duration_ns,optional" json:"duration_ns,omitempty"`
}

// Schema identifies the row layout in file metadata.
const Schema = "ply_row_v1"
