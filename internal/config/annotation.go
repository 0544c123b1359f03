package config

// AnnotationConfig selects the optional fields of each ply record.
type AnnotationConfig struct {
	AddFEN      bool // FEN of the position after the move
	AddSnapshot bool // base64 board snapshot
	AddHash     bool // position hash
	AddTiming   bool // wall time of the turn
}

// NewAnnotationConfig creates an AnnotationConfig with default values:
// snapshots and hashes on, FEN and timing off.
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{
		AddSnapshot: true,
		AddHash:     true,
	}
}
