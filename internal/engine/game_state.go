package engine

// IsCheckmate reports whether the side to move has no legal moves while
// its king is attacked.
func IsCheckmate(b *Board) bool {
	return len(b.LegalMoves()) == 0 && b.IsInCheck(b.ActiveColour())
}

// IsStalemate reports whether the side to move has no legal moves while
// its king is not attacked. The board still labels this state Checkmate;
// callers that need to tell the two apart use this predicate.
func IsStalemate(b *Board) bool {
	return len(b.LegalMoves()) == 0 && !b.IsInCheck(b.ActiveColour())
}
