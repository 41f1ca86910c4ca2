package usecase

// Token identifies one asynchronous request. Its result is applied only while the
// token is still current.
type Token uint64

type tokenSource struct {
	current Token
}

// Next - issues a new token, making every earlier one stale.
func (that *tokenSource) Next() Token {
	that.current++

	return that.current
}

// Invalidate makes every issued token stale.
func (that *tokenSource) Invalidate() {
	that.current++
}

func (that *tokenSource) IsCurrent(token Token) bool {
	return token == that.current
}
