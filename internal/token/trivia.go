package token

import "flux/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

// Trivia is whitespace or a comment skipped before a significant token.
// Keeping it on the token preserves the original byte stream.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
