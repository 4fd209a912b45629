// Package token defines lexical token kinds and trivia for the Flux compiler.
// Invariants:
//   - Token.Span covers the full lexeme in the source buffer.
//   - String literal Text holds the content without the surrounding quotes;
//     every other Text matches the span exactly.
//   - IntVal/FloatVal carry the parsed numeric value for numeric literals so
//     the parser never re-parses digit text.
//   - Built-in type names (Int64, Bool, String, ...) are identifiers. They are
//     recognized by the semantic layer, not the lexer.
package token
