package token

var keywords = map[string]Kind{
	"module":   KwModule,
	"import":   KwImport,
	"func":     KwFunc,
	"let":      KwLet,
	"mut":      KwMut,
	"const":    KwConst,
	"struct":   KwStruct,
	"class":    KwClass,
	"enum":     KwEnum,
	"trait":    KwTrait,
	"impl":     KwImpl,
	"type":     KwType,
	"self":     KwSelf,
	"Self":     KwSelfType,
	"if":       KwIf,
	"else":     KwElse,
	"match":    KwMatch,
	"for":      KwFor,
	"while":    KwWhile,
	"loop":     KwLoop,
	"break":    KwBreak,
	"continue": KwContinue,
	"return":   KwReturn,
	"in":       KwIn,
	"move":     KwMove,
	"ref":      KwRef,
	"drop":     KwDrop,
	"async":    KwAsync,
	"await":    KwAwait,
	"spawn":    KwSpawn,
	"unsafe":   KwUnsafe,
	"pub":      KwPub,
	"public":   KwPublic,
	"private":  KwPrivate,
	"true":     KwTrue,
	"false":    KwFalse,
	"and":      KwAnd,
	"or":       KwOr,
	"not":      KwNot,
	"as":       KwAs,
	"is":       KwIs,
	"where":    KwWhere,
	"use":      KwUse,
	"Void":     KwVoid,
	"panic":    KwPanic,
	"assert":   KwAssert,
}

// LookupKeyword returns the keyword kind for ident. Keywords are
// case-sensitive; only the exact spellings above are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
