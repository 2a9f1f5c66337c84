package token

import (
	"surgemin/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsItemStarter reports whether the token kind can begin a top-level item.
func IsItemStarter(k Kind) bool {
	switch k {
	case KwFn, KwLet, KwConst, KwType, KwEnum, KwTag, KwExtern,
		KwContract, KwMacro, KwPragma, KwImport, KwPub, KwAsync, At:
		return true
	default:
		return false
	}
}
