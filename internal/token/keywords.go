package token

var keywords = map[string]Kind{
	"fn":       KwFn,
	"let":      KwLet,
	"const":    KwConst,
	"mut":      KwMut,
	"type":     KwType,
	"enum":     KwEnum,
	"tag":      KwTag,
	"extern":   KwExtern,
	"contract": KwContract,
	"macro":    KwMacro,
	"pragma":   KwPragma,
	"import":   KwImport,
	"pub":      KwPub,
	"async":    KwAsync,
	"is":       KwIs,
	"field":    KwField,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
