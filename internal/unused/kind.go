package unused

// DefinitionKind classifies what the compiler reported as dead. The set is
// closed: a diagnostic naming anything else is not recognized and the
// definition stays in place.
type DefinitionKind uint8

const (
	KindFunction DefinitionKind = iota
	KindAssocFunction
	KindConstant
	KindStatic
	KindStruct
	KindEnum
	KindUnion
	KindTypeAlias
	KindMacro
)

// template описывает, как диагностика данного вида выглядит в тексте:
// ведущие токены до идентификатора и точный хвост после него.
type template struct {
	kind   DefinitionKind
	lead   []string
	suffix string
}

var templates = []template{
	{KindFunction, []string{"function"}, "is never used"},
	{KindAssocFunction, []string{"associated", "function"}, "is never used"},
	{KindConstant, []string{"constant"}, "is never used"},
	{KindStatic, []string{"static"}, "is never used"},
	{KindStruct, []string{"struct"}, "is never constructed"},
	{KindEnum, []string{"enum"}, "is never constructed"},
	{KindUnion, []string{"union"}, "is never constructed"},
	{KindTypeAlias, []string{"type", "alias"}, "is never used"},
	{KindMacro, []string{"unused", "macro", "definition"}, ""},
}

var kindNames = map[DefinitionKind]string{
	KindFunction:      "function",
	KindAssocFunction: "associated function",
	KindConstant:      "constant",
	KindStatic:        "static",
	KindStruct:        "struct",
	KindEnum:          "enum",
	KindUnion:         "union",
	KindTypeAlias:     "type alias",
	KindMacro:         "macro",
}

func (k DefinitionKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Nestable reports whether definitions of this kind may live inside an
// extern block rather than at the top level of a file.
func (k DefinitionKind) Nestable() bool {
	return k == KindAssocFunction
}
