package typeinfo

import (
	"go/token"
	"go/types"
)

// TypeParam describes a type parameter to redeclare on a generated type.
type TypeParam struct {
	Name       string
	Constraint types.Type
	Pos        token.Pos
}

// IsBlank reports whether the type parameter is written as "_". A blank type
// parameter cannot be referred to, so it cannot be redeclared either.
func (tp TypeParam) IsBlank() bool { return tp.Name == "_" }

// TypeParamsOf converts the list to a slice of [TypeParam]. It returns nil for
// an empty list.
func TypeParamsOf(list *types.TypeParamList) []TypeParam {
	if list.Len() == 0 {
		return nil
	}
	tps := make([]TypeParam, 0, list.Len())
	for tp := range list.TypeParams() {
		tps = append(tps, TypeParam{
			Name:       tp.Obj().Name(),
			Constraint: tp.Constraint(),
			Pos:        tp.Obj().Pos(),
		})
	}
	return tps
}

// AssignableTo reports whether a value of type v can be assigned to a variable
// of type t. An untyped nil is assignable to any type which has nil as its zero
// value. An invalid type is never assignable, so a broken expression is
// reported only once by the type checker.
func AssignableTo(v, t types.Type) bool {
	if v == nil || t == nil {
		return false
	}
	if !isValid(v) || !isValid(t) {
		return false
	}
	return types.AssignableTo(v, t)
}

func isValid(t types.Type) bool {
	return t != types.Typ[types.Invalid]
}
