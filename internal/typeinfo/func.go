package typeinfo

import (
	"fmt"
	"go/types"
)

// Func describes a declared function or method. It holds the signature
// information of a [types.Func] that is necessary from the optargen's
// perspective: the parameters and the type parameters which the builder type
// has to carry.
type Func struct {
	sig *types.Signature
}

// FuncOf inspects the given object and returns a new [Func]. It returns an
// error if the object is not a declared function or method.
func FuncOf(obj types.Object) (Func, error) {
	fn, ok := obj.(*types.Func)
	if !ok {
		return Func{}, fmt.Errorf("func: not function: %v", obj)
	}
	return Func{sig: fn.Signature()}, nil
}

// Params returns the parameters in declaration order. The receiver is not
// included. The type of a variadic parameter is a slice.
func (fn Func) Params() []*types.Var {
	return vars(fn.sig.Params())
}

// TypeParams returns the type parameters declared by the function.
func (fn Func) TypeParams() []TypeParam {
	return TypeParamsOf(fn.sig.TypeParams())
}

// RecvTypeParams returns the type parameters named by the receiver. They are
// named as the receiver spells them, which may differ from the receiver type
// declaration:
//
//	type Vec[T any] []T
//	func (v Vec[E]) Get() E // RecvTypeParams: [E any]
func (fn Func) RecvTypeParams() []TypeParam {
	return TypeParamsOf(fn.sig.RecvTypeParams())
}

func vars(tuple *types.Tuple) []*types.Var {
	if tuple == nil {
		return nil
	}
	vs := make([]*types.Var, 0, tuple.Len())
	for v := range tuple.Variables() {
		vs = append(vs, v)
	}
	return vs
}
