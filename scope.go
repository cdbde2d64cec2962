// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

import (
	"code.hybscloud.com/kont"
)

// scopeState owns the strong handles acquired by one scoped computation.
type scopeState struct {
	held []func()
}

// drop resets every held handle, last acquired first.
func (s *scopeState) drop() {
	for i := len(s.held) - 1; i >= 0; i-- {
		s.held[i]()
		s.held[i] = nil
	}
	s.held = s.held[:0]
}

// scopeDispatcher is the structural interface for scope operations.
type scopeDispatcher interface {
	dispatchScope(s *scopeState) kont.Resumed
}

// Borrow is the effect operation for upgrading a weak handle inside a scope.
// Perform(Borrow[T]{From: w}) resumes with the object's reference, kept
// alive until the scope ends, or with the nil reference if it is dead.
// The weak handle itself is left untouched.
type Borrow[T Pointer] struct {
	kont.Phantom[T]
	From *Weak[T]
}

func (b Borrow[T]) dispatchScope(s *scopeState) kont.Resumed {
	p := b.From.Lock()
	if !p.Defined() {
		var zero T
		return zero
	}
	s.held = append(s.held, p.Reset)
	return p.Get()
}

// Hold is the effect operation for moving a strong handle into a scope.
// Perform(Hold[T]{Ref: p}) leaves p at the nil reference and resumes with
// the object's reference, kept alive until the scope ends.
type Hold[T Pointer] struct {
	kont.Phantom[T]
	Ref *Strong[T]
}

func (h Hold[T]) dispatchScope(s *scopeState) kont.Resumed {
	p := h.Ref.Move()
	if !p.Defined() {
		var zero T
		return zero
	}
	s.held = append(s.held, p.Reset)
	return p.Get()
}

// scopeHandler implements kont.Handler for scope effects.
// Value type: passed to the evaluation loop on the stack.
type scopeHandler[R any] struct {
	s *scopeState
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h scopeHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	sop, ok := op.(scopeDispatcher)
	if !ok {
		panic("rc: unhandled effect in scopeHandler")
	}
	return sop.dispatchScope(h.s), true
}

// Scoped runs a Cont-world computation that acquires objects through
// [Borrow] and [Hold], then resets every acquired handle, last acquired
// first. References obtained inside the scope must not outlive it.
func Scoped[R any](m kont.Eff[R]) R {
	var s scopeState
	defer s.drop()
	return kont.Handle(m, scopeHandler[R]{s: &s})
}

// ScopedExpr is [Scoped] for Expr-world computations.
func ScopedExpr[R any](m kont.Expr[R]) R {
	var s scopeState
	defer s.drop()
	return kont.HandleExpr(m, scopeHandler[R]{s: &s})
}

// BorrowBind borrows from w and passes the reference to f.
// Fuses Perform(Borrow[T]{From: w}) + Bind.
func BorrowBind[T Pointer, B any](w *Weak[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Borrow[T]{From: w}), f)
}

// HoldBind moves p into the scope and passes the reference to f.
// Fuses Perform(Hold[T]{Ref: p}) + Bind.
func HoldBind[T Pointer, B any](p *Strong[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Hold[T]{Ref: p}), f)
}
