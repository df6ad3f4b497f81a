package uowmock

import (
	"context"
	"errors"

	"siged/internal/domain/document"
	"siged/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(doc *document.Document) error) error
	ViewFn     func(ctx context.Context, fn func(doc *document.Document) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(*document.Document) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithView(fn func(context.Context, func(*document.Document) error) error) *UoW {
	m.ViewFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Failing returns a mock whose every call fails with err without running fn.
func Failing(err error) *UoW {
	fail := func(context.Context, func(*document.Document) error) error { return err }
	return &UoW{WithinTxFn: fail, ViewFn: fail}
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(doc *document.Document) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) View(ctx context.Context, fn func(doc *document.Document) error) error {
	if m.ViewFn != nil {
		return m.ViewFn(ctx, fn)
	}
	return errUnimplemented
}
