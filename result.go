// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package adt

// Result is either `:ok T` or `:err E`.
//
// The zero Result is ok with the zero T.
type Result[T, E any] struct {
	value T
	err   E
	isErr bool
}

// Ok wraps the value of a successful computation.
func Ok[T, E any](value T) Result[T, E] { return Result[T, E]{value: value} }

// OkUnit returns a successful Result without a value; its payload is Unit.
func OkUnit[E any]() Result[Unit, E] { return Result[Unit, E]{} }

// Err wraps the error of a failed computation.
func Err[T, E any](err E) Result[T, E] { return Result[T, E]{err: err, isErr: true} }

// FromPair converts Go's (value, error) convention into a Result. A nil error gives an ok Result.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

func (r Result[T, E]) IsOk() bool  { return !r.isErr }
func (r Result[T, E]) IsErr() bool { return r.isErr }

// Get returns the value of an ok Result and whether the Result is ok.
func (r Result[T, E]) Get() (T, bool) { return r.value, !r.isErr }

// GetErr returns the error of an err Result and whether the Result is err.
func (r Result[T, E]) GetErr() (E, bool) { return r.err, r.isErr }

// Variant returns `:ok value` or `:err error`.
func (r Result[T, E]) Variant() Variant {
	if r.isErr {
		return New(TagErr, r.err)
	}
	return New(TagOk, r.value)
}

func (r Result[T, E]) String() string { return r.Variant().String() }

func (Result[T, E]) nestedVariant() {}

// ResultFrom re-types a variant as a Result. It reports false unless the tag is "ok" with a T
// payload or "err" with an E payload.
func ResultFrom[T, E any](t Tagged) (Result[T, E], bool) {
	v := t.Variant()
	switch v.tag {
	case TagOk:
		if value, ok := castPayload[T](v.payload); ok {
			return Ok[T, E](value), true
		}
	case TagErr:
		if err, ok := castPayload[E](v.payload); ok {
			return Err[T](err), true
		}
	}
	return Result[T, E]{}, false
}
