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

// Tags of the Option and Result families.
const (
	TagSome = "some"
	TagNone = "none"
	TagOk   = "ok"
	TagErr  = "err"
)

// Option is either `:some T` or `:none ()`.
//
// The zero Option is none.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T any](value T) Option[T] { return Option[T]{value: value, some: true} }

// None returns the absent Option.
func None[T any]() Option[T] { return Option[T]{} }

func (o Option[T]) IsSome() bool { return o.some }
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// Variant returns `:some value` or `:none ()`.
func (o Option[T]) Variant() Variant {
	if o.some {
		return New(TagSome, o.value)
	}
	return NewUnit(TagNone)
}

func (o Option[T]) String() string { return o.Variant().String() }

func (Option[T]) nestedVariant() {}

// OptionFrom re-types a variant as an Option. It reports false unless the tag is "some" with a T
// payload or "none".
func OptionFrom[T any](t Tagged) (Option[T], bool) {
	v := t.Variant()
	switch v.tag {
	case TagSome:
		if value, ok := castPayload[T](v.payload); ok {
			return Some(value), true
		}
	case TagNone:
		return None[T](), true
	}
	return Option[T]{}, false
}
