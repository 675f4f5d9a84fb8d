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

import (
	"reflect"
)

// Handler handles the payload of a matched variant. The variant itself is passed as well.
type Handler[R any] func(payload interface{}, v Variant) R

// Matchers is a match table: handlers keyed by tag, plus an optional default handler.
//
//  name := adt.Match(c, adt.Matchers[string]{
//      Cases: map[string]adt.Handler[string]{
//          "red": func(interface{}, adt.Variant) string { return "red" },
//      },
//      Default: func(_ interface{}, v adt.Variant) string { return "not red: " + v.Tag() },
//  })
//
// A handler for the exact tag always wins over the default handler. The default handler receives
// payloads of every tag without a handler of its own; which tags those are is not reflected in
// the payload's static type. A nil handler counts as absent.
type Matchers[R any] struct {
	Cases   map[string]Handler[R]
	Default Handler[R]
}

func (m Matchers[R]) handler(tag string) Handler[R] {
	if h := m.Cases[tag]; h != nil {
		return h
	}
	return m.Default
}

// Match dispatches a variant to the handler for its tag, falling back to the default handler,
// and returns the handler's result. Exactly one handler is called.
//
// Match panics with an *UnmatchedTagError if the table has neither a handler for the tag nor a
// default handler. Use NewMatcher to catch non-exhaustive tables when they are defined.
func Match[R any](t Tagged, m Matchers[R]) R {
	r, err := TryMatch(t, m)
	if err != nil {
		panic(err)
	}
	return r
}

// TryMatch is like Match but returns an *UnmatchedTagError instead of panicking.
func TryMatch[R any](t Tagged, m Matchers[R]) (R, error) {
	v := t.Variant()
	h := m.handler(v.tag)
	if h == nil {
		var zero R
		return zero, &UnmatchedTagError{Tag: v.tag}
	}
	return h(v.payload, v), nil
}

// Case adapts a handler for payloads of type T. The returned handler panics with a
// *PayloadTypeError if a payload is not a T.
func Case[T, R any](f func(T) R) Handler[R] {
	return func(payload interface{}, v Variant) R {
		return f(payloadAs[T](v.tag, payload))
	}
}

// Const returns a handler which ignores the payload and returns r.
func Const[R any](r R) Handler[R] {
	return func(interface{}, Variant) R { return r }
}

// castPayload converts payload to a T. A nil payload converts to the zero T when T can hold nil.
func castPayload[T any](payload interface{}) (T, bool) {
	if p, ok := payload.(T); ok {
		return p, true
	}
	var zero T
	return zero, payload == nil && nilable(typeOf[T]())
}

func payloadAs[T any](tag string, payload interface{}) T {
	p, ok := castPayload[T](payload)
	if !ok {
		panic(&PayloadTypeError{Tag: tag, Want: typeOf[T]().String(), Got: payload})
	}
	return p
}

func typeOf[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }
