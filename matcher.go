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
	"sort"

	"github.com/wdamron/adt/internal/tagmap"
)

// Matcher is a match table which was checked against a namespace when it was defined.
// It may be reused for any number of variants and shared across goroutines.
type Matcher[R any] struct {
	cases tagmap.Map
	def   Handler[R]
}

// NewMatcher builds a reusable match table for the variants of ns.
//
// Handlers for tags which are not declared by ns are rejected. Unless m has a default handler,
// every tag of ns must have a handler. Both checks report an *ExhaustivenessError. A nil
// namespace skips the checks.
func NewMatcher[R any](ns *Namespace, m Matchers[R]) (*Matcher[R], error) {
	tags := make([]string, 0, len(m.Cases))
	for tag, h := range m.Cases {
		if h != nil {
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)

	b := tagmap.NewBuilder()
	for _, tag := range tags {
		b.Set(tag, m.Cases[tag])
	}
	matcher := &Matcher[R]{cases: b.Build(), def: m.Default}
	if ns == nil {
		return matcher, nil
	}

	var missing, unknown []string
	for _, tag := range tags {
		if !ns.Has(tag) {
			unknown = append(unknown, tag)
		}
	}
	if m.Default == nil {
		for _, tag := range ns.Tags() {
			if !matcher.cases.Has(tag) {
				missing = append(missing, tag)
			}
		}
	}
	if len(missing) > 0 || len(unknown) > 0 {
		return nil, &ExhaustivenessError{Missing: missing, Unknown: unknown}
	}
	return matcher, nil
}

// MustMatcher is like NewMatcher but panics if the table does not fit the namespace.
func MustMatcher[R any](ns *Namespace, m Matchers[R]) *Matcher[R] {
	matcher, err := NewMatcher(ns, m)
	if err != nil {
		panic(err)
	}
	return matcher
}

// Tags returns the tags with handlers, in lexical order.
func (m *Matcher[R]) Tags() []string { return m.cases.Tags().Strings() }

// HasDefault reports whether the table has a default handler.
func (m *Matcher[R]) HasDefault() bool { return m.def != nil }

func (m *Matcher[R]) handler(tag string) Handler[R] {
	if h, ok := m.cases.Get(tag); ok {
		return h.(Handler[R])
	}
	return m.def
}

// Match dispatches like the package-level Match function.
func (m *Matcher[R]) Match(t Tagged) R {
	r, err := m.TryMatch(t)
	if err != nil {
		panic(err)
	}
	return r
}

// TryMatch dispatches like the package-level TryMatch function.
func (m *Matcher[R]) TryMatch(t Tagged) (R, error) {
	v := t.Variant()
	h := m.handler(v.tag)
	if h == nil {
		var zero R
		return zero, &UnmatchedTagError{Tag: v.tag}
	}
	return h(v.payload, v), nil
}
