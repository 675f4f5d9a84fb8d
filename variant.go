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

	"github.com/google/go-cmp/cmp"
)

// Unit is the payload of tags which carry no data.
type Unit struct{}

// Tagged is implemented by values which carry a Variant, including Variant itself,
// Option and Result.
type Tagged interface {
	Variant() Variant
}

var (
	_ Tagged = Variant{}
	_ Tagged = Option[int]{}
	_ Tagged = Result[int, error]{}
	_ Tagged = Member{}
)

// Variant is an immutable pair of a tag and a payload. The payload of a nested tag is itself a Variant.
//
// Variants are plain values: they may be copied, compared with Equal, and shared across goroutines.
type Variant struct {
	tag     string
	payload interface{}
}

// New creates a variant with the given tag and payload.
func New(tag string, payload interface{}) Variant {
	return Variant{tag: tag, payload: payload}
}

// NewUnit creates a variant with the given tag and a Unit payload.
func NewUnit(tag string) Variant { return Variant{tag: tag, payload: Unit{}} }

func (v Variant) Tag() string          { return v.tag }
func (v Variant) Payload() interface{} { return v.payload }

// Variant returns v.
func (v Variant) Variant() Variant { return v }

// IsUnit reports whether v carries a Unit payload.
func (v Variant) IsUnit() bool {
	_, ok := v.payload.(Unit)
	return ok
}

// Is reports whether v is tagged with tag.
func (v Variant) Is(tag string) bool { return v.tag == tag }

var equalOpts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether v and other have the same tag and deeply equal payloads.
// Nested variants are compared recursively.
func (v Variant) Equal(other Variant) bool {
	return v.tag == other.tag && cmp.Equal(v.payload, other.payload, equalOpts...)
}

// Path returns the chain of tags from v down through nested variant payloads.
func (v Variant) Path() []string {
	var path []string
	Walk(v, func(n Variant) { path = append(path, n.tag) })
	return path
}

// Leaf returns the innermost variant of a nested variant chain.
func (v Variant) Leaf() Variant {
	leaf := v
	Walk(v, func(n Variant) { leaf = n })
	return leaf
}

// Walk calls f for v and each nested variant below it, outermost first.
func Walk(v Variant, f func(Variant)) {
	for {
		f(v)
		next, ok := v.payload.(Variant)
		if !ok {
			return
		}
		v = next
	}
}

// wrap nests v inside one variant per ancestor tag; the first ancestor becomes the outermost tag.
func wrap(v Variant, ancestors []string) Variant {
	for i := len(ancestors) - 1; i >= 0; i-- {
		v = Variant{tag: ancestors[i], payload: v}
	}
	return v
}
