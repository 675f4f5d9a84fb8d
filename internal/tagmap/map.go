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

// Package tagmap provides persistent, insertion-ordered mappings from tags to values.
package tagmap

import (
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

// Map is a persistent mapping from tags to values. Lookups go through a sorted index;
// iteration follows the order in which tags were first inserted.
//
// The zero Map is empty and ready to use.
type Map struct {
	index *immutable.SortedMap
	order List
}

func (m Map) Len() int {
	if m.index == nil {
		return 0
	}
	return m.index.Len()
}

func (m Map) Get(tag string) (interface{}, bool) {
	if m.index == nil {
		return nil, false
	}
	return m.index.Get(tag)
}

func (m Map) Has(tag string) bool {
	_, ok := m.Get(tag)
	return ok
}

// Set returns a copy of m which maps tag to v. A tag which is already present keeps its
// original position in the iteration order.
func (m Map) Set(tag string, v interface{}) Map {
	index, order := m.index, m.order
	if index == nil {
		index = emptyMap
	}
	if _, exists := index.Get(tag); !exists {
		order = order.Append(tag)
	}
	return Map{index.Set(tag, v), order}
}

// Tags returns the tags of m in insertion order.
func (m Map) Tags() List { return m.order }

// Range calls f for each entry of m in insertion order, until f returns false.
func (m Map) Range(f func(string, interface{}) bool) {
	m.order.Range(func(_ int, tag string) bool {
		v, _ := m.index.Get(tag)
		return f(tag, v)
	})
}

// Builder batches insertions into a Map. A Builder must not be used after Build.
type Builder struct {
	index *immutable.SortedMapBuilder
	order ListBuilder
}

func NewBuilder() Builder {
	return Builder{immutable.NewSortedMapBuilder(nil), NewListBuilder()}
}

func (b Builder) Has(tag string) bool {
	_, ok := b.index.Get(tag)
	return ok
}

func (b Builder) Set(tag string, v interface{}) Builder {
	if !b.Has(tag) {
		b.order.Append(tag)
	}
	b.index.Set(tag, v)
	return b
}

func (b Builder) Build() Map {
	return Map{b.index.Map(), b.order.Build()}
}
