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

package tagmap

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

// EmptyList is a List without any tags.
var EmptyList = List{emptyList}

// List is a persistent sequence of tags. Appending to a List never modifies the receiver,
// so lists may share structure (e.g. the ancestor chains of sibling namespaces).
type List struct {
	l *immutable.List
}

func (l List) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l List) Get(i int) string { return l.l.Get(i).(string) }

func (l List) Append(tag string) List {
	imm := l.l
	if imm == nil {
		imm = emptyList
	}
	return List{imm.Append(tag)}
}

func (l List) Range(f func(int, string) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(string)) {
			return
		}
	}
}

// Strings copies the tags into a new slice.
func (l List) Strings() []string {
	tags := make([]string, 0, l.Len())
	l.Range(func(_ int, tag string) bool {
		tags = append(tags, tag)
		return true
	})
	return tags
}

// Join concatenates the tags, placing sep between them.
func (l List) Join(sep string) string {
	n := l.Len()
	if n == 0 {
		return ""
	}
	s := l.Get(0)
	for i := 1; i < n; i++ {
		s += sep + l.Get(i)
	}
	return s
}

type ListBuilder struct {
	b *immutable.ListBuilder
}

func NewListBuilder() ListBuilder {
	return ListBuilder{immutable.NewListBuilder()}
}

func (b ListBuilder) Append(tag string) { b.b.Append(tag) }
func (b ListBuilder) Build() List       { return List{b.b.List()} }
