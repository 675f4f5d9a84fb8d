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
	"github.com/wdamron/adt/internal/tagmap"
)

// Namespace is the compiled form of a Description. It maps each declared tag to a Member:
// a ready-made variant (unit tags), a constructor (function tags), or a nested Namespace.
//
// A Namespace is immutable once compiled and may be shared across goroutines.
type Namespace struct {
	// dotted path of enclosing tags; empty for a top-level namespace
	path      string
	ancestors tagmap.List
	members   tagmap.Map
}

func (ns *Namespace) Len() int            { return ns.members.Len() }
func (ns *Namespace) Has(tag string) bool { return ns.members.Has(tag) }

// Tags returns the tags of the namespace in declaration order.
func (ns *Namespace) Tags() []string { return ns.members.Tags().Strings() }

// Ancestors returns the tags enclosing a nested namespace, outermost first.
func (ns *Namespace) Ancestors() []string { return ns.ancestors.Strings() }

// Path returns the dotted path of the tags enclosing a nested namespace.
func (ns *Namespace) Path() string { return ns.path }

// Lookup returns the member bound to tag.
func (ns *Namespace) Lookup(tag string) (Member, bool) {
	m, ok := ns.members.Get(tag)
	if !ok {
		return Member{}, false
	}
	return m.(Member), true
}

func (ns *Namespace) member(tag string) Member {
	m, ok := ns.Lookup(tag)
	if !ok {
		panic(&MemberError{Path: ns.path, Tag: tag, Reason: "no such tag"})
	}
	return m
}

// Variant returns the ready-made variant of a unit tag.
func (ns *Namespace) Variant(tag string) Variant { return ns.member(tag).Variant() }

// Make calls the constructor of a function tag.
func (ns *Namespace) Make(tag string, args ...interface{}) Variant {
	return ns.member(tag).Make(args...)
}

// Constructor returns the constructor of a function tag.
func (ns *Namespace) Constructor(tag string) func(args ...interface{}) Variant {
	return ns.member(tag).Constructor()
}

// Sub returns the namespace of a nested tag.
func (ns *Namespace) Sub(tag string) *Namespace { return ns.member(tag).Namespace() }

// At follows a path of tags through nested namespaces and returns the member at the end of the path:
//
//  ns.At("moving", "running", "sprinting").Variant()
//
// At panics with a *MemberError if the path is empty, if a tag is missing, or if a tag before
// the last one is not nested.
func (ns *Namespace) At(path ...string) Member {
	if len(path) == 0 {
		panic(&MemberError{Path: ns.path, Reason: "empty path"})
	}
	for _, tag := range path[:len(path)-1] {
		ns = ns.member(tag).Namespace()
	}
	return ns.member(path[len(path)-1])
}

// Range calls f for each member in declaration order, until f returns false.
func (ns *Namespace) Range(f func(Member) bool) {
	ns.members.Range(func(_ string, m interface{}) bool {
		return f(m.(Member))
	})
}

// Paths returns the path of every unit and function tag reachable from the namespace,
// descending into nested namespaces. Paths are relative to ns and follow declaration order.
func (ns *Namespace) Paths() [][]string {
	var paths [][]string
	ns.paths(nil, &paths)
	return paths
}

func (ns *Namespace) paths(prefix []string, paths *[][]string) {
	ns.Range(func(m Member) bool {
		path := make([]string, len(prefix)+1)
		copy(path, prefix)
		path[len(prefix)] = m.tag
		if m.kind == NestedKind {
			m.sub.paths(path, paths)
		} else {
			*paths = append(*paths, path)
		}
		return true
	})
}

// Member is a tag bound within a Namespace.
//
// A unit member implements Tagged, so it may be matched directly. Members of other kinds panic
// with a *MemberError when their Variant is requested.
type Member struct {
	kind    Kind
	tag     string
	path    string
	variant Variant
	ctor    *constructor
	sub     *Namespace
}

func (m Member) Kind() Kind  { return m.kind }
func (m Member) Tag() string { return m.tag }

// String describes the member, e.g. `func tag moving.running.pace`.
func (m Member) String() string {
	tag := m.tag
	if m.path != "" {
		tag = m.path + "." + m.tag
	}
	return m.kind.String() + " tag " + tag
}

// Variant returns the ready-made variant of a unit member.
func (m Member) Variant() Variant {
	m.expect(UnitKind)
	return m.variant
}

// Make calls the constructor of a function member. Arguments must be assignable to the
// function's parameters; the result is wrapped in one variant per enclosing tag.
func (m Member) Make(args ...interface{}) Variant {
	m.expect(FuncKind)
	return m.ctor.call(args)
}

// Constructor returns the constructor of a function member.
func (m Member) Constructor() func(args ...interface{}) Variant {
	m.expect(FuncKind)
	ctor := m.ctor
	return func(args ...interface{}) Variant { return ctor.call(args) }
}

// Namespace returns the namespace of a nested member.
func (m Member) Namespace() *Namespace {
	m.expect(NestedKind)
	return m.sub
}

func (m Member) expect(kind Kind) {
	if m.kind == kind {
		return
	}
	if m.kind == invalidKind {
		panic(&MemberError{Path: m.path, Tag: m.tag, Reason: "undefined member"})
	}
	panic(&MemberError{Path: m.path, Tag: m.tag, Reason: "is a " + m.kind.String() + " tag, not a " + kind.String() + " tag"})
}
