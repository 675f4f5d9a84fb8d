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
	"fmt"
	"reflect"

	"github.com/wdamron/adt/internal/tagmap"
)

// Compile validates a description and produces its namespace of constructors.
//
// For each entry, in declaration order:
//
//   * a unit tag is bound to a ready-made variant with a Unit payload
//   * a function tag is bound to a constructor which calls the function and uses its result as the payload
//   * a nested tag is bound to the compiled namespace of the nested description
//
// Variants produced anywhere below a nested tag are wrapped once per enclosing tag, so every
// constructor (at any depth) returns the complete chain of variants in a single call.
//
// Compile returns a *DescriptionError for empty or duplicate tags, for function entries which are
// not functions with exactly one result, and for entries of an unknown kind. Compiling the same
// description twice produces independent namespaces which behave identically.
func Compile(d Description) (*Namespace, error) {
	return compile(d, tagmap.EmptyList)
}

// MustCompile is like Compile but panics if the description is invalid.
func MustCompile(d Description) *Namespace {
	ns, err := Compile(d)
	if err != nil {
		panic(err)
	}
	return ns
}

func compile(d Description, ancestors tagmap.List) (*Namespace, error) {
	ns := &Namespace{path: ancestors.Join("."), ancestors: ancestors}
	if d.dups.Len() > 0 {
		return nil, ns.descErr(d.dups.Get(0), "duplicate tag")
	}
	chain := ancestors.Strings()
	members := tagmap.NewBuilder()
	var err error
	d.Range(func(e Entry) bool {
		var m Member
		if m, err = ns.compileEntry(e, chain); err != nil {
			return false
		}
		members.Set(e.Tag, m)
		return true
	})
	if err != nil {
		return nil, err
	}
	ns.members = members.Build()
	return ns, nil
}

func (ns *Namespace) compileEntry(e Entry, chain []string) (Member, error) {
	m := Member{kind: e.Kind, tag: e.Tag, path: ns.path}
	if e.Tag == "" {
		return m, ns.descErr(e.Tag, "empty tag")
	}
	switch e.Kind {
	case UnitKind:
		m.variant = wrap(NewUnit(e.Tag), chain)

	case FuncKind:
		ctor, err := ns.newConstructor(e.Tag, e.Func, chain)
		if err != nil {
			return m, err
		}
		m.ctor = ctor

	case NestedKind:
		sub, err := compile(e.Nested, ns.ancestors.Append(e.Tag))
		if err != nil {
			return m, err
		}
		m.sub = sub

	default:
		return m, ns.descErr(e.Tag, "unknown entry kind "+e.Kind.String())
	}
	return m, nil
}

func (ns *Namespace) descErr(tag, reason string) *DescriptionError {
	path := tag
	if ns.path != "" {
		path = ns.path + "." + tag
	}
	return &DescriptionError{Path: path, Reason: reason}
}

// constructor calls a payload function through reflection and wraps the result.
type constructor struct {
	tag       string
	path      string
	fn        reflect.Value
	ancestors []string
}

func (ns *Namespace) newConstructor(tag string, f interface{}, ancestors []string) (*constructor, error) {
	if f == nil {
		return nil, ns.descErr(tag, "nil function")
	}
	fv := reflect.ValueOf(f)
	if fv.Kind() != reflect.Func {
		return nil, ns.descErr(tag, fmt.Sprintf("expected a function, got %T", f))
	}
	if fv.IsNil() {
		return nil, ns.descErr(tag, "nil function")
	}
	if n := fv.Type().NumOut(); n != 1 {
		return nil, ns.descErr(tag, fmt.Sprintf("function must return exactly one value, returns %d", n))
	}
	return &constructor{tag: tag, path: ns.path, fn: fv, ancestors: ancestors}, nil
}

func (c *constructor) call(args []interface{}) Variant {
	out := c.fn.Call(c.in(args))
	return wrap(New(c.tag, out[0].Interface()), c.ancestors)
}

// in converts arguments to reflect values, panicking with a *MemberError when the arguments
// do not fit the function's parameters.
func (c *constructor) in(args []interface{}) []reflect.Value {
	ft := c.fn.Type()
	n, variadic := ft.NumIn(), ft.IsVariadic()
	switch {
	case variadic && len(args) < n-1:
		panic(c.errorf("expected at least %d arguments, got %d", n-1, len(args)))
	case !variadic && len(args) != n:
		panic(c.errorf("expected %d arguments, got %d", n, len(args)))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if variadic && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		if arg == nil {
			if !nilable(pt) {
				panic(c.errorf("argument %d: nil is not assignable to %s", i, pt))
			}
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			panic(c.errorf("argument %d: %s is not assignable to %s", i, av.Type(), pt))
		}
		in[i] = av
	}
	return in
}

func (c *constructor) errorf(format string, args ...interface{}) *MemberError {
	return &MemberError{Path: c.path, Tag: c.tag, Reason: fmt.Sprintf(format, args...)}
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return true
	}
	return false
}
