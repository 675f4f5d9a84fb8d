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

// Kind is the kind of payload a tag declares.
type Kind uint8

const (
	invalidKind Kind = iota
	// The tag carries no data; its payload is Unit.
	UnitKind
	// The tag's payload is the result of a function.
	FuncKind
	// The tag's payload is a variant of a nested description.
	NestedKind
)

func (k Kind) String() string {
	switch k {
	case UnitKind:
		return "unit"
	case FuncKind:
		return "func"
	case NestedKind:
		return "nested"
	default:
		return "invalid"
	}
}

// Entry declares a single tag of a description.
type Entry struct {
	Tag  string
	Kind Kind
	// Payload constructor for FuncKind entries. Func may be any function with exactly one result.
	Func interface{}
	// Sub-description for NestedKind entries
	Nested Description
}

// UnitTag declares a tag without data.
func UnitTag(tag string) Entry { return Entry{Tag: tag, Kind: UnitKind} }

// FuncTag declares a tag whose payload is produced by f. f may take any number of arguments
// (including variadic arguments) and must return exactly one value, which becomes the payload as-is.
func FuncTag(tag string, f interface{}) Entry { return Entry{Tag: tag, Kind: FuncKind, Func: f} }

// NestedTag declares a tag whose payload is a variant of the nested description d.
func NestedTag(tag string, d Description) Entry { return Entry{Tag: tag, Kind: NestedKind, Nested: d} }

// Description declares the tags of an algebraic data type and the payload each tag carries.
// Entries keep the order in which they were declared.
//
// Descriptions are persistent values: adding an entry returns a new Description and leaves the
// receiver unchanged. The zero Description is empty and ready to use.
type Description struct {
	entries tagmap.Map
	// tags which were declared more than once; reported by Compile
	dups tagmap.List
}

// Describe creates a description from a list of entries.
//
//  color := adt.Describe(
//      adt.UnitTag("red"),
//      adt.UnitTag("green"),
//      adt.FuncTag("rgb", func(r, g, b uint8) [3]uint8 { return [3]uint8{r, g, b} }),
//  )
func Describe(entries ...Entry) Description {
	var d Description
	for _, e := range entries {
		d = d.With(e)
	}
	return d
}

// With returns a copy of d which includes e. Declaring a tag twice is an error which is
// reported when the description is compiled.
func (d Description) With(e Entry) Description {
	if d.entries.Has(e.Tag) {
		d.dups = d.dups.Append(e.Tag)
		return d
	}
	d.entries = d.entries.Set(e.Tag, e)
	return d
}

func (d Description) Unit(tag string) Description                  { return d.With(UnitTag(tag)) }
func (d Description) Func(tag string, f interface{}) Description   { return d.With(FuncTag(tag, f)) }
func (d Description) Nested(tag string, n Description) Description { return d.With(NestedTag(tag, n)) }

func (d Description) Len() int { return d.entries.Len() }

// Tags returns the declared tags in declaration order.
func (d Description) Tags() []string { return d.entries.Tags().Strings() }

func (d Description) Lookup(tag string) (Entry, bool) {
	e, ok := d.entries.Get(tag)
	if !ok {
		return Entry{}, false
	}
	return e.(Entry), true
}

// Range calls f for each entry in declaration order, until f returns false.
func (d Description) Range(f func(Entry) bool) {
	d.entries.Range(func(_ string, e interface{}) bool {
		return f(e.(Entry))
	})
}
