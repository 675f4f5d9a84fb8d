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
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &variantPrinter{} },
}

func newVariantPrinter() *variantPrinter { return printerPool.Get().(*variantPrinter) }

func (p *variantPrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

type variantPrinter struct {
	sb strings.Builder
}

// nestedVariant is implemented by the Option and Result families, whose payloads print as
// nested variants.
type nestedVariant interface {
	Tagged
	nestedVariant()
}

// String returns a string representation of v:
//
//  :tag payload
//
// Unit payloads print as `()`; nested variants are parenthesized: `:moving (:running (:sprinting ()))`.
func (v Variant) String() string {
	p := newVariantPrinter()
	variantString(p, false, v)
	s := p.sb.String()
	p.Release()
	return s
}

func variantString(p *variantPrinter, simple bool, v Variant) {
	if simple {
		p.sb.WriteByte('(')
	}
	p.sb.WriteByte(':')
	p.sb.WriteString(v.tag)
	p.sb.WriteByte(' ')
	switch payload := v.payload.(type) {
	case Unit:
		p.sb.WriteString("()")
	case Variant:
		variantString(p, true, payload)
	case nestedVariant:
		variantString(p, true, payload.Variant())
	default:
		fmt.Fprintf(&p.sb, "%v", payload)
	}
	if simple {
		p.sb.WriteByte(')')
	}
}
