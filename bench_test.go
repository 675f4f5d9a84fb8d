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

package adt_test

import (
	"testing"

	. "github.com/wdamron/adt"
)

func BenchmarkNestedConstructor(b *testing.B) {
	pace := MustCompile(movement()).Sub("moving").Sub("running").Constructor("pace")

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if v := pace(4, 30); v.Tag() != "moving" {
			b.Fatal(v)
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	desc := movement()

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := Compile(desc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatch(b *testing.B) {
	gray := colors().Make("gray", uint8(7))
	table := Matchers[int]{
		Cases: map[string]Handler[int]{
			"red":  Const(1),
			"gray": Case(func(level uint8) int { return int(level) }),
		},
		Default: Const(0),
	}

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if Match(gray, table) != 7 {
			b.Fatal("unexpected result")
		}
	}
}

func BenchmarkMatcher(b *testing.B) {
	color := colors()
	gray := color.Make("gray", uint8(7))
	m := MustMatcher(color, Matchers[int]{
		Cases: map[string]Handler[int]{
			"red":   Const(1),
			"green": Const(2),
			"gray":  Case(func(level uint8) int { return int(level) }),
		},
	})

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if m.Match(gray) != 7 {
			b.Fatal("unexpected result")
		}
	}
}
