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

	"github.com/stretchr/testify/require"

	. "github.com/wdamron/adt"
)

func TestIfLet(t *testing.T) {
	var got []interface{}
	IfLet(New("count", 3), "count", func(p interface{}) { got = append(got, p) })
	IfLet(New("label", "x"), "count", func(p interface{}) { got = append(got, p) })
	IfLet(Some(4), TagSome, func(p interface{}) { got = append(got, p) })
	require.Equal(t, []interface{}{3, 4}, got)

	sum := 0
	IfLetAs(Ok[int, string](5), TagOk, func(n int) { sum += n })
	IfLetAs(Err[int]("boom"), TagOk, func(n int) { sum += n })
	require.Equal(t, 5, sum)

	var typeErr *PayloadTypeError
	requirePanicsAs(t, &typeErr, func() { IfLetAs(New("count", "3"), "count", func(int) {}) })
}

func TestLetElse(t *testing.T) {
	p := LetElse(New("count", 3), "count", func() { t.Fatalf("fallback must not be called") })
	require.Equal(t, 3, p)

	n := LetElseAs[int](Some(7), TagSome, func() { t.Fatalf("fallback must not be called") })
	require.Equal(t, 7, n)

	type bail struct{}
	r := recovered(func() { LetElse(NewUnit(TagNone), TagSome, func() { panic(bail{}) }) })
	require.Equal(t, bail{}, r)
}

func TestLetElseContract(t *testing.T) {
	called := false
	var contractErr *LetElseContractError
	requirePanicsAs(t, &contractErr, func() {
		LetElse(New("label", "x"), "count", func() { called = true })
	})
	require.True(t, called)
	require.Equal(t, "label", contractErr.Tag)
	require.Equal(t, "count", contractErr.Want)
	require.EqualError(t, contractErr, `let-else fallback for tag "count" did not panic (variant was "label")`)
}
