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

// IfLet calls f with the payload of v if v is tagged with tag. Otherwise it does nothing.
func IfLet(t Tagged, tag string, f func(payload interface{})) {
	if v := t.Variant(); v.tag == tag {
		f(v.payload)
	}
}

// IfLetAs is like IfLet for payloads of type T. It panics with a *PayloadTypeError if the
// matching payload is not a T.
func IfLetAs[T any](t Tagged, tag string, f func(T)) {
	if v := t.Variant(); v.tag == tag {
		f(payloadAs[T](v.tag, v.payload))
	}
}

// LetElse returns the payload of v if v is tagged with tag. Otherwise it calls orElse, which must
// not return: it should panic (or call runtime.Goexit). If orElse returns, LetElse panics with a
// *LetElseContractError.
//
//  n := adt.LetElse(v, "count", func() { panic("not a count") }).(int)
func LetElse(t Tagged, tag string, orElse func()) interface{} {
	v := t.Variant()
	if v.tag != tag {
		orElse()
		panic(&LetElseContractError{Tag: v.tag, Want: tag})
	}
	return v.payload
}

// LetElseAs is like LetElse for payloads of type T.
func LetElseAs[T any](t Tagged, tag string, orElse func()) T {
	return payloadAs[T](tag, LetElse(t, tag, orElse))
}
