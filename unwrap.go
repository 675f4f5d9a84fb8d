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

// Unwrap returns the payload of a "some" or "ok" variant. For any other tag it panics with an
// *UnwrapError; the message includes the payload unless the tag is "none".
//
// Unwrap also accepts variants which were built by hand, as long as the payload is a T.
func Unwrap[T any](t Tagged) T {
	v := t.Variant()
	return unwrap[T](v, unwrapMessage(v.tag))
}

// Expect is like Unwrap but panics with the given message. The payload of an "err" variant is
// appended to the message.
func Expect[T any](t Tagged, message string) T { return unwrap[T](t.Variant(), message) }

// UnwrapOr returns the payload of a "some" or "ok" variant, or fallback.
func UnwrapOr[T any](t Tagged, fallback T) T {
	v := t.Variant()
	if isSuccess(v.tag) {
		return payloadAs[T](v.tag, v.payload)
	}
	return fallback
}

// UnwrapOrElse returns the payload of a "some" or "ok" variant, or the result of fallback.
// fallback is only called when it is needed.
func UnwrapOrElse[T any](t Tagged, fallback func() T) T {
	v := t.Variant()
	if isSuccess(v.tag) {
		return payloadAs[T](v.tag, v.payload)
	}
	return fallback()
}

// UnwrapErr returns the payload of an "err" variant, and panics with an *UnwrapError otherwise.
func UnwrapErr[E any](t Tagged) E {
	v := t.Variant()
	return unwrapErr[E](v, unwrapMessage(v.tag))
}

// ExpectErr is like UnwrapErr but panics with the given message, followed by the payload.
func ExpectErr[E any](t Tagged, message string) E { return unwrapErr[E](t.Variant(), message) }

func isSuccess(tag string) bool { return tag == TagSome || tag == TagOk }

func unwrap[T any](v Variant, message string) T {
	if isSuccess(v.tag) {
		return payloadAs[T](v.tag, v.payload)
	}
	panic(&UnwrapError{Tag: v.tag, Message: message, Payload: v.payload})
}

func unwrapErr[E any](v Variant, message string) E {
	if v.tag == TagErr {
		return payloadAs[E](v.tag, v.payload)
	}
	panic(&UnwrapError{Tag: v.tag, Message: message, Payload: v.payload})
}

// Unwrap returns the contained value, and panics with an *UnwrapError if o is none.
func (o Option[T]) Unwrap() T { return o.Expect(unwrapMessage(TagNone)) }

// Expect returns the contained value, and panics with an *UnwrapError carrying message if o is none.
func (o Option[T]) Expect(message string) T {
	if !o.some {
		panic(&UnwrapError{Tag: TagNone, Message: message, Payload: Unit{}})
	}
	return o.value
}

// UnwrapOr returns the contained value or fallback.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.some {
		return fallback
	}
	return o.value
}

// UnwrapOrElse returns the contained value or the result of fallback.
func (o Option[T]) UnwrapOrElse(fallback func() T) T {
	if !o.some {
		return fallback()
	}
	return o.value
}

// Unwrap returns the value of an ok Result, and panics with an *UnwrapError which includes the
// error if r is err.
func (r Result[T, E]) Unwrap() T { return r.Expect(unwrapMessage(TagErr)) }

// Expect returns the value of an ok Result, and panics with an *UnwrapError carrying message
// (followed by the error) if r is err.
func (r Result[T, E]) Expect(message string) T {
	if r.isErr {
		panic(&UnwrapError{Tag: TagErr, Message: message, Payload: r.err})
	}
	return r.value
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.isErr {
		return fallback
	}
	return r.value
}

func (r Result[T, E]) UnwrapOrElse(fallback func() T) T {
	if r.isErr {
		return fallback()
	}
	return r.value
}

// UnwrapErr returns the error of an err Result, and panics with an *UnwrapError if r is ok.
func (r Result[T, E]) UnwrapErr() E { return r.ExpectErr(unwrapMessage(TagOk)) }

// ExpectErr returns the error of an err Result, and panics with an *UnwrapError carrying message
// (followed by the value) if r is ok.
func (r Result[T, E]) ExpectErr(message string) E {
	if !r.isErr {
		panic(&UnwrapError{Tag: TagOk, Message: message, Payload: r.value})
	}
	return r.err
}
