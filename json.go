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
	"errors"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes v as a two-element array: `["tag", payload]`. A Unit payload encodes as null,
// and an error which does not marshal itself encodes as its message.
func (v Variant) MarshalJSON() ([]byte, error) {
	var payload interface{} = v.payload
	switch p := payload.(type) {
	case Unit:
		payload = nil
	case json.Marshaler:
	case error:
		payload = p.Error()
	}
	return json.Marshal([2]interface{}{v.tag, payload})
}

// UnmarshalJSON decodes a `["tag", payload]` array. The payload is decoded as a generic JSON value,
// except for null which decodes to Unit.
func (v *Variant) UnmarshalJSON(data []byte) error {
	tag, raw, err := decodePair(data)
	if err != nil {
		return err
	}
	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}
	if payload == nil {
		payload = Unit{}
	}
	*v = New(tag, payload)
	return nil
}

func (o Option[T]) MarshalJSON() ([]byte, error) { return o.Variant().MarshalJSON() }

// UnmarshalJSON decodes `["some", value]` or `["none", null]`.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	tag, raw, err := decodePair(data)
	if err != nil {
		return err
	}
	switch tag {
	case TagSome:
		value, err := decodePayload[T](raw)
		if err != nil {
			return err
		}
		*o = Some(value)
	case TagNone:
		var payload interface{}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return err
		}
		if payload != nil {
			return errors.New("payload of option tag none must be null")
		}
		*o = None[T]()
	default:
		return errors.New("unexpected option tag " + tag)
	}
	return nil
}

func (r Result[T, E]) MarshalJSON() ([]byte, error) { return r.Variant().MarshalJSON() }

// UnmarshalJSON decodes `["ok", value]` or `["err", error]`.
func (r *Result[T, E]) UnmarshalJSON(data []byte) error {
	tag, raw, err := decodePair(data)
	if err != nil {
		return err
	}
	switch tag {
	case TagOk:
		value, err := decodePayload[T](raw)
		if err != nil {
			return err
		}
		*r = Ok[T, E](value)
	case TagErr:
		e, err := decodePayload[E](raw)
		if err != nil {
			return err
		}
		*r = Err[T](e)
	default:
		return errors.New("unexpected result tag " + tag)
	}
	return nil
}

// decodePayload decodes raw into a T. A T of type error is decoded from its message.
func decodePayload[T any](raw json.RawMessage) (T, error) {
	var value T
	if p, ok := interface{}(&value).(*error); ok {
		var msg *string
		if err := json.Unmarshal(raw, &msg); err != nil {
			return value, err
		}
		if msg != nil {
			*p = errors.New(*msg)
		}
		return value, nil
	}
	err := json.Unmarshal(raw, &value)
	return value, err
}

func decodePair(data []byte) (string, json.RawMessage, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return "", nil, err
	}
	if len(pair) != 2 {
		return "", nil, errors.New("variant must be encoded as a [tag, payload] pair")
	}
	var tag string
	if err := json.Unmarshal(pair[0], &tag); err != nil {
		return "", nil, err
	}
	if tag == "" {
		return "", nil, errors.New("variant tag must not be empty")
	}
	return tag, pair[1], nil
}
