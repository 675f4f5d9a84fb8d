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
	"strconv"
	"strings"
)

// UnmatchedTagError is raised when a match table has neither a handler for a variant's tag
// nor a default handler.
type UnmatchedTagError struct {
	Tag string
}

func (e *UnmatchedTagError) Error() string {
	return "no matcher for tag " + strconv.Quote(e.Tag)
}

// LetElseContractError is raised when the fallback passed to LetElse returns instead of panicking.
type LetElseContractError struct {
	// Tag of the variant which did not match
	Tag string
	// Tag which was expected
	Want string
}

func (e *LetElseContractError) Error() string {
	return "let-else fallback for tag " + strconv.Quote(e.Want) + " did not panic (variant was " + strconv.Quote(e.Tag) + ")"
}

// UnwrapError is raised when a value is unwrapped from a 'none' or 'err' variant, or when an
// error is unwrapped from an 'ok' variant.
type UnwrapError struct {
	Tag string
	// Message supplied by the caller (Expect, ExpectErr), or "variant was '<tag>'" for Unwrap
	// and UnwrapErr.
	Message string
	Payload interface{}
}

func unwrapMessage(tag string) string { return "variant was '" + tag + "'" }

func (e *UnwrapError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Tag != TagNone {
		sb.WriteString(": ")
		fmt.Fprintf(&sb, "%v", e.Payload)
	}
	return sb.String()
}

// DescriptionError is returned when a description cannot be compiled.
type DescriptionError struct {
	// Dotted path of the offending entry
	Path   string
	Reason string
}

func (e *DescriptionError) Error() string {
	return "invalid description entry " + strconv.Quote(e.Path) + ": " + e.Reason
}

// MemberError is raised when a namespace member is missing or used as the wrong kind of member.
type MemberError struct {
	// Dotted path of the namespace
	Path   string
	Tag    string
	Reason string
}

func (e *MemberError) Error() string {
	tag := e.Tag
	if e.Path != "" {
		tag = e.Path + "." + e.Tag
	}
	return "namespace member " + strconv.Quote(tag) + ": " + e.Reason
}

// PayloadTypeError is raised when a payload does not have the type a typed handler expects.
type PayloadTypeError struct {
	Tag  string
	Want string
	Got  interface{}
}

func (e *PayloadTypeError) Error() string {
	return fmt.Sprintf("payload of tag %q has type %T, expected %s", e.Tag, e.Got, e.Want)
}

// ExhaustivenessError is returned when a match table does not fit the namespace it was built for.
type ExhaustivenessError struct {
	// Tags of the namespace without a handler (only when there is no default handler)
	Missing []string
	// Handled tags which are not part of the namespace
	Unknown []string
}

func (e *ExhaustivenessError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing tags "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "unknown tags "+strings.Join(e.Unknown, ", "))
	}
	return "non-exhaustive match table: " + strings.Join(parts, "; ")
}
