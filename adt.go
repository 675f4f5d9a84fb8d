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

// adt provides algebraic data types over tagged unions: variants, constructors compiled from
// declarative descriptions, tag-based matching, and the Option and Result families.
//
// A Variant pairs a string tag with a payload. Descriptions declare the tags of a data type and
// the payload each tag carries; compiling a description produces a Namespace of ready-made
// variants (unit tags), constructors (function tags), and nested namespaces (nested descriptions).
// Nested tags collapse into a chain of variants, so `moving.running.sprinting` yields
// `:moving (:running (:sprinting ()))`.
//
// Go cannot check the exhaustiveness of a match statically, so exhaustiveness is checked at
// definition time (see NewMatcher) and, as a last resort, at match time (see Match).
//
//
// Supported Features:
//
//   * Unit, function, and nested tags with arbitrarily deep nesting
//   * Match tables with an optional default handler
//   * Definition-time exhaustiveness checks for match tables
//   * Generic Option[T] and Result[T, E] types with the unwrap/expect family
//   * if-let / let-else helpers
//   * Structural equality and JSON encoding of variants
//
//
// Tags are plain strings so that variants survive serialization. Tags from independently
// authored descriptions may collide; keeping them apart is the caller's concern.
package adt
