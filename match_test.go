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
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/wdamron/adt"
)

func colors() *Namespace {
	return MustCompile(Describe(
		UnitTag("red"),
		UnitTag("green"),
		FuncTag("gray", func(level uint8) uint8 { return level }),
	))
}

// counting returns a handler which records each call under tag.
func counting(calls map[string]int, tag string, result string) Handler[string] {
	return func(interface{}, Variant) string {
		calls[tag]++
		return result
	}
}

func TestMatchExhaustive(t *testing.T) {
	color := colors()
	calls := map[string]int{}
	table := Matchers[string]{
		Cases: map[string]Handler[string]{
			"red":   counting(calls, "red", "r"),
			"green": counting(calls, "green", "g"),
			"gray": func(payload interface{}, v Variant) string {
				calls["gray"]++
				require.Equal(t, "gray", v.Tag())
				return "gray" + strconv.Itoa(int(payload.(uint8)))
			},
		},
	}

	require.Equal(t, "r", Match(color.Variant("red"), table))
	require.Equal(t, map[string]int{"red": 1}, calls)
	require.Equal(t, "g", Match(color.Variant("green"), table))
	require.Equal(t, "gray7", Match(color.Make("gray", uint8(7)), table))
	require.Equal(t, map[string]int{"red": 1, "green": 1, "gray": 1}, calls)
}

func TestMatchDefaultPrecedence(t *testing.T) {
	color := colors()
	calls := map[string]int{}
	table := Matchers[string]{
		Cases:   map[string]Handler[string]{"red": counting(calls, "red", "red")},
		Default: counting(calls, "default", "other"),
	}

	require.Equal(t, "other", Match(color.Variant("green"), table))
	require.Equal(t, map[string]int{"default": 1}, calls)
	require.Equal(t, "red", Match(color.Variant("red"), table))
	require.Equal(t, map[string]int{"default": 1, "red": 1}, calls)

	// The default handler receives the payload and the variant.
	got := Match(color.Make("gray", uint8(3)), Matchers[Variant]{
		Default: func(payload interface{}, v Variant) Variant {
			require.Equal(t, uint8(3), payload)
			return v
		},
	})
	require.True(t, got.Equal(New("gray", uint8(3))))
}

func TestMatchUnmatched(t *testing.T) {
	dir := MustCompile(Describe(UnitTag("left"), UnitTag("right")))
	table := Matchers[string]{
		Cases: map[string]Handler[string]{"left": Const("left")},
	}

	require.Equal(t, "left", Match(dir.Variant("left"), table))
	require.PanicsWithError(t, `no matcher for tag "right"`, func() {
		Match(dir.Variant("right"), table)
	})

	_, err := TryMatch(dir.Variant("right"), table)
	var unmatched *UnmatchedTagError
	require.True(t, errors.As(err, &unmatched))
	require.Equal(t, "right", unmatched.Tag)

	r, err := TryMatch(dir.Variant("left"), table)
	require.NoError(t, err)
	require.Equal(t, "left", r)

	// A nil handler counts as absent.
	table.Cases["right"] = nil
	_, err = TryMatch(dir.Variant("right"), table)
	require.Error(t, err)
}

func TestMatchCase(t *testing.T) {
	color := colors()
	table := Matchers[int]{
		Cases: map[string]Handler[int]{
			"gray": Case(func(level uint8) int { return int(level) * 2 }),
		},
		Default: Const(-1),
	}
	require.Equal(t, 10, Match(color.Make("gray", uint8(5)), table))
	require.Equal(t, -1, Match(color.Variant("red"), table))

	var payloadErr *PayloadTypeError
	requirePanicsAs(t, &payloadErr, func() {
		Match(New("gray", "five"), table)
	})
	require.Equal(t, "uint8", payloadErr.Want)
	require.Equal(t, "five", payloadErr.Got)

	// nil payloads convert to nil-able types.
	errs := Matchers[bool]{Cases: map[string]Handler[bool]{
		"failed": Case(func(err error) bool { return err == nil }),
	}}
	require.True(t, Match(New("failed", nil), errs))
}

func TestMatchOptionAndResult(t *testing.T) {
	describe := Matchers[string]{
		Cases: map[string]Handler[string]{
			TagSome: Case(func(n int) string { return "some " + strconv.Itoa(n) }),
			TagNone: Const("none"),
			TagOk:   Case(func(n int) string { return "ok " + strconv.Itoa(n) }),
			TagErr:  Case(func(err error) string { return "err " + err.Error() }),
		},
	}
	require.Equal(t, "some 1", Match(Some(1), describe))
	require.Equal(t, "none", Match(None[int](), describe))
	require.Equal(t, "ok 2", Match(Ok[int, error](2), describe))
	require.Equal(t, "err boom", Match(Err[int](errors.New("boom")), describe))
}

func TestMatcherExhaustiveness(t *testing.T) {
	color := colors()

	_, err := NewMatcher(color, Matchers[string]{
		Cases: map[string]Handler[string]{
			"red":    Const("red"),
			"purple": Const("purple"),
		},
	})
	var exhaustErr *ExhaustivenessError
	require.True(t, errors.As(err, &exhaustErr), "unexpected error: %v", err)
	require.Equal(t, []string{"green", "gray"}, exhaustErr.Missing)
	require.Equal(t, []string{"purple"}, exhaustErr.Unknown)
	require.EqualError(t, err, "non-exhaustive match table: missing tags green, gray; unknown tags purple")

	// A default handler covers missing tags, but unknown tags are still rejected.
	_, err = NewMatcher(color, Matchers[string]{
		Cases:   map[string]Handler[string]{"purple": Const("purple")},
		Default: Const("other"),
	})
	require.EqualError(t, err, "non-exhaustive match table: unknown tags purple")

	m, err := NewMatcher(color, Matchers[string]{
		Cases:   map[string]Handler[string]{"red": Const("red")},
		Default: Const("other"),
	})
	require.NoError(t, err)
	require.True(t, m.HasDefault())
	require.Equal(t, []string{"red"}, m.Tags())
	require.Equal(t, "red", m.Match(color.Variant("red")))
	require.Equal(t, "other", m.Match(color.Make("gray", uint8(1))))

	requirePanicsAs(t, new(*ExhaustivenessError), func() {
		MustMatcher(color, Matchers[string]{Cases: map[string]Handler[string]{"red": Const("red")}})
	})
}

func TestMatcherWithoutNamespace(t *testing.T) {
	m := MustMatcher[string](nil, Matchers[string]{
		Cases: map[string]Handler[string]{
			"b": Const("b"),
			"a": Const("a"),
			"c": nil,
		},
	})
	require.False(t, m.HasDefault())
	require.Equal(t, []string{"a", "b"}, m.Tags())
	require.Equal(t, "a", m.Match(NewUnit("a")))

	_, err := m.TryMatch(NewUnit("c"))
	require.EqualError(t, err, `no matcher for tag "c"`)
	require.PanicsWithError(t, `no matcher for tag "z"`, func() { m.Match(NewUnit("z")) })
}

func TestMatcherNested(t *testing.T) {
	ns := MustCompile(movement())
	running := MustMatcher(ns.At("moving", "running").Namespace(), Matchers[int]{
		Cases: map[string]Handler[int]{
			"sprinting": Const(3),
			"jogging":   Const(2),
			"pace":      Case(func(seconds int) int { return seconds }),
		},
	})
	speed := MustMatcher(ns, Matchers[int]{
		Cases: map[string]Handler[int]{
			"idle": Const(0),
			"moving": Case(func(v Variant) int {
				return Match(v, Matchers[int]{
					Cases:   map[string]Handler[int]{"running": Case(running.Match)},
					Default: Const(1),
				})
			}),
		},
	})

	require.Equal(t, 0, speed.Match(ns.Variant("idle")))
	require.Equal(t, 1, speed.Match(ns.At("moving", "driving")))
	require.Equal(t, 3, speed.Match(ns.At("moving", "running", "sprinting")))
	require.Equal(t, 90, speed.Match(ns.At("moving", "running", "pace").Make(1, 30)))
}
