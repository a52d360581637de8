// Package strength scores a password with coarse character-class heuristics.
package strength

import (
	"math"
	"strings"
)

// Result is the outcome of a single Analyze call.
type Result struct {
	Length        int      `json:"length"`
	HasUpper      bool     `json:"has_upper"`
	HasLower      bool     `json:"has_lower"`
	HasDigit      bool     `json:"has_digit"`
	HasSymbol     bool     `json:"has_symbol"`
	HasRepeats    bool     `json:"has_repeats"`
	HasSequence   bool     `json:"has_sequence"`
	IsBlacklisted bool     `json:"is_blacklisted"`
	EntropyBits   int      `json:"entropy_bits"`
	Suggestions   []string `json:"suggestions"`
}

// Assumed alphabet size per character class.
const (
	lowerPool  = 26
	upperPool  = 26
	digitPool  = 10
	symbolPool = 20
)

// RecommendedLength is the length below which a longer password is suggested.
const RecommendedLength = 12

const (
	MsgLonger    = "Make it longer (12+ characters recommended)."
	MsgUpper     = "Add uppercase letters."
	MsgLower     = "Add lowercase letters."
	MsgDigit     = "Add digits."
	MsgSymbol    = "Add symbols (e.g. !@#$%)."
	MsgRepeats   = "Avoid repeated characters (aaaa or 1111)."
	MsgSequence  = "Avoid simple sequences (abcd, 1234)."
	MsgCommon    = "Avoid common passwords."
	MsgExcellent = "Excellent! Your password is strong."
)

var (
	sequences = []string{"abc", "123", "qwe", "xyz", "password"}
	common    = []string{"password", "123456", "qwerty", "letmein"}
	blacklist = toSet(common)
)

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, s := range list {
		m[s] = struct{}{}
	}
	return m
}

// Sequences returns a copy of the weak substrings checked by Analyze.
func Sequences() []string {
	return append([]string(nil), sequences...)
}

// Blacklist returns a copy of the exact passwords Analyze treats as common.
func Blacklist() []string {
	return append([]string(nil), common...)
}

// Analyze computes the heuristic signals for pwd. It accepts any string.
func Analyze(pwd string) Result {
	var r Result
	for _, c := range pwd {
		r.Length++
		switch {
		case c >= 'a' && c <= 'z':
			r.HasLower = true
		case c >= 'A' && c <= 'Z':
			r.HasUpper = true
		case c >= '0' && c <= '9':
			r.HasDigit = true
		default:
			r.HasSymbol = true
		}
	}

	lower := toLower(pwd)
	r.HasRepeats = hasRun(pwd, 3)
	for _, s := range sequences {
		if strings.Contains(lower, s) {
			r.HasSequence = true
			break
		}
	}
	_, r.IsBlacklisted = blacklist[lower]

	r.EntropyBits = entropy(r)
	r.Suggestions = suggest(r)
	return r
}

// toLower folds case like a locale-independent browser: U+0130 becomes
// "i" plus a combining dot above rather than a bare "i".
func toLower(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "\u0130", "i\u0307"))
}

// hasRun reports whether some character occurs n or more times in a row.
// Line terminators never form a run.
func hasRun(s string, n int) bool {
	var prev rune
	count := 0
	for _, c := range s {
		if isLineTerminator(c) {
			count = 0
			continue
		}
		if count > 0 && c == prev {
			count++
		} else {
			prev, count = c, 1
		}
		if count >= n {
			return true
		}
	}
	return false
}

func isLineTerminator(c rune) bool {
	return c == '\n' || c == '\r' || c == '\u2028' || c == '\u2029'
}

func charsetSize(r Result) int {
	n := 0
	if r.HasLower {
		n += lowerPool
	}
	if r.HasUpper {
		n += upperPool
	}
	if r.HasDigit {
		n += digitPool
	}
	if r.HasSymbol {
		n += symbolPool
	}
	if n == 0 {
		return 1
	}
	return n
}

// entropy is length*log2(charset), which stays finite where charset^length would not.
func entropy(r Result) int {
	bits := float64(r.Length) * math.Log2(float64(charsetSize(r)))
	if math.IsNaN(bits) || math.IsInf(bits, 0) || bits <= 0 {
		return 0
	}
	return int(math.Round(bits))
}

func suggest(r Result) []string {
	var s []string
	if r.Length < RecommendedLength {
		s = append(s, MsgLonger)
	}
	if !r.HasUpper {
		s = append(s, MsgUpper)
	}
	if !r.HasLower {
		s = append(s, MsgLower)
	}
	if !r.HasDigit {
		s = append(s, MsgDigit)
	}
	if !r.HasSymbol {
		s = append(s, MsgSymbol)
	}
	if r.HasRepeats {
		s = append(s, MsgRepeats)
	}
	if r.HasSequence {
		s = append(s, MsgSequence)
	}
	if r.IsBlacklisted {
		s = append(s, MsgCommon)
	}
	if len(s) == 0 {
		s = []string{MsgExcellent}
	}
	return s
}
