package strength_test

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/5w1tchy/pwmeter/internal/strength"
)

func TestAnalyze_Empty(t *testing.T) {
	r := strength.Analyze("")

	if r.Length != 0 || r.EntropyBits != 0 {
		t.Fatalf("want length=0 entropy=0; got length=%d entropy=%d", r.Length, r.EntropyBits)
	}
	if r.HasUpper || r.HasLower || r.HasDigit || r.HasSymbol {
		t.Fatalf("expected no class flags, got %+v", r)
	}
	if len(r.Suggestions) == 0 || r.Suggestions[0] != strength.MsgLonger {
		t.Fatalf("suggestions should start with the length hint, got %v", r.Suggestions)
	}
}

func TestAnalyze_Password(t *testing.T) {
	r := strength.Analyze("password")

	if !r.IsBlacklisted {
		t.Error("expected blacklisted")
	}
	if !r.HasSequence {
		t.Error("expected sequence match")
	}
	want := []string{
		strength.MsgLonger,
		strength.MsgUpper,
		strength.MsgDigit,
		strength.MsgSymbol,
		strength.MsgSequence,
		strength.MsgCommon,
	}
	if !reflect.DeepEqual(r.Suggestions, want) {
		t.Fatalf("suggestions:\n got %q\nwant %q", r.Suggestions, want)
	}
}

func TestAnalyze_AllClasses(t *testing.T) {
	r := strength.Analyze("Aa1!Aa1!Aa1!")

	if !r.HasUpper || !r.HasLower || !r.HasDigit || !r.HasSymbol {
		t.Fatalf("expected all classes, got %+v", r)
	}
	if r.Length != 12 {
		t.Fatalf("length: want 12, got %d", r.Length)
	}
	if r.HasRepeats || r.HasSequence || r.IsBlacklisted {
		t.Fatalf("unexpected weakness flags: %+v", r)
	}
	if want := int(math.Round(12 * math.Log2(82))); r.EntropyBits != want {
		t.Fatalf("entropy: want %d, got %d", want, r.EntropyBits)
	}
	if !reflect.DeepEqual(r.Suggestions, []string{strength.MsgExcellent}) {
		t.Fatalf("suggestions: got %q", r.Suggestions)
	}
}

func TestAnalyze_Repeats(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"aaaa", true},
		{"aaa", true},
		{"aa", false},
		{"abab", false},
		{"x111y", true},
		{"aabaa", false},
		{"ééé", true},
		{"\n\n\n", false},
		{"a\na\na", false},
	}
	for _, tt := range tests {
		if got := strength.Analyze(tt.in).HasRepeats; got != tt.want {
			t.Errorf("HasRepeats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	r := strength.Analyze("aaaa")
	found := false
	for _, s := range r.Suggestions {
		if s == strength.MsgRepeats {
			found = true
		}
	}
	if !found {
		t.Errorf("expected repeat suggestion in %q", r.Suggestions)
	}
}

func TestAnalyze_Sequence(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"xxABCxx", true},
		{"9123", true},
		{"QWErty", true},
		{"xYz", true},
		{"MyPassWord99", true},
		{"acb", false},
		{"1243", false},
	}
	for _, tt := range tests {
		if got := strength.Analyze(tt.in).HasSequence; got != tt.want {
			t.Errorf("HasSequence(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAnalyze_BlacklistWholeString(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"password", true},
		{"PassWord", true},
		{"LETMEIN", true},
		{"123456", true},
		{"qwerty", true},
		{"password1", false},
		{" password", false},
		{"mypassword", false},
		{"LETME\u0130N", false},
	}
	for _, tt := range tests {
		if got := strength.Analyze(tt.in).IsBlacklisted; got != tt.want {
			t.Errorf("IsBlacklisted(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if !strength.Analyze("mypassword").HasSequence {
		t.Error("longer string containing password should still match the sequence check")
	}
}

func TestAnalyze_Entropy(t *testing.T) {
	tests := []struct {
		in      string
		charset float64
	}{
		{"abcd", 26},
		{"ABCD", 26},
		{"1234", 10},
		{"!!", 20},
		{"aB", 52},
		{"a1", 36},
		{"a!", 46},
	}
	for _, tt := range tests {
		r := strength.Analyze(tt.in)
		want := int(math.Round(float64(r.Length) * math.Log2(tt.charset)))
		if r.EntropyBits != want {
			t.Errorf("entropy(%q) = %d, want %d", tt.in, r.EntropyBits, want)
		}
	}
}

func TestAnalyze_UnicodeAndLongInput(t *testing.T) {
	r := strength.Analyze("пароль🔑")
	if r.Length != 7 {
		t.Errorf("length counts characters, want 7 got %d", r.Length)
	}
	if !r.HasSymbol || r.HasLower || r.HasUpper || r.HasDigit {
		t.Errorf("non-ASCII letters count as symbols, got %+v", r)
	}

	long := strings.Repeat("Ab3$", 10_000)
	r = strength.Analyze(long)
	if r.Length != 40_000 {
		t.Fatalf("length: got %d", r.Length)
	}
	if r.EntropyBits <= 0 {
		t.Fatalf("entropy should stay finite and positive, got %d", r.EntropyBits)
	}

	r = strength.Analyze(string([]byte{0xff, 0xfe, 0xfd}))
	if r.Length != 3 || !r.HasSymbol {
		t.Errorf("invalid UTF-8 should be analyzed without panicking, got %+v", r)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	for _, pwd := range []string{"", "password", "Aa1!Aa1!Aa1!", "zzz123"} {
		a, b := strength.Analyze(pwd), strength.Analyze(pwd)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Analyze(%q) not deterministic: %+v vs %+v", pwd, a, b)
		}
	}
}

func TestFixedSetsAreCopies(t *testing.T) {
	s := strength.Sequences()
	s[0] = "zzz"
	if strength.Sequences()[0] != "abc" {
		t.Error("Sequences must return a copy")
	}
	b := strength.Blacklist()
	b[0] = "zzz"
	if !strength.Analyze("password").IsBlacklisted {
		t.Error("Blacklist must return a copy")
	}
}
