package presenter_test

import (
	"reflect"
	"testing"

	"github.com/5w1tchy/pwmeter/internal/presenter"
	"github.com/5w1tchy/pwmeter/internal/strength"
)

func TestBucketFor_Clamps(t *testing.T) {
	tests := []struct{ score, want int }{
		{-1, 0}, {0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 3}, {5, 3}, {9, 3},
	}
	for _, tt := range tests {
		if got := presenter.BucketFor(tt.score); got != tt.want {
			t.Errorf("BucketFor(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestScore_IgnoresLowercase(t *testing.T) {
	base := strength.Result{Length: 10, HasUpper: true}
	withLower := base
	withLower.HasLower = true

	if presenter.Score(base) != presenter.Score(withLower) {
		t.Fatalf("lowercase must not change the score: %d vs %d",
			presenter.Score(base), presenter.Score(withLower))
	}
}

func TestScore_Conditions(t *testing.T) {
	tests := []struct {
		name string
		r    strength.Result
		want int
	}{
		{"empty", strength.Result{}, 1},
		{"long only", strength.Result{Length: 8}, 2},
		{"all", strength.Result{Length: 8, HasUpper: true, HasDigit: true, HasSymbol: true}, 5},
		{"repeats", strength.Result{Length: 8, HasUpper: true, HasDigit: true, HasSymbol: true, HasRepeats: true}, 4},
		{"sequence", strength.Result{HasSequence: true}, 0},
		{"blacklisted", strength.Result{IsBlacklisted: true, Length: 8}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := presenter.Score(tt.r); got != tt.want {
				t.Fatalf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_Monotonic(t *testing.T) {
	// weaker is a subset of stronger's satisfied conditions.
	pairs := [][2]strength.Result{
		{{Length: 4}, {Length: 8}},
		{{Length: 8}, {Length: 8, HasUpper: true}},
		{{HasUpper: true, HasRepeats: true}, {HasUpper: true}},
		{{HasSymbol: true, IsBlacklisted: true}, {HasSymbol: true, HasDigit: true}},
		{{HasSequence: true}, {Length: 12, HasUpper: true, HasDigit: true, HasSymbol: true}},
	}
	for i, p := range pairs {
		w, s := presenter.Score(p[0]), presenter.Score(p[1])
		if s < w {
			t.Errorf("pair %d: stronger score %d < weaker score %d", i, s, w)
		}
		if presenter.BucketFor(s) < presenter.BucketFor(w) {
			t.Errorf("pair %d: bucket decreased", i)
		}
	}
}

func TestPresent_Tables(t *testing.T) {
	tests := []struct {
		pwd       string
		bucket    int
		width     int
		class     string
		label     string
		entropy   string
		lengthTxt string
	}{
		{"", 0, 20, "very-weak", "Weak", "Entropy: 0 bits", "Len: 0"},
		{"password", 0, 20, "very-weak", "Weak", "Entropy: 38 bits", "Len: 8"},
		{"Zebra", 1, 45, "weak", "Fair", "Entropy: 29 bits", "Len: 5"},
		{"Zebracorn", 2, 75, "good", "Good", "Entropy: 51 bits", "Len: 9"},
		{"Zebracorn7", 3, 100, "strong", "Strong", "Entropy: 60 bits", "Len: 10"},
		{"Aa1!Aa1!Aa1!", 3, 100, "strong", "Strong", "Entropy: 76 bits", "Len: 12"},
	}
	for _, tt := range tests {
		st := presenter.Present(strength.Analyze(tt.pwd))
		if st.Bucket != tt.bucket || st.BarWidth != tt.width || st.BarClass != tt.class || st.Label != tt.label {
			t.Errorf("Present(%q) = bucket %d width %d class %q label %q; want %d %d %q %q",
				tt.pwd, st.Bucket, st.BarWidth, st.BarClass, st.Label, tt.bucket, tt.width, tt.class, tt.label)
		}
		if st.EntropyText != tt.entropy || st.LengthText != tt.lengthTxt {
			t.Errorf("Present(%q) texts = %q %q; want %q %q",
				tt.pwd, st.EntropyText, st.LengthText, tt.entropy, tt.lengthTxt)
		}
	}
}

func TestPresent_CopiesSuggestions(t *testing.T) {
	r := strength.Analyze("abc")
	st := presenter.Present(r)
	if !reflect.DeepEqual(st.Suggestions, r.Suggestions) {
		t.Fatalf("suggestions differ: %q vs %q", st.Suggestions, r.Suggestions)
	}
	st.Suggestions[0] = "changed"
	if r.Suggestions[0] == "changed" {
		t.Fatal("UIState must not alias the Result suggestions")
	}
}

func TestBarClassesIsACopy(t *testing.T) {
	got := presenter.BarClasses()
	if !reflect.DeepEqual(got, []string{"very-weak", "weak", "good", "strong"}) {
		t.Fatalf("BarClasses = %q", got)
	}
	got[0] = "changed"
	if c := presenter.Present(strength.Analyze("")).BarClass; c != "very-weak" {
		t.Fatalf("writing to BarClasses leaked into Present: %q", c)
	}
}
