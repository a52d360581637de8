// Package presenter turns a strength.Result into widget state and pushes it
// into whichever widgets a caller has bound.
package presenter

import (
	"fmt"

	"github.com/5w1tchy/pwmeter/internal/strength"
)

// UIState is what the meter widgets should show for one Result.
type UIState struct {
	Score       int      `json:"score"`  // 0..5
	Bucket      int      `json:"bucket"` // 0..3
	BarWidth    int      `json:"bar_width"`
	BarClass    string   `json:"bar_class"`
	Label       string   `json:"label"`
	Emoji       string   `json:"emoji"`
	EntropyText string   `json:"entropy_text"`
	LengthText  string   `json:"length_text"`
	Suggestions []string `json:"suggestions"`
}

const (
	BucketWeak = iota
	BucketFair
	BucketGood
	BucketStrong
)

var (
	labels  = [...]string{"Weak", "Fair", "Good", "Strong"}
	emoji   = [...]string{"😟", "😐", "🙂", "💪"}
	widths  = [...]int{20, 45, 75, 100}
	classes = [...]string{"very-weak", "weak", "good", "strong"}
)

// BarClasses returns a copy of every class Present may assign to the bar.
func BarClasses() []string {
	return append([]string(nil), classes[:]...)
}

// Score counts satisfied conditions. Lowercase presence is reported by the
// analyzer but intentionally not scored.
func Score(r strength.Result) int {
	score := 0
	if r.Length >= 8 {
		score++
	}
	if r.HasUpper {
		score++
	}
	if r.HasDigit {
		score++
	}
	if r.HasSymbol {
		score++
	}
	if !r.HasRepeats && !r.HasSequence && !r.IsBlacklisted {
		score++
	}
	return score
}

// BucketFor clamps score-1 into [BucketWeak, BucketStrong].
func BucketFor(score int) int {
	return max(BucketWeak, min(score-1, BucketStrong))
}

// Present maps r to the state of the meter widgets.
func Present(r strength.Result) UIState {
	score := Score(r)
	b := BucketFor(score)
	return UIState{
		Score:       score,
		Bucket:      b,
		BarWidth:    widths[b],
		BarClass:    classes[b],
		Label:       labels[b],
		Emoji:       emoji[b],
		EntropyText: fmt.Sprintf("Entropy: %d bits", r.EntropyBits),
		LengthText:  fmt.Sprintf("Len: %d", r.Length),
		Suggestions: append([]string(nil), r.Suggestions...),
	}
}
