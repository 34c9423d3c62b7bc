package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Label
	}{
		{"positive entry", "Had a great day. Finished my project. Feeling proud.", Positive},
		{"negative entry", "I feel terrible and sad and lonely today", Negative},
		{"no sentiment words", "I went to the store and bought bread.", Neutral},
		{"empty", "", Neutral},
		{"punctuation only", "...!?", Neutral},
		{"negated positive", "Today was not good", Negative},
		{"contraction negation", "I don't feel happy", Negative},
		{"weak positive stays neutral", "It was a positive meeting", Neutral},
		{"mixed cancels out", "Good morning, bad afternoon", Neutral},
		{"case insensitive", "AMAZING WONDERFUL DAY", Positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	inputs := []string{
		"Had a great day.",
		"Everything went wrong and I am exhausted",
		"Meeting at noon",
		"",
	}
	for _, in := range inputs {
		first := Classify(in)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Classify(in))
		}
		assert.Contains(t, []Label{Positive, Neutral, Negative}, first)
	}
}

func TestPolarityRange(t *testing.T) {
	inputs := []string{
		"absolutely perfect awesome excellent",
		"extremely terrible horrible awful worst",
		"not not not bad",
		"so so so happy",
	}
	for _, in := range inputs {
		p := Polarity(in)
		assert.GreaterOrEqual(t, p, -1.0, in)
		assert.LessOrEqual(t, p, 1.0, in)
	}
}

func TestPolarityIntensifier(t *testing.T) {
	assert.Greater(t, Polarity("very good"), Polarity("good"))
	assert.InDelta(t, 0.7, Polarity("good"), 1e-9)
	assert.InDelta(t, -0.35, Polarity("not good"), 1e-9)
}

func TestDistribution(t *testing.T) {
	counts := Distribution([]string{
		"Had a great day",
		"I am so happy",
		"Terrible, awful morning",
		"Went for a walk",
	})

	assert.Equal(t, Counts{Positive: 2, Neutral: 1, Negative: 1}, counts)
	assert.Equal(t, Counts{}, Distribution(nil))
}
