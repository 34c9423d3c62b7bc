package sentiment

import (
	"strings"
	"unicode"
)

// Label is the coarse tone of a piece of text
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// Threshold is the polarity magnitude a text must exceed to leave neutral
const Threshold = 0.3

// Counts is a sentiment distribution over several texts
type Counts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Classify maps text to a Label using its lexical polarity
func Classify(text string) Label {
	score := Polarity(text)
	switch {
	case score > Threshold:
		return Positive
	case score < -Threshold:
		return Negative
	default:
		return Neutral
	}
}

// Distribution classifies every text and counts the labels
func Distribution(texts []string) Counts {
	var c Counts
	for _, t := range texts {
		switch Classify(t) {
		case Positive:
			c.Positive++
		case Negative:
			c.Negative++
		default:
			c.Neutral++
		}
	}
	return c
}

// Polarity scores text in [-1, 1]. Each lexicon hit contributes its polarity,
// scaled by a directly preceding intensifier and flipped at half strength by a
// negator within the previous two tokens. The score is the mean over hits.
func Polarity(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	var sum float64
	hits := 0
	for i, tok := range tokens {
		p, ok := lexicon[tok]
		if !ok {
			continue
		}

		if i > 0 {
			if m, ok := intensifiers[tokens[i-1]]; ok {
				p *= m
			}
		}
		if negatedAt(tokens, i) {
			p *= negationFactor
		}

		sum += clamp(p)
		hits++
	}

	if hits == 0 {
		return 0
	}
	return clamp(sum / float64(hits))
}

const negationFactor = -0.5

func negatedAt(tokens []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-2; j-- {
		if isNegator(tokens[j]) {
			return true
		}
	}
	return false
}

func isNegator(tok string) bool {
	if _, ok := negators[tok]; ok {
		return true
	}
	return strings.HasSuffix(tok, "n't")
}

func tokenize(text string) []string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "’", "'")
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
