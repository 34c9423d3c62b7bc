package sentiment

// Polarity values follow the pattern/TextBlob English adjective lexicon
// for the words journal entries use most.
var lexicon = map[string]float64{
	// positive
	"amazing":     0.6,
	"awesome":     1.0,
	"beautiful":   0.85,
	"best":        1.0,
	"better":      0.5,
	"blessed":     0.6,
	"bright":      0.7,
	"calm":        0.3,
	"cheerful":    0.8,
	"comfortable": 0.4,
	"confident":   0.5,
	"content":     0.4,
	"delighted":   0.7,
	"delightful":  1.0,
	"energized":   0.5,
	"enjoy":       0.4,
	"enjoyed":     0.5,
	"excellent":   1.0,
	"excited":     0.375,
	"exciting":    0.3,
	"fantastic":   0.4,
	"fine":        0.4167,
	"fun":         0.3,
	"glad":        0.5,
	"good":        0.7,
	"grateful":    0.6,
	"great":       0.8,
	"happy":       0.8,
	"healthy":     0.5,
	"hopeful":     0.5,
	"inspired":    0.6,
	"joy":         0.8,
	"joyful":      0.8,
	"kind":        0.6,
	"love":        0.5,
	"loved":       0.7,
	"lovely":      0.5,
	"lucky":       0.3333,
	"motivated":   0.5,
	"nice":        0.6,
	"optimistic":  0.6,
	"peaceful":    0.6,
	"perfect":     1.0,
	"pleasant":    0.7333,
	"pleased":     0.5,
	"positive":    0.2273,
	"productive":  0.6,
	"proud":       0.8,
	"relaxed":     0.5,
	"relieved":    0.5,
	"rested":      0.4,
	"satisfied":   0.5,
	"strong":      0.4333,
	"success":     0.6,
	"successful":  0.75,
	"thankful":    0.6,
	"thrilled":    0.8,
	"win":         0.8,
	"wonderful":   1.0,

	// negative
	"afraid":       -0.6,
	"angry":        -0.5,
	"annoyed":      -0.5,
	"annoying":     -0.8,
	"anxious":      -0.25,
	"ashamed":      -0.6,
	"awful":        -1.0,
	"bad":          -0.7,
	"bored":        -0.5,
	"boring":       -1.0,
	"broken":       -0.4,
	"depressed":    -0.8,
	"disappointed": -0.75,
	"difficult":    -0.5,
	"drained":      -0.5,
	"exhausted":    -0.4,
	"failed":       -0.5,
	"failure":      -0.6,
	"frustrated":   -0.7,
	"frustrating":  -0.4,
	"guilty":       -0.5,
	"hard":         -0.2917,
	"hate":         -0.8,
	"hopeless":     -0.7,
	"horrible":     -1.0,
	"hurt":         -0.5,
	"lonely":       -0.5,
	"lost":         -0.4,
	"miserable":    -1.0,
	"nervous":      -0.3,
	"overwhelmed":  -0.5,
	"painful":      -0.7,
	"poor":         -0.4,
	"sad":          -0.5,
	"scared":       -0.6,
	"sick":         -0.7143,
	"stressed":     -0.6,
	"stressful":    -0.6,
	"terrible":     -1.0,
	"tired":        -0.4,
	"ugly":         -0.7,
	"unhappy":      -0.6,
	"upset":        -0.6,
	"worried":      -0.5,
	"worse":        -0.4,
	"worst":        -1.0,
	"worthless":    -0.8,
	"wrong":        -0.5,
}

var intensifiers = map[string]float64{
	"absolutely": 1.5,
	"extremely":  1.5,
	"incredibly": 1.5,
	"really":     1.3,
	"so":         1.3,
	"super":      1.3,
	"totally":    1.3,
	"very":       1.3,
	"quite":      1.1,
	"pretty":     1.1,
	"slightly":   0.5,
	"somewhat":   0.6,
	"little":     0.7,
	"barely":     0.5,
}

var negators = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"nothing": {},
	"nobody":  {},
	"neither": {},
	"nor":     {},
	"hardly":  {},
	"cannot":  {},
	"without": {},
}
