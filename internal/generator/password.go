package generator

import (
	"strings"

	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/random"
)

type drawnChar struct {
	r    rune
	kind model.ClassKind
}

type activeClass struct {
	kind     model.ClassKind
	alphabet []rune
	min      int
}

// Password builds a fixed-length secret from the enabled classes in c,
// honoring each class's minimum count. Minimum draws are shuffled into the
// result so they do not cluster at the front.
func Password(c model.GenerationConstraints, src random.Source) (model.GeneratedSecret, error) {
	classes, err := activeClasses(c)
	if err != nil {
		return model.GeneratedSecret{}, err
	}

	buf := make([]drawnChar, 0, c.TotalLength)
	for _, cl := range classes {
		for i := 0; i < cl.min; i++ {
			buf = append(buf, drawnChar{r: cl.alphabet[src.Intn(len(cl.alphabet))], kind: cl.kind})
		}
	}

	// The fill pool is the concatenation of every enabled alphabet, so larger
	// alphabets are proportionally more likely per character.
	poolSize := 0
	for _, cl := range classes {
		poolSize += len(cl.alphabet)
	}
	for remaining := c.TotalLength - len(buf); remaining > 0; remaining-- {
		buf = append(buf, drawFromPool(classes, src.Intn(poolSize)))
	}

	src.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })

	composition := make(map[model.ClassKind]int, len(classes))
	var b strings.Builder
	b.Grow(len(buf))
	for _, ch := range buf {
		b.WriteRune(ch.r)
		composition[ch.kind]++
	}
	return model.GeneratedSecret{Value: b.String(), Composition: composition}, nil
}

func activeClasses(c model.GenerationConstraints) ([]activeClass, error) {
	if c.TotalLength < 1 {
		return nil, invalid(ReasonLengthTooShort)
	}
	classes := make([]activeClass, 0, len(c.Classes))
	required := 0
	for _, cs := range c.Classes {
		if !cs.Enabled || cs.Alphabet == "" {
			continue
		}
		if cs.MinCount < 0 {
			return nil, invalid(ReasonNegativeMinimum)
		}
		alphabet := []rune(cs.Alphabet)
		if cs.Kind == model.ClassCustomSymbol {
			alphabet = []rune(model.DedupAlphabet(cs.Alphabet))
		}
		classes = append(classes, activeClass{kind: cs.Kind, alphabet: alphabet, min: cs.MinCount})
		required += cs.MinCount
	}
	if len(classes) == 0 {
		return nil, invalid(ReasonNoClasses)
	}
	if required > c.TotalLength {
		return nil, invalid(ReasonMinimumsExceed)
	}
	return classes, nil
}

func drawFromPool(classes []activeClass, idx int) drawnChar {
	for _, cl := range classes {
		if idx < len(cl.alphabet) {
			return drawnChar{r: cl.alphabet[idx], kind: cl.kind}
		}
		idx -= len(cl.alphabet)
	}
	// unreachable: idx < poolSize
	last := classes[len(classes)-1]
	return drawnChar{r: last.alphabet[len(last.alphabet)-1], kind: last.kind}
}
