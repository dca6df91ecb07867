package wordle

import "github.com/mcoot/wordpuzzles/internal/model"

// Evaluate scores guess against target. Exact matches are marked first and
// consume their target letter; remaining guess letters then take the leftmost
// unconsumed occurrence, so repeated letters are never over-counted.
// Both words must have the same length.
func Evaluate(target, guess string) []model.LetterState {
	t := []rune(target)
	g := []rune(guess)
	states := make([]model.LetterState, len(g))
	consumed := make([]bool, len(t))

	for i := range g {
		states[i] = model.LetterAbsent
		if i < len(t) && g[i] == t[i] {
			states[i] = model.LetterCorrect
			consumed[i] = true
		}
	}

	for i := range g {
		if states[i] == model.LetterCorrect {
			continue
		}
		for j := range t {
			if !consumed[j] && t[j] == g[i] {
				states[i] = model.LetterPresent
				consumed[j] = true
				break
			}
		}
	}
	return states
}

// allCorrect returns true if every letter is correct
func allCorrect(states []model.LetterState) bool {
	for _, s := range states {
		if s != model.LetterCorrect {
			return false
		}
	}
	return len(states) > 0
}
