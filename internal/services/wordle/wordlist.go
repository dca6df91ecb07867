package wordle

import (
	"bufio"
	_ "embed"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/mcoot/wordpuzzles/internal/model"
)

//go:embed words.txt
var embeddedWords string

// WordList holds the answers a game can pick and the guesses it accepts
type WordList struct {
	mu      sync.RWMutex
	answers []string
	allowed map[string]struct{}
}

// NewWordList creates a WordList loaded with the embedded defaults
func NewWordList() *WordList {
	wl := &WordList{}
	_ = wl.LoadWords(strings.Fields(embeddedWords))
	return wl
}

// LoadFromFile replaces the list with the words in a file (one word per line)
func (wl *WordList) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" && !strings.HasPrefix(word, "#") {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return wl.LoadWords(words)
}

// LoadWords replaces the list. Words that are not exactly WordleWordLength
// letters are skipped; an empty result is an error.
func (wl *WordList) LoadWords(words []string) error {
	answers := make([]string, 0, len(words))
	allowed := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if !validShape(w) {
			continue
		}
		if _, dup := allowed[w]; dup {
			continue
		}
		allowed[w] = struct{}{}
		answers = append(answers, w)
	}
	if len(answers) == 0 {
		return model.ErrWordListEmpty
	}

	wl.mu.Lock()
	defer wl.mu.Unlock()
	wl.answers = answers
	wl.allowed = allowed
	return nil
}

func validShape(w string) bool {
	if len([]rune(w)) != model.WordleWordLength {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsAllowed checks if a guess is in the list (case-insensitive)
func (wl *WordList) IsAllowed(word string) bool {
	wl.mu.RLock()
	defer wl.mu.RUnlock()
	_, ok := wl.allowed[strings.ToUpper(word)]
	return ok
}

// Answer returns the answer at index i, wrapping around the list
func (wl *WordList) Answer(i int) string {
	wl.mu.RLock()
	defer wl.mu.RUnlock()
	if len(wl.answers) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}
	return wl.answers[i%len(wl.answers)]
}

// Len returns the number of answers
func (wl *WordList) Len() int {
	wl.mu.RLock()
	defer wl.mu.RUnlock()
	return len(wl.answers)
}
