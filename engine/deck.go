package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MinMainDeck is the smallest legal main deck.
const MinMainDeck = 40

// Deck is a parsed deck list.
type Deck struct {
	Name  string
	Main  []CardCode
	Extra []CardCode
	Side  []CardCode
}

// LoadDeck reads a deck list file. Every failure is an ErrConfiguration.
func LoadDeck(path string) (Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return Deck{}, &DeckError{Path: path, Err: fmt.Errorf("unable to open deck file: %w", err)}
	}
	defer f.Close()
	return ReadDeck(f, path)
}

// ReadDeck parses a deck list.
//
// Lines made only of digits are card codes. Codes before a line containing
// "extra" or "side" form the main deck; codes after "extra" and before "side"
// form the extra deck; the rest form the side deck. Other lines (comments,
// "#main") are ignored.
func ReadDeck(r io.Reader, path string) (Deck, error) {
	deck := Deck{Name: path}
	section := &deck.Main

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case strings.Contains(line, "side"):
			section = &deck.Side
			continue
		case strings.Contains(line, "extra") && section == &deck.Main:
			section = &deck.Extra
			continue
		}
		if !allDigits(line) {
			continue
		}
		code, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			return Deck{}, &DeckError{Path: path, Err: fmt.Errorf("card code %q: %w", line, err)}
		}
		*section = append(*section, CardCode(code))
	}
	if err := sc.Err(); err != nil {
		return Deck{}, &DeckError{Path: path, Err: err}
	}
	if len(deck.Main) < MinMainDeck {
		return Deck{}, &DeckError{Path: path, Count: len(deck.Main)}
	}
	return deck, nil
}

// Codes returns every card code of the deck, main first.
func (d Deck) Codes() []CardCode {
	codes := make([]CardCode, 0, len(d.Main)+len(d.Extra)+len(d.Side))
	codes = append(codes, d.Main...)
	codes = append(codes, d.Extra...)
	return append(codes, d.Side...)
}

// allDigits reports whether s is a non-empty run of ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
