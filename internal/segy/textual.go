package segy

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	textHeaderSize = 3200
	cardWidth      = 80
	cardCount      = textHeaderSize / cardWidth

	// NoTextHeader is the single card reported when the textual header is blank.
	NoTextHeader = "No text header found or unsupported format"
)

var cardPrefix = regexp.MustCompile(`^C\s*\d{0,2}\s?`)

// decodeText converts a raw 3200-byte textual header to UTF-8. EBCDIC is
// assumed unless most bytes are printable ASCII.
func decodeText(raw []byte) (string, error) {
	if looksLikeASCII(raw) {
		return string(raw), nil
	}

	out, err := charmap.CodePage037.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding EBCDIC text header: %w", err)
	}
	return string(out), nil
}

func looksLikeASCII(raw []byte) bool {
	if len(raw) == 0 {
		return true
	}
	if raw[0] == 0xc3 { // EBCDIC 'C'
		return false
	}

	var printable, asciiSpace, ebcdicSpace int
	for _, b := range raw {
		if (b >= 0x20 && b < 0x7f) || b == '\n' || b == '\r' || b == 0 {
			printable++
		}
		switch b {
		case 0x20:
			asciiSpace++
		case 0x40:
			ebcdicSpace++
		}
	}
	if ebcdicSpace > asciiSpace && ebcdicSpace*2 >= len(raw) {
		return false
	}
	return printable*4 >= len(raw)*3
}

// parseTextCards splits the textual header into 80-column cards, strips the
// "Cnn" card prefix and drops trailing blank cards.
func parseTextCards(text string) TextHeader {
	runes := []rune(strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, text))

	cards := make(TextHeader, 0, cardCount)
	for i := 0; i < cardCount && i*cardWidth < len(runes); i++ {
		end := min((i+1)*cardWidth, len(runes))
		line := strings.TrimRight(string(runes[i*cardWidth:end]), " ")
		line = cardPrefix.ReplaceAllString(line, "")

		cards = append(cards, TextCard{
			Key:  fmt.Sprintf("C%02d", i+1),
			Text: line,
		})
	}

	for len(cards) > 0 && strings.TrimSpace(cards[len(cards)-1].Text) == "" {
		cards = cards[:len(cards)-1]
	}
	if len(cards) == 0 {
		return TextHeader{{Key: "C01", Text: NoTextHeader}}
	}
	return cards
}
