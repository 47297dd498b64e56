// Whitespace tokenizer for MIF lines.
//
// MIF keyword lines mix bare words, numbers and double-quoted strings
// (TEXT "label", Charset "WindowsLatin1"). A quoted run is one token with
// the quotes removed; inside quotes \" and \\ stand for themselves.
package mitab

import "strings"

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// Tokenize splits line into tokens. Blank input yields no tokens. An
// unterminated quote runs to the end of the line. An empty quoted string
// ("") is kept as an empty token.
func Tokenize(line string) []string {
	var tokens []string
	var tok strings.Builder

	i := 0
	for i < len(line) {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i >= len(line) {
			break
		}

		tok.Reset()
		quoted := false
		for i < len(line) {
			c := line[i]
			if quoted {
				if c == '\\' && i+1 < len(line) && (line[i+1] == '"' || line[i+1] == '\\') {
					tok.WriteByte(line[i+1])
					i += 2
					continue
				}
				if c == '"' {
					quoted = false
					i++
					continue
				}
				tok.WriteByte(c)
				i++
				continue
			}
			if isSpace(c) {
				break
			}
			if c == '"' {
				quoted = true
				i++
				continue
			}
			tok.WriteByte(c)
			i++
		}
		tokens = append(tokens, tok.String())
	}
	return tokens
}
