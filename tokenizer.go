package layout

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrUnterminatedTag   = errors.New("unterminated tag")
	ErrUnterminatedValue = errors.New("unterminated attribute value")
)

type Tokenizer struct {
	r io.RuneScanner
}

func NewTokenizer(r io.RuneScanner) *Tokenizer {
	return &Tokenizer{r: r}
}

// Token reads next token: Text, Comment, StartTag or EndTag. It returns io.EOF when input is over.
func (l *Tokenizer) Token() (any, error) {
	char, _, err := l.r.ReadRune()
	if err != nil {
		return nil, err
	}

	if char != '<' {
		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		return l.readText()
	}

	next, _, err := l.r.ReadRune()
	if err == io.EOF {
		return Text("<"), nil
	}

	if err != nil {
		return nil, err
	}

	switch {
	case next == '/':
		return l.readEndTag()
	case next == '!' || next == '?':
		return l.readDeclaration(next)
	case isLetter(next):
		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		return l.readStartTag()
	default:
		// "<" which does not open a tag, like in "a < b"
		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		return Text("<"), nil
	}
}

func (l *Tokenizer) readText() (any, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return Text(runes), nil
		}

		if err != nil {
			return nil, err
		}

		if read == '<' {
			return Text(runes), l.r.UnreadRune()
		}

		runes = append(runes, read)
	}
}

func (l *Tokenizer) readStartTag() (any, error) {
	name, err := l.name()
	if err != nil {
		return nil, err
	}

	raw, err := l.readTagBody()
	if err != nil {
		return nil, fmt.Errorf("<%s: %w", name, err)
	}

	raw = strings.TrimSpace(raw)
	closing := strings.HasSuffix(raw, "/")

	return StartTag{
		Name:        name,
		Attributes:  ParseAttributes(strings.TrimSuffix(raw, "/")),
		SelfClosing: closing,
	}, nil
}

func (l *Tokenizer) readEndTag() (any, error) {
	name, err := l.name()
	if err != nil {
		return nil, err
	}

	// anything between the name and ">" is meaningless in end tag
	if _, err := l.readTagBody(); err != nil {
		return nil, fmt.Errorf("</%s: %w", name, err)
	}

	if name == "" {
		return Comment(""), nil
	}

	return EndTag{Name: name}, nil
}

// readDeclaration reads <!-- comment -->, <!DOCTYPE ...> or <? ... ?>, the opening "<" and "start" are consumed already
func (l *Tokenizer) readDeclaration(start rune) (any, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			// unclosed comment swallows the rest of the input, just like browsers do
			if strings.HasPrefix(string(runes), "--") {
				return Comment(strings.TrimPrefix(string(runes), "--")), nil
			}

			return nil, fmt.Errorf("<%c: %w", start, ErrUnterminatedTag)
		}

		if err != nil {
			return nil, err
		}

		runes = append(runes, read)

		if read != '>' {
			continue
		}

		data := string(runes[:len(runes)-1])
		if !strings.HasPrefix(data, "--") {
			return Comment(data), nil
		}

		if len(data) >= 4 && strings.HasSuffix(data, "--") {
			return Comment(data[2 : len(data)-2]), nil
		}
	}
}

// readTagBody reads raw content of the tag up to the closing ">" (consumed, but not included in the result).
// Quoted attribute values may contain ">".
func (l *Tokenizer) readTagBody() (string, error) {
	var runes []rune
	var quote rune

	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			if quote != 0 {
				return "", ErrUnterminatedValue
			}

			return "", ErrUnterminatedTag
		}

		if err != nil {
			return "", err
		}

		switch {
		case quote != 0:
			if read == quote {
				quote = 0
			}
		case read == '>':
			return string(runes), nil
		case (read == '"' || read == '\'') && lastSignificant(runes) == '=':
			quote = read
		}

		runes = append(runes, read)
	}
}

// name reads tag name and returns it in lower case
func (l *Tokenizer) name() (string, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return strings.ToLower(string(runes)), nil
		}

		if err != nil {
			return "", err
		}

		if !isTagNameChar(read) {
			return strings.ToLower(string(runes)), l.r.UnreadRune()
		}

		runes = append(runes, read)
	}
}

// lastSignificant returns last non-whitespace rune
func lastSignificant(runes []rune) rune {
	for i := len(runes) - 1; i >= 0; i-- {
		if !isWhitespace(runes[i]) {
			return runes[i]
		}
	}

	return 0
}
