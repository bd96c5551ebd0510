// Package frontmatter splits YAML front matter from Markdown post bodies and
// decodes it into the typed metadata the compiler consumes.
package frontmatter

import (
	"bytes"
	"errors"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// front-matter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Split separates YAML front matter (`---` delimited) from the Markdown body.
//
// If the document does not start with a front-matter delimiter, had is false
// and body is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	closeLine := []byte("---" + nl)
	if bytes.HasPrefix(content[start:], closeLine) {
		return []byte{}, content[start+len(closeLine):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	bodyStart := start + idx + len(closeSeq)
	return content[start:end], content[bodyStart:], true, nil
}

func detectNewline(content []byte) string {
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
