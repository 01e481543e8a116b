// Package encoding normalizes bank statement files to UTF-8 before parsing.
// Exports from older banking portals arrive in Windows-1252 or UTF-16 more
// often than not.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffLen is how many bytes are inspected for BOMs and charset heuristics.
const sniffLen = 4096

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// charsets maps chardet results to their decoders. Anything not listed
// falls back to Windows-1252, the usual culprit for legacy exports.
var charsets = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-9":   charmap.ISO8859_9,
	"ISO-8859-15":  charmap.ISO8859_15,
}

// Reader wraps r so that its content reads as UTF-8, whatever the source
// encoding was. A UTF-8 BOM is stripped, UTF-16 is decoded by its BOM, and
// non-UTF-8 content is identified heuristically.
func Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniffing input: %w", err)
	}

	if bytes.HasPrefix(head, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	// UTF-16 BOMs (FF FE / FE FF) are handled by the BOM-aware decoder.
	if len(head) >= 2 && (head[0] == 0xFF && head[1] == 0xFE || head[0] == 0xFE && head[1] == 0xFF) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		return transform.NewReader(br, dec), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if result.Charset == "UTF-8" {
			return br, nil
		}

		if enc, ok := charsets[result.Charset]; ok {
			return transform.NewReader(br, enc.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}
