package edit

import (
	"strings"
)

// piece is one run of output text: either a verbatim slice of the original
// file or a replacement's text anchored at its original start offset.
type piece struct {
	text     string
	origOff  uint32
	verbatim bool
}

// Apply renders the edited text. changed is false when no effective
// replacement survived normalization, in which case the original text is
// returned byte-identical.
func (s *Set) Apply() (code string, changed bool) {
	code, changed, _ = s.render(false)
	return code, changed
}

// ApplyWithMap renders the edited text together with a source-map-v3 JSON
// document. The map is nil for a byte-identical passthrough.
func (s *Set) ApplyWithMap() (code string, changed bool, srcMap []byte) {
	return s.render(true)
}

func (s *Set) render(withMap bool) (string, bool, []byte) {
	repls := s.normalize()
	if len(repls) == 0 {
		return string(s.file.Content), false, nil
	}

	content := s.file.Content
	pieces := make([]piece, 0, len(repls)*2+1)
	var b strings.Builder
	b.Grow(len(content) + len(content)/8)

	pos := uint32(0)
	effective := false
	for _, r := range repls {
		if r.Span.Start > pos {
			chunk := string(content[pos:r.Span.Start])
			pieces = append(pieces, piece{text: chunk, origOff: pos, verbatim: true})
			b.WriteString(chunk)
		}
		if r.Text != s.file.Text(r.Span) {
			effective = true
		}
		if r.Text != "" {
			pieces = append(pieces, piece{text: r.Text, origOff: r.Span.Start})
			b.WriteString(r.Text)
		}
		pos = r.Span.End
	}
	if int(pos) < len(content) {
		chunk := string(content[pos:])
		pieces = append(pieces, piece{text: chunk, origOff: pos, verbatim: true})
		b.WriteString(chunk)
	}

	if !effective {
		return string(content), false, nil
	}
	code := b.String()
	if !withMap {
		return code, true, nil
	}
	return code, true, buildSourceMap(s.file, pieces)
}
