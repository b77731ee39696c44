package edit

import (
	"encoding/json"
	"strings"

	"sugarc/internal/source"
)

// sourceMap is the source-map-v3 document emitted alongside a rewrite.
type sourceMap struct {
	Version  int      `json:"version"`
	Sources  []string `json:"sources"`
	Names    []string `json:"names"`
	Mappings string   `json:"mappings"`
}

const vlqChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeVLQ appends the base64 VLQ encoding of v.
func encodeVLQ(b *strings.Builder, v int32) {
	u := uint32(v) << 1
	if v < 0 {
		u = uint32(-v)<<1 | 1
	}
	for {
		digit := u & 0x1f
		u >>= 5
		if u != 0 {
			digit |= 0x20
		}
		b.WriteByte(vlqChars[digit])
		if u == 0 {
			break
		}
	}
}

// buildSourceMap maps each run of output text back to its original position.
// Verbatim runs advance through the original line index; replacement runs all
// point at the start of the span they replaced, which is enough to take a
// downstream diagnostic back to the sugar it came from.
func buildSourceMap(f *source.File, pieces []piece) []byte {
	var mappings strings.Builder
	var prevSrcLine, prevSrcCol, prevGenCol int32
	segmentsOnLine := false

	segment := func(genCol int32, at source.LineCol) {
		if segmentsOnLine {
			mappings.WriteByte(',')
		}
		srcLine := int32(at.Line) - 1
		srcCol := int32(at.Col) - 1
		encodeVLQ(&mappings, genCol-prevGenCol)
		encodeVLQ(&mappings, 0) // single source
		encodeVLQ(&mappings, srcLine-prevSrcLine)
		encodeVLQ(&mappings, srcCol-prevSrcCol)
		prevGenCol = genCol
		prevSrcLine = srcLine
		prevSrcCol = srcCol
		segmentsOnLine = true
	}

	genCol := int32(0)
	for _, p := range pieces {
		off := p.origOff
		rest := p.text
		for len(rest) > 0 {
			nl := strings.IndexByte(rest, '\n')
			chunk := rest
			newline := false
			if nl >= 0 {
				chunk = rest[:nl]
				rest = rest[nl+1:]
				newline = true
			} else {
				rest = ""
			}

			if chunk != "" {
				segment(genCol, f.LineColAt(off))
				genCol += int32(len(chunk))
			}
			if p.verbatim {
				off += uint32(len(chunk))
				if newline {
					off++
				}
			}
			if newline {
				mappings.WriteByte(';')
				genCol = 0
				prevGenCol = 0
				segmentsOnLine = false
			}
		}
	}

	doc := sourceMap{
		Version:  3,
		Sources:  []string{f.Path},
		Names:    []string{},
		Mappings: mappings.String(),
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	return out
}
