package sourcemap

import (
	stderrors "errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/vlq"
	"github.com/wippyai/vlq/errors"
)

// maxFields is the number of values in a segment that names a symbol.
const maxFields = 5

// Segment is one decoded mapping with absolute values. Source, OriginalLine
// and OriginalColumn are meaningful only when HasSource is set; Name only
// when HasName is set.
type Segment struct {
	GeneratedColumn int64
	Source          int64
	OriginalLine    int64
	OriginalColumn  int64
	Name            int64
	HasSource       bool
	HasName         bool
}

// Fields returns the number of VLQ values the segment is encoded with.
func (s Segment) Fields() int {
	switch {
	case s.HasName:
		return 5
	case s.HasSource:
		return 4
	default:
		return 1
	}
}

// Line holds the segments of one generated line, in column order.
type Line []Segment

// Mappings holds one Line per generated line.
type Mappings []Line

// Segments returns the total number of segments.
func (m Mappings) Segments() int {
	n := 0
	for _, line := range m {
		n += len(line)
	}
	return n
}

// state carries the running values that deltas apply to.
type state struct {
	column         int64
	source         int64
	originalLine   int64
	originalColumn int64
	name           int64
}

// DecodeMappings decodes a mappings string.
func DecodeMappings(s string) (Mappings, error) {
	groups := strings.Split(s, ";")
	m := make(Mappings, len(groups))
	var st state

	for i, group := range groups {
		if group == "" {
			continue
		}
		st.column = 0
		segs := strings.Split(group, ",")
		line := make(Line, 0, len(segs))
		for j, text := range segs {
			seg, err := decodeSegment(text, &st)
			if err != nil {
				return nil, withPath(err, fmt.Sprintf("line[%d]", i), fmt.Sprintf("segment[%d]", j))
			}
			line = append(line, seg)
		}
		m[i] = line
	}

	Logger().Debug("decoded mappings",
		zap.Int("lines", len(m)),
		zap.Int("segments", m.Segments()))
	return m, nil
}

func decodeSegment(text string, st *state) (Segment, error) {
	if text == "" {
		return Segment{}, errors.InvalidData(errors.PhaseParse, nil, "empty segment")
	}

	dec := vlq.NewDecoder(strings.NewReader(text))
	var seg Segment

	delta, err := dec.Decode()
	if err != nil {
		return Segment{}, err
	}
	st.column += delta
	seg.GeneratedColumn = st.column

	if dec.More() {
		var fields [3]int64
		for k := range fields {
			if fields[k], err = dec.Decode(); err != nil {
				return Segment{}, err
			}
		}
		st.source += fields[0]
		st.originalLine += fields[1]
		st.originalColumn += fields[2]
		seg.HasSource = true
		seg.Source = st.source
		seg.OriginalLine = st.originalLine
		seg.OriginalColumn = st.originalColumn

		if dec.More() {
			if delta, err = dec.Decode(); err != nil {
				return Segment{}, err
			}
			st.name += delta
			seg.HasName = true
			seg.Name = st.name
		}
	}

	if dec.More() {
		return Segment{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Value(text).
			Detail("segment has more than %d fields", maxFields).
			Build()
	}
	return seg, nil
}

// EncodeMappings encodes m as a mappings string.
func EncodeMappings(m Mappings) string {
	var buf []byte
	var st state

	for i, line := range m {
		if i > 0 {
			buf = append(buf, ';')
		}
		st.column = 0
		for j, seg := range line {
			if j > 0 {
				buf = append(buf, ',')
			}
			buf = vlq.AppendEncode(buf, seg.GeneratedColumn-st.column)
			st.column = seg.GeneratedColumn
			if !seg.HasSource {
				continue
			}
			buf = vlq.AppendEncode(buf, seg.Source-st.source)
			buf = vlq.AppendEncode(buf, seg.OriginalLine-st.originalLine)
			buf = vlq.AppendEncode(buf, seg.OriginalColumn-st.originalColumn)
			st.source = seg.Source
			st.originalLine = seg.OriginalLine
			st.originalColumn = seg.OriginalColumn
			if seg.HasName {
				buf = vlq.AppendEncode(buf, seg.Name-st.name)
				st.name = seg.Name
			}
		}
	}
	return string(buf)
}

func withPath(err error, path ...string) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.WithPath(path...)
	}
	return err
}
