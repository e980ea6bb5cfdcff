package sourcemap

import (
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/wippyai/vlq/errors"
)

// Version is the only source map revision Parse accepts.
const Version = 3

// SourceMap is a parsed source map v3 document.
type SourceMap struct {
	File       string
	SourceRoot string
	Sources    []string
	Names      []string
	Mappings   Mappings
	Version    int
}

// Parse parses a source map v3 JSON document and decodes its mappings.
func Parse(data []byte) (*SourceMap, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Load("source map is not valid JSON", nil)
	}

	fields := gjson.GetManyBytes(data, "version", "file", "sourceRoot", "sources", "names", "mappings", "sections")
	version, file, root, sources, names, mappings, sections :=
		fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6]

	if sections.Exists() {
		return nil, errors.Unsupported(errors.PhaseLoad, "indexed source maps (sections)")
	}
	if !version.Exists() {
		return nil, errors.FieldMissing(errors.PhaseLoad, nil, "version")
	}
	if version.Int() != Version {
		return nil, errors.New(errors.PhaseLoad, errors.KindUnsupported).
			Value(version.Int()).
			Detail("source map version %d", version.Int()).
			Build()
	}
	if !mappings.Exists() {
		return nil, errors.FieldMissing(errors.PhaseLoad, nil, "mappings")
	}
	if mappings.Type != gjson.String {
		return nil, errors.InvalidData(errors.PhaseLoad, []string{"mappings"}, "mappings must be a string")
	}

	sm := &SourceMap{
		Version:    Version,
		File:       file.String(),
		SourceRoot: root.String(),
	}
	var err error
	if sm.Sources, err = stringArray(sources, "sources"); err != nil {
		return nil, err
	}
	if sm.Names, err = stringArray(names, "names"); err != nil {
		return nil, err
	}
	if sm.Mappings, err = DecodeMappings(mappings.String()); err != nil {
		return nil, errors.ParseFailed("mappings", err)
	}

	Logger().Debug("parsed source map",
		zap.String("file", sm.File),
		zap.Int("sources", len(sm.Sources)),
		zap.Int("names", len(sm.Names)),
		zap.Int("lines", len(sm.Mappings)))
	return sm, nil
}

func stringArray(res gjson.Result, field string) ([]string, error) {
	if !res.Exists() || res.Type == gjson.Null {
		return nil, nil
	}
	if !res.IsArray() {
		return nil, errors.InvalidData(errors.PhaseLoad, []string{field}, field+" must be an array")
	}
	items := res.Array()
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return out, nil
}

// Source returns the source path at index i, prefixed with SourceRoot.
func (sm *SourceMap) Source(i int64) (string, bool) {
	if i < 0 || i >= int64(len(sm.Sources)) {
		return "", false
	}
	src := sm.Sources[i]
	if sm.SourceRoot == "" {
		return src, true
	}
	if strings.HasSuffix(sm.SourceRoot, "/") {
		return sm.SourceRoot + src, true
	}
	return sm.SourceRoot + "/" + src, true
}

// Name returns the symbol name at index i.
func (sm *SourceMap) Name(i int64) (string, bool) {
	if i < 0 || i >= int64(len(sm.Names)) {
		return "", false
	}
	return sm.Names[i], true
}

// Lookup returns the segment covering the given zero-based generated line
// and column: the last segment on that line whose generated column is not
// past column.
func (sm *SourceMap) Lookup(line int, column int64) (Segment, bool) {
	if line < 0 || line >= len(sm.Mappings) {
		return Segment{}, false
	}
	segs := sm.Mappings[line]
	i := sort.Search(len(segs), func(i int) bool {
		return segs[i].GeneratedColumn > column
	})
	if i == 0 {
		return Segment{}, false
	}
	return segs[i-1], true
}
