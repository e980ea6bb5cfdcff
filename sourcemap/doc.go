// Package sourcemap decodes and encodes the "mappings" field of source map
// v3 documents and loads such documents from JSON.
//
// A mappings string holds one group per generated line separated by ';'.
// Each group holds segments separated by ','. A segment is 1, 4 or 5
// Base64 VLQ values:
//
//	generated column, source index, original line, original column, name index
//
// All values are deltas. The generated column restarts at 0 on every line;
// the other four continue from the previous segment that carried them,
// across lines. Decoded Segments hold absolute values.
//
//	m, err := sourcemap.DecodeMappings("AAAA;AACA,EAAE")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m[1][1].OriginalColumn) // 2
//
// Decoding uses the strict vlq decoder, so a value that does not fit in 64
// bits is an error rather than a silently wrapped index.
package sourcemap
