// Package vlq implements the Base64 variable-length quantity encoding used by
// source maps.
//
// A value is a signed 64-bit integer. Its sign is moved into the least
// significant bit of the unsigned magnitude, and the result is split into
// 5-bit groups, least significant group first. Each group becomes one Base64
// digit; bit 0x20 of the digit marks that more digits follow.
//
//	   value    encoding
//	       0    A
//	       1    C
//	      -1    D
//	      16    gB
//	     123    2H
//
// # Architecture Overview
//
//	vlq/                 Digit alphabet, Decode/Encode, streaming Decoder/Encoder
//	├── errors/          Structured error types shared by all packages
//	├── sourcemap/       Source map "mappings" codec and v3 document loader
//	├── internal/cursor/ Position-tracking byte sources and sinks
//	└── cmd/mapdump/     Command-line dumper for mappings strings
//
// # Decoding variants
//
// Decode is strict: a value whose magnitude does not fit in 64 bits is
// rejected with ErrOverflow, and a negative zero ("B") decodes to
// math.MinInt64, which is exactly what Encode produces for that value.
//
// DecodeWrapping reproduces the legacy behavior: the accumulator silently
// wraps, overflow is never reported and "B" decodes to 0. Pick one variant
// per document; mixing them is a correctness hazard.
//
// # Quick Start
//
//	s := vlq.EncodeToString(-16) // "hB"
//
//	v, err := vlq.Decode(strings.NewReader("hB"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decode consumes exactly the bytes of one value, so several values can be
// read from one source:
//
//	dec := vlq.NewDecoder(strings.NewReader("AACA"))
//	for dec.More() {
//	    v, err := dec.Decode()
//	    ...
//	}
//
// The package keeps no global mutable state and never logs; every call is
// independent and safe for concurrent use on independent sources and sinks.
package vlq
