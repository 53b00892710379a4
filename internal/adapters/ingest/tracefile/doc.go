// Package tracefile reads gzip-compressed NDJSON execution traces line by line
//
// Design choices:
//   - Stream with bufio.Scanner; the token cap is configurable (32MB default) since a
//     single trace line can carry large nested usage blocks.
//   - Lines are handed out undecoded with their 0-based number so callers can skip
//     a prefix without paying for JSON parsing.
//   - Flatten walks objects with jsonparser and emits dot-joined key paths; arrays
//     stay opaque and numbers keep int64 precision when they fit.
package tracefile
