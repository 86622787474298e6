// Package logtail loads a hypervisor log into memory as an ordered slice of
// lines.
//
// The file is opened, read fully, and closed before any line is returned.
// Windows line endings are normalized by dropping every carriage return, so
// callers only ever see "\n"-separated content. There is no streaming and no
// rotation handling: the scanner needs random forward access over a single
// immutable snapshot.
//
// A missing file is an error; there is nothing to report without the log.
package logtail
