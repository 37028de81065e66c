// Package lineio holds the Line Source and Line Sink collaborators: turning
// a file or standard stream into an in-memory wordlist and back, plus the
// path validation that runs before either side is opened.
//
// The transformation core (wormod-core) never touches I/O; everything
// stream-shaped lives here.
package lineio
