// Package writers holds the file and stream writing helpers shared by the
// splitters and the command shell.
package writers
