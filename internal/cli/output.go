// Package cli wires internal/engine (and its collaborator packages)
// into a cobra-based command line: an Output device, an
// handleError/envOr helper family, and an XCommand-struct-plus-
// Run(w Output) shape, validated in each cobra command's Args hook,
// shared by compare, digest, stats, hashalgos, and version.
package cli

import (
	"fmt"
	"io"
)

// Output defines a uniform interface to write to some stream, so
// commands can be tested against a bytes.Buffer instead of stdout.
type Output interface {
	Print(text string) (int, error)
	Println(text string) (int, error)
	Printf(format string, args ...interface{}) (int, error)
	Printfln(format string, args ...interface{}) (int, error)
}

// PlainOutput is an Output that writes data verbatim to Device.
type PlainOutput struct {
	Device io.Writer
}

func (o *PlainOutput) Print(text string) (int, error) {
	return o.Device.Write([]byte(text))
}

func (o *PlainOutput) Println(text string) (int, error) {
	n1, err := o.Device.Write([]byte(text))
	if err != nil {
		return n1, err
	}
	n2, err := o.Device.Write([]byte{'\n'})
	return n1 + n2, err
}

func (o *PlainOutput) Printf(format string, args ...interface{}) (int, error) {
	return o.Device.Write([]byte(fmt.Sprintf(format, args...)))
}

func (o *PlainOutput) Printfln(format string, args ...interface{}) (int, error) {
	return o.Device.Write([]byte(fmt.Sprintf(format+"\n", args...)))
}
