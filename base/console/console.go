// Package console renders the human readable result of a tool run on stdout.
// Structured logs go to stderr through base/log.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora/v4"
	"github.com/tidwall/pretty"
)

type Printer struct {
	out   io.Writer
	au    *aurora.Aurora
	color bool
}

func New(out io.Writer, color bool) *Printer {
	return &Printer{
		out:   out,
		au:    aurora.New(aurora.WithColors(color)),
		color: color,
	}
}

// Stdout prints in color unless NO_COLOR is set.
func Stdout() *Printer {
	_, noColor := os.LookupEnv("NO_COLOR")
	return New(os.Stdout, !noColor)
}

func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.au.Green(fmt.Sprintf(format, args...)))
}

func (p *Printer) Warn(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.au.Yellow(fmt.Sprintf(format, args...)))
}

func (p *Printer) Fail(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.au.Bold(p.au.Red(fmt.Sprintf(format, args...))))
}

// Field prints "label: value" with a highlighted label.
func (p *Printer) Field(label string, value interface{}) {
	fmt.Fprintf(p.out, "%s %v\n", p.au.Cyan(label+":"), value)
}

// JSON prints v indented, colorized on terminals.
func (p *Printer) JSON(v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	out := pretty.Pretty(raw)
	if p.color {
		out = pretty.Color(out, pretty.TerminalStyle)
	}
	_, err = p.out.Write(out)
	return err
}
