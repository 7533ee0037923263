package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolArrow   = "->"
)

// ColorsEnabled reports whether out is a terminal that should receive ANSI colors.
// Respects NO_COLOR (https://no-color.org/).
func ColorsEnabled(out io.Writer) bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Printer writes styled lines to a single writer.
type Printer struct {
	out    io.Writer
	colors bool
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:    out,
		colors: ColorsEnabled(out),
	}
}

func (p *Printer) style(code string, text string) string {
	if !p.colors {
		return text
	}
	return code + text + reset
}

func (p *Printer) Bold(text string) string {
	return p.style(bold, text)
}

func (p *Printer) Dim(text string) string {
	return p.style(dim, text)
}

func (p *Printer) Header(text string) {
	fmt.Fprintln(p.out, p.Bold(text))
}

func (p *Printer) Success(message string) {
	fmt.Fprintf(p.out, "%s %s\n", p.style(green, SymbolSuccess), p.style(green, message))
}

func (p *Printer) Failure(message string) {
	fmt.Fprintf(p.out, "%s %s\n", p.style(red, SymbolError), p.style(red, message))
}

func (p *Printer) Item(text string) {
	fmt.Fprintf(p.out, "  %s %s\n", SymbolArrow, p.style(cyan, text))
}

// Detail prints an indented key/value line below an item.
func (p *Printer) Detail(key string, value string) {
	fmt.Fprintf(p.out, "       %s: %s\n", key, value)
}

func (p *Printer) Note(text string) {
	fmt.Fprintf(p.out, "       %s\n", p.Dim(text))
}

// DiffLine colors a single unified diff line.
func (p *Printer) DiffLine(line string) {
	switch {
	case len(line) >= 3 && (line[:3] == "---" || line[:3] == "+++"):
		fmt.Fprintln(p.out, p.Bold(line))
	case len(line) > 0 && line[0] == '-':
		fmt.Fprintln(p.out, p.style(red, line))
	case len(line) > 0 && line[0] == '+':
		fmt.Fprintln(p.out, p.style(green, line))
	case len(line) >= 2 && line[:2] == "@@":
		fmt.Fprintln(p.out, p.style(yellow, line))
	default:
		fmt.Fprintln(p.out, line)
	}
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
