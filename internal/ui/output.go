package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/oxbel/dirkit/internal/ui/theme"
)

// Output provides styled terminal output.
type Output struct {
	out   io.Writer
	err   io.Writer
	theme theme.Theme
	noTTY bool
	width int
}

// NewOutput creates a new styled output instance.
func NewOutput(out, err io.Writer) *Output {
	width := 80 // default
	if w, _, e := term.GetSize(int(os.Stdout.Fd())); e == nil && w > 0 {
		width = w
	}
	return &Output{
		out:   out,
		err:   err,
		theme: theme.Current(),
		noTTY: !IsTTY(out) || NoColor(),
		width: width,
	}
}

// Width returns the terminal width.
func (o *Output) Width() int {
	return o.width
}

// Wrap wraps text to fit the terminal width.
func (o *Output) Wrap(text string) string {
	if o.width <= 0 {
		return text
	}
	return wordwrap.String(text, o.width)
}

// Success prints a success message with checkmark.
func (o *Output) Success(msg string) {
	sym := o.theme.Symbols().Success
	style := o.theme.Styles().Success
	text := sym + " " + msg
	if o.noTTY {
		fmt.Fprintln(o.out, text)
	} else {
		fmt.Fprintln(o.out, style.Render(text))
	}
}

// Error prints an error message with X mark to stderr.
func (o *Output) Error(msg string) {
	sym := o.theme.Symbols().Error
	style := o.theme.Styles().Error
	text := sym + " " + msg
	if o.noTTY {
		fmt.Fprintln(o.err, text)
	} else {
		fmt.Fprintln(o.err, style.Render(text))
	}
}

// Warning prints a warning message to stderr.
func (o *Output) Warning(msg string) {
	sym := o.theme.Symbols().Warning
	style := o.theme.Styles().Warning
	text := sym + " " + msg
	if o.noTTY {
		fmt.Fprintln(o.err, text)
	} else {
		fmt.Fprintln(o.err, style.Render(text))
	}
}

// Info prints an info message with arrow.
func (o *Output) Info(msg string) {
	sym := o.theme.Symbols().Info
	style := o.theme.Styles().Info
	text := sym + " " + msg
	if o.noTTY {
		fmt.Fprintln(o.out, text)
	} else {
		fmt.Fprintln(o.out, style.Render(text))
	}
}

// Header prints a bold header.
func (o *Output) Header(text string) {
	style := o.theme.Styles().Header
	if o.noTTY {
		fmt.Fprintln(o.out, text)
	} else {
		fmt.Fprintln(o.out, style.Render(text))
	}
}

// Println prints a line to stdout.
func (o *Output) Println(args ...any) {
	fmt.Fprintln(o.out, args...)
}

// Printf prints formatted output to stdout.
func (o *Output) Printf(format string, args ...any) {
	fmt.Fprintf(o.out, format, args...)
}

// Muted prints muted/dim text.
func (o *Output) Muted(msg string) {
	style := o.theme.Styles().Muted
	if o.noTTY {
		fmt.Fprintln(o.out, msg)
	} else {
		fmt.Fprintln(o.out, style.Render(msg))
	}
}

// KeyValue prints a key-value pair.
func (o *Output) KeyValue(key, value string) {
	styles := o.theme.Styles()
	if o.noTTY {
		fmt.Fprintf(o.out, "%s: %s\n", key, value)
	} else {
		fmt.Fprintln(o.out, styles.Key.Render(key+":")+
			" "+styles.Value.Render(value))
	}
}

// SuccessItem prints a success list item.
func (o *Output) SuccessItem(item string) {
	sym := o.theme.Symbols().Success
	styles := o.theme.Styles()
	if o.noTTY {
		fmt.Fprintf(o.out, "  %s %s\n", sym, item)
	} else {
		fmt.Fprintf(o.out, "  %s %s\n",
			styles.Success.Render(sym), item)
	}
}

// ErrorItem prints an error list item to stderr.
func (o *Output) ErrorItem(item string) {
	sym := o.theme.Symbols().Error
	styles := o.theme.Styles()
	if o.noTTY {
		fmt.Fprintf(o.err, "  %s %s\n", sym, item)
	} else {
		fmt.Fprintf(o.err, "  %s %s\n",
			styles.Error.Render(sym), item)
	}
}

// Section prints a section header with underline.
func (o *Output) Section(title string) {
	styles := o.theme.Styles()
	if o.noTTY {
		fmt.Fprintln(o.out, title)
		fmt.Fprintln(o.out, strings.Repeat("-", len(title)))
	} else {
		fmt.Fprintln(o.out, styles.SubHeader.Render(title))
		fmt.Fprintln(o.out, styles.Muted.Render(strings.Repeat("─", len(title))))
	}
}

// Newline prints an empty line.
func (o *Output) Newline() {
	fmt.Fprintln(o.out)
}

// BoldText returns bold-styled text.
func (o *Output) BoldText(text string) string {
	if o.noTTY {
		return text
	}
	return o.theme.Styles().Bold.Render(text)
}

// MutedText returns muted-styled text.
func (o *Output) MutedText(text string) string {
	if o.noTTY {
		return text
	}
	return o.theme.Styles().Muted.Render(text)
}

// EmphasisText returns emphasis-styled text.
func (o *Output) EmphasisText(text string) string {
	if o.noTTY {
		return text
	}
	return o.theme.Styles().Emphasis.Render(text)
}
