package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/muurk/loadmon/internal/appliance"
	"github.com/muurk/loadmon/internal/logging"
	"github.com/muurk/loadmon/internal/ui"
)

// Prompter reads answers from the user and writes prompts and messages to
// the console. Text answers take a whole line. Numeric answers take the
// leading number of the input; whatever follows it on the line stays pending
// for the next numeric read until the line is discarded.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	styles  *ui.Styles
	pause   bool
	pending string // unread rest of the current line
}

// NewPrompter creates a prompter reading from in and writing to out. When
// pause is true, Pause waits for Enter; otherwise it does nothing.
func NewPrompter(in io.Reader, out io.Writer, pause bool) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: ui.NewStyles(out),
		pause:  pause,
	}
}

// Styles returns the styles bound to the prompter's output
func (p *Prompter) Styles() *ui.Styles {
	return p.styles
}

// Print writes s verbatim
func (p *Prompter) Print(s string) {
	fmt.Fprint(p.out, s)
}

// Println writes s followed by a newline
func (p *Prompter) Println(s string) {
	fmt.Fprintln(p.out, s)
}

// ReadLine writes prompt and reads one new line, without its line ending.
// Any pending rest of the previous line is dropped. A final line without a
// newline is returned as is; io.EOF is returned only when no input remains.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		p.Print(p.styles.Prompt.Render(prompt))
	}
	p.DiscardLine()
	return p.readLine()
}

// DiscardLine drops whatever is left of the current line.
func (p *Prompter) DiscardLine() {
	p.pending = ""
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// nextField writes prompt and returns the pending input from its first
// non-space character, reading further lines while nothing but whitespace
// is pending.
func (p *Prompter) nextField(prompt string) (string, error) {
	if prompt != "" {
		p.Print(p.styles.Prompt.Render(prompt))
	}
	for strings.TrimSpace(p.pending) == "" {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		p.pending = line
	}
	p.pending = strings.TrimLeftFunc(p.pending, unicode.IsSpace)
	return p.pending, nil
}

// ReadChoice prompts for a menu choice. Blank lines are skipped and the
// leading integer of the input is taken, so "2abc" reads as 2 and "3.5" as 3.
// Input that does not start with an integer yields an invalid input error.
// The rest of the line is always discarded. Out-of-range integers are
// returned as is.
func (p *Prompter) ReadChoice(prompt string) (int, error) {
	input, err := p.nextField(prompt)
	if err != nil {
		return 0, err
	}
	p.DiscardLine()

	choice, _, convErr := scanInt(input)
	if convErr != nil {
		invalid := appliance.NewInvalidInputError("", "Invalid input! Please enter a number.", convErr)
		logging.LogRejectedInput("", input, invalid)
		return 0, invalid
	}
	return choice, nil
}

// ReadValue prompts until parse accepts the pending input, printing the
// message of each rejection in the error style. A rejection discards the
// rest of the line; on success the input parse left unread stays pending.
// It returns only on success or an I/O error.
func (p *Prompter) ReadValue(prompt, field string, parse func(string) (float64, string, error)) (float64, error) {
	for {
		input, err := p.nextField(prompt)
		if err != nil {
			return 0, err
		}

		v, rest, err := parse(input)
		if err == nil {
			p.pending = rest
			return v, nil
		}

		p.DiscardLine()
		logging.LogRejectedInput(field, input, err)
		p.Println(p.styles.Error.Render(appliance.UserMessage(err)))
	}
}

// scanInt parses an optionally signed run of digits at the start of s and
// returns it with the unread rest of s.
func scanInt(s string) (int, string, error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, s, strconv.ErrSyntax
	}

	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, s, err
	}
	return n, s[i:], nil
}

// Fail prints a rejected-input message preceded by a blank line
func (p *Prompter) Fail(msg string) {
	p.Println("\n" + p.styles.Error.Render(msg))
}

// Pause waits for the user to press Enter, if pausing is enabled.
func (p *Prompter) Pause() error {
	if !p.pause {
		return nil
	}
	p.Print("\n" + p.styles.Muted.Render("Press Enter to continue..."))
	_, err := p.ReadLine("")
	return err
}
