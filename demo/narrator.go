// Package demo walks a reader through the iterator and composite
// patterns on the console, using the sample casino and menus.
package demo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// Section is one part of the walkthrough.
type Section string

const (
	SectionIterator  Section = "iterator"
	SectionComposite Section = "composite"
	SectionCombined  Section = "combined"
	SectionSummary   Section = "summary"
)

// Sections lists every section in the order they are best read.
var Sections = []Section{SectionIterator, SectionComposite, SectionCombined, SectionSummary}

// ErrUnknownSection is returned by ParseSection.
var ErrUnknownSection = errors.New("unknown section")

// ParseSection returns the Section called s, ignoring case.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if strings.EqualFold(s, string(sec)) {
			return sec, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

type Config struct {
	Out io.Writer
	// In is read for ENTER between steps. Only used if Interactive.
	In          io.Reader
	Interactive bool
}

// Narrator prints the walkthrough.
// The first write error is kept and returned from Run;
// nothing more is written after it.
type Narrator struct {
	out         io.Writer
	in          *bufio.Reader
	interactive bool
	err         error

	heading, emphasis, code *color.Color
}

func New(cfg Config) *Narrator {
	n := &Narrator{
		out:         cfg.Out,
		interactive: cfg.Interactive && cfg.In != nil,
		heading:     color.New(color.FgCyan, color.Bold),
		emphasis:    color.New(color.FgGreen),
		code:        color.New(color.FgYellow),
	}
	if n.interactive {
		n.in = bufio.NewReader(cfg.In)
	}
	return n
}

// Run narrates sections in order. With no sections, all of them are run.
func (n *Narrator) Run(ctx context.Context, sections ...Section) error {
	if len(sections) == 0 {
		sections = Sections
	}

	for i, sec := range sections {
		if err := ctx.Err(); err != nil {
			return err
		}

		zerolog.Ctx(ctx).Debug().Str("section", string(sec)).Msg("narrating")

		switch sec {
		case SectionIterator:
			n.iteratorSection(ctx)
		case SectionComposite:
			n.compositeSection(ctx)
		case SectionCombined:
			n.combinedSection(ctx)
		case SectionSummary:
			n.summarySection()
		default:
			return fmt.Errorf("%w: %q", ErrUnknownSection, sec)
		}

		if i < len(sections)-1 {
			n.pause("Press ENTER for the next section...")
		}
		if n.err != nil {
			return n.err
		}
	}

	return nil
}

func (n *Narrator) printf(format string, args ...any) {
	if n.err != nil {
		return
	}
	_, n.err = fmt.Fprintf(n.out, format, args...)
}

func (n *Narrator) colorf(c *color.Color, format string, args ...any) {
	if n.err != nil {
		return
	}
	_, n.err = c.Fprintf(n.out, format, args...)
}

func (n *Narrator) title(s string) {
	bar := strings.Repeat("═", 62)
	n.colorf(n.heading, "╔%s╗\n║ %-60s ║\n╚%s╝\n\n", bar, s, bar)
}

func (n *Narrator) bullets(c *color.Color, header string, lines ...string) {
	n.colorf(c, "\n%s\n", header)
	for _, l := range lines {
		n.printf("   • %s\n", l)
	}
}

// write runs f against the output, unless a write already failed.
func (n *Narrator) write(f func(w io.Writer) error) {
	if n.err != nil {
		return
	}
	n.err = f(n.out)
}

// pause waits for a line on the input. End of input turns pausing off.
func (n *Narrator) pause(prompt string) {
	if !n.interactive || n.err != nil {
		return
	}

	n.printf("\n%s", prompt)
	if _, err := n.in.ReadString('\n'); err != nil {
		if !errors.Is(err, io.EOF) {
			n.err = err
		}
		n.interactive = false
	}
	n.printf("\n")
}
