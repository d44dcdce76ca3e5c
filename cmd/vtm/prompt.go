package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-sheets/internal/errors"
	"github.com/KirkDiggler/vtm-sheets/internal/orchestrators/character"
)

// prompter asks questions on out and reads one answer per line from in.
// Lines are read on a separate goroutine so a pending question can be
// abandoned when the context is canceled.
type prompter struct {
	out   io.Writer
	lines chan string
	err   error
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{
		out:   out,
		lines: make(chan string),
	}
	go p.scan(in)
	return p
}

func (p *prompter) scan(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		p.lines <- scanner.Text()
	}
	p.err = scanner.Err()
	close(p.lines)
}

// ask prints label and returns the trimmed answer
func (p *prompter) ask(ctx context.Context, label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", errors.Canceled("input interrupted")
	case line, ok := <-p.lines:
		if !ok {
			fmt.Fprintln(p.out)
			if p.err != nil {
				return "", errors.WrapWithCode(p.err, errors.CodeIO, "failed to read input")
			}
			return "", errors.InvalidArgumentf("input ended before %q was answered", label)
		}
		return strings.TrimSpace(line), nil
	}
}

// askRequired repeats the question until the answer is not blank
func (p *prompter) askRequired(ctx context.Context, label string) (string, error) {
	for {
		answer, err := p.ask(ctx, label)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintf(p.out, "  %s is required\n", label)
	}
}

// askAttribute repeats the question until the answer names an attribute that
// is not already in picked
func (p *prompter) askAttribute(ctx context.Context, label string, picked []vtm.Attribute) (vtm.Attribute, error) {
	for {
		answer, err := p.ask(ctx, label)
		if err != nil {
			return 0, err
		}

		attr, err := vtm.ParseAttribute(answer)
		if err != nil {
			fmt.Fprintf(p.out, "  %s\n", errors.GetMessage(err))
			continue
		}
		if err := character.CheckAttributeChoice(picked, attr); err != nil {
			fmt.Fprintf(p.out, "  %s\n", errors.GetMessage(err))
			continue
		}

		return attr, nil
	}
}

// attributeHelp lists each attribute with its shorthand, one category per line
func attributeHelp() string {
	var b strings.Builder
	for _, category := range vtm.Categories {
		names := make([]string, 0, 3)
		for _, a := range vtm.AttributesIn(category) {
			names = append(names, fmt.Sprintf("%s (%s)", a.DisplayName(), a.Code()))
		}
		fmt.Fprintf(&b, "  %s\n", strings.Join(names, ", "))
	}
	return b.String()
}
