// Package observability provides the boxed text output of the CLI commands.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/skillsync/internal/profile"
	"github.com/jonathan/skillsync/internal/session"
	"github.com/jonathan/skillsync/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// labelWidth aligns the values of a card
	labelWidth = 24
)

// Printer writes formatted summaries to out.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4)))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to max runes, ending in "..." when cut.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}

func pad(s string) string {
	if n := boxWidth - 4 - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// PrintUser outputs the account header: avatar initial, name and email.
func (p *Printer) PrintUser(user *types.User) {
	if user == nil {
		return
	}
	name := user.Name()
	if name == "" {
		name = "Not set"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s\n", user.Initial(), name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", user.Email))
	if user.CreatedAt != "" {
		sb.WriteString(fmt.Sprintf("Joined:   %s", user.CreatedAt))
	}
	p.printBox("ACCOUNT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs one box per section card. Empty values show as "Not set".
func (p *Printer) PrintProfile(cards []profile.Card) {
	for _, card := range cards {
		var sb strings.Builder
		for _, e := range card.Entries {
			value := e.Value
			if value == "" {
				value = "Not set"
			}
			sb.WriteString(fmt.Sprintf("%-*s %s\n", labelWidth, e.Label+":", value))
		}
		p.printBox(strings.ToUpper(card.Title), strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintRoute outputs the landing route chosen for a session.
func (p *Printer) PrintRoute(st session.State, route session.Route) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Authenticated:        %t\n", st.Authenticated()))
	sb.WriteString(fmt.Sprintf("Onboarding complete:  %t\n", st.OnboardingComplete))
	sb.WriteString(fmt.Sprintf("Route:                %s", route))
	p.printBox("INITIAL ROUTE", sb.String())
}
