package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	survey "github.com/AlecAivazis/survey/v2"

	"github.com/gopak/csv2nfo/internal/manager"
	"github.com/gopak/csv2nfo/internal/match"
)

// YearPrompt asks which of the ambiguous candidates is meant.
type YearPrompt func(amb *match.AmbiguousMatchError) (string, error)

type ConsoleUI struct {
	m       *manager.Manager
	out     io.Writer
	askYear YearPrompt
}

func NewConsoleUI(m *manager.Manager) *ConsoleUI {
	return &ConsoleUI{m: m, out: os.Stdout, askYear: askYear}
}

// NoPrompt makes ambiguous lookups fail instead of asking.
func (c *ConsoleUI) NoPrompt() { c.askYear = nil }

func askYear(amb *match.AmbiguousMatchError) (string, error) {
	var year string
	q := &survey.Input{
		Message: fmt.Sprintf("Several %s match %q. Year:", amb.Kind.Label(), amb.Term),
		Help:    "one of: " + strings.Join(amb.Years(), ", "),
		Suggest: func(string) []string { return amb.Years() },
	}
	if err := survey.AskOne(q, &year, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(year), nil
}
