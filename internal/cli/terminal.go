// Package cli provides an interactive shell for exercising AvroSuggester
// and BanglaSuggester from a terminal, for debugging and manual testing.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bengalinput/shobdo/internal/logger"
	"github.com/bengalinput/shobdo/internal/utils"
	"github.com/bengalinput/shobdo/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	log         = logger.New("shell")
)

// Shell reads lines from stdin and prints suggestions for each. Lines
// beginning with a Bengali scalar are routed to BanglaSuggester; anything
// else is treated as Roman input for AvroSuggester.
type Shell struct {
	avro     *suggest.AvroSuggester
	bangla   *suggest.BanglaSuggester
	noFilter bool
}

// NewShell constructs a Shell. noFilter disables the shell's
// input-validity filtering of Roman lines (utils.IsValidInput) for
// debugging raw queries.
func NewShell(avro *suggest.AvroSuggester, bangla *suggest.BanglaSuggester, noFilter bool) *Shell {
	return &Shell{avro: avro, bangla: bangla, noFilter: noFilter}
}

// Run begins the prompt loop. It returns when stdin is closed.
func (s *Shell) Run() error {
	log.Print("shobdo interactive shell")
	log.Print("type a Roman or Bengali prefix and press Enter (Ctrl+D to exit):")
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(promptStyle.Render("> "))
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.handleLine(line)
	}
}

func (s *Shell) handleLine(line string) {
	var words []string
	if isBengali(line) {
		words = s.bangla.Suggest(line)
	} else {
		if !s.noFilter && !utils.IsValidInput(line) {
			log.Warnf("input %q filtered out", line)
			return
		}
		words = s.avro.Suggest(line)
	}

	if len(words) == 0 {
		log.Warnf("no suggestions for %q", line)
		return
	}

	sort.Strings(words)
	log.Printf("%d suggestion(s) for %q: %s", len(words), line, strings.Join(words, ", "))
}

func isBengali(s string) bool {
	for _, r := range s {
		if r >= 0x0980 && r <= 0x09FF {
			return true
		}
		break
	}
	return false
}
