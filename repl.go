package crisp

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

const banner = "Welcome to Crisp. Use ctrl-d to exit."

const wordBreaks = " \t()'`,\""

// Repl starts an interactive prompt on the terminal. ctrl-c discards the
// current line, ctrl-d ends the loop.
func (in *Interpreter) Repl(cfg Config) error {
	cfg = cfg.withDefaults()

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(in.complete)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				logger.Printf("history: %v", err)
			}
			f.Close()
		}
	}

	fmt.Fprintln(cfg.Out, banner)

	for {
		text, err := line.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(cfg.Out)
			break
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(text) != "" {
			line.AppendHistory(text)
		}
		in.rep(cfg, text)
	}

	if cfg.HistoryFile == "" {
		return nil
	}

	f, err := os.Create(cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = line.WriteHistory(f)
	return err
}

// complete suggests names bound in the root environment for the word under
// the cursor.
func (in *Interpreter) complete(line string) []string {
	i := strings.LastIndexAny(line, wordBreaks)
	prefix, word := line[:i+1], line[i+1:]
	if word == "" {
		return nil
	}

	suggestions := []string{}
	for _, name := range in.env.Names() {
		if strings.HasPrefix(name, word) {
			suggestions = append(suggestions, prefix+name)
		}
	}
	return suggestions
}
