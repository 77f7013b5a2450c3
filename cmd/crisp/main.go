package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xiam/crisp"
)

var (
	debug   = flag.Bool("debug", false, "trace evaluation to stderr")
	dump    = flag.Bool("dump", false, "print the parsed tree of every line before evaluating it")
	prompt  = flag.String("prompt", crisp.DefaultPrompt, "interactive prompt")
	history = flag.String("history", "", "file to load line history from and save it to")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [file ...]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Without files, starts an interactive prompt. Use - to read stdin.\n\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *debug {
		crisp.SetLogOutput(os.Stderr)
	}

	in := crisp.New()
	cfg := crisp.Config{
		Prompt:      *prompt,
		HistoryFile: *history,
		Dump:        *dump,
		Out:         os.Stdout,
		Err:         os.Stderr,
	}

	if flag.NArg() == 0 {
		if err := in.Repl(cfg); err != nil {
			log.Fatal("Repl: ", err)
		}
		return
	}

	for _, name := range flag.Args() {
		if name == "-" {
			if err := in.Run(os.Stdin, cfg); err != nil {
				log.Fatal("Run: ", err)
			}
			continue
		}

		f, err := os.Open(name)
		if err != nil {
			log.Fatal("os.Open: ", err)
		}
		err = in.Run(f, cfg)
		f.Close()
		if err != nil {
			log.Fatalf("Run %s: %v", name, err)
		}
	}
}
