package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"arith/internal/config"
	"arith/internal/diag"
	"arith/internal/frontend"
	"arith/internal/runtime"
)

// ---- ANSI colors ----

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// palette holds the escape codes in use; every field is empty when color
// output is disabled.
type palette struct {
	reset, red, green, cyan, gray, bold string
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{}
	}
	return palette{
		reset: colorReset,
		red:   colorRed,
		green: colorGreen,
		cyan:  colorCyan,
		gray:  colorGray,
		bold:  colorBold,
	}
}

// ---- repl command ----

func cmdRepl(cfg config.Config) {
	pal := newPalette(cfg.REPL.Color)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            pal.green + cfg.REPL.Prompt + pal.reset,
		HistoryFile:       config.ExpandPath(cfg.REPL.HistoryFile),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init failed: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	// Welcome banner
	fmt.Fprintf(rl.Stdout(), "%s%sarith REPL%s %s(type 'exit' or Ctrl+D to quit)%s\n\n",
		pal.bold, pal.cyan, pal.reset, pal.gray, pal.reset)

	interp := runtime.NewInterpreter()
	var accumulated strings.Builder
	parenDepth := 0

	for {
		// Update prompt based on continuation state
		if parenDepth > 0 {
			rl.SetPrompt(pal.gray + "...   " + pal.reset)
		} else {
			rl.SetPrompt(pal.green + cfg.REPL.Prompt + pal.reset)
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if parenDepth > 0 {
					// Cancel pending continuation
					accumulated.Reset()
					parenDepth = 0
					continue
				}
				// Show hint instead of exiting
				fmt.Fprintf(rl.Stdout(), "\n%s(use 'exit' or Ctrl+D to quit)%s\n", pal.gray, pal.reset)
				continue
			}
			// EOF (Ctrl+D) or other error → exit
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			break
		}

		// Exit command
		if parenDepth == 0 && strings.TrimSpace(line) == "exit" {
			break
		}

		// A line with more '(' than ')' continues onto the next line.
		parenDepth += strings.Count(line, "(") - strings.Count(line, ")")
		accumulated.WriteString(line)
		accumulated.WriteString("\n")

		if parenDepth > 0 {
			continue
		}
		parenDepth = 0

		source := strings.TrimRight(accumulated.String(), "\n")
		accumulated.Reset()

		// Skip empty input
		if strings.TrimSpace(source) == "" {
			continue
		}

		evalLine(rl.Stdout(), rl.Stderr(), pal, interp, source)
	}
}

// evalLine runs one complete input through the pipeline, printing the value
// to out or a colored message plus caret diagnostic to errw.
func evalLine(out, errw io.Writer, pal palette, interp *runtime.Interpreter, source string) {
	expr, err := frontend.ParseSource(source)
	if err != nil {
		fmt.Fprintf(errw, "%s%s%s\n", pal.red, err, pal.reset)
		err.ShowDiagnostic(errw, source)
		return
	}

	value, evalErr := interp.Eval(expr)
	if evalErr != nil {
		fmt.Fprintf(errw, "%s%s%s\n", pal.red, evalErr, pal.reset)
		diag.Render(errw, source, evalErr.Span)
		return
	}

	fmt.Fprintln(out, value)
}
