// Command arith is the CLI entry point for the arith expression engine.
//
// Usage:
//
//	arith tokens [--json] [expr...]   Print the token stream
//	arith parse  [expr...]            Print the AST as JSON
//	arith eval   [expr...]            Evaluate and print the value
//	arith rpn    [expr...]            Print the postfix form
//	arith repl                        Start the interactive evaluator
//
// With no expression arguments, the expression is read from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"arith/internal/ast"
	"arith/internal/config"
	"arith/internal/diag"
	"arith/internal/frontend"
	"arith/internal/lexer"
	"arith/internal/rpn"
	"arith/internal/runtime"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, cfgErr := config.LoadDefault()
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", cfgErr)
	}

	switch os.Args[1] {
	case "tokens":
		cmdTokens(exprArg(), cfg.Output.JSON || hasFlag("--json"))
	case "parse":
		cmdParse(exprArg())
	case "eval":
		cmdEval(exprArg())
	case "rpn":
		cmdRPN(exprArg())
	case "repl":
		cmdRepl(cfg)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command '%s'\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  arith tokens [--json] [expr...]   Tokenize and print the token stream")
	fmt.Fprintln(os.Stderr, "  arith parse  [expr...]            Parse and print the AST (JSON)")
	fmt.Fprintln(os.Stderr, "  arith eval   [expr...]            Evaluate and print the value")
	fmt.Fprintln(os.Stderr, "  arith rpn    [expr...]            Print the expression in postfix form")
	fmt.Fprintln(os.Stderr, "  arith repl                        Start the interactive evaluator")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "With no expression arguments the expression is read from stdin.")
}

// exprArg returns the expression to operate on: the non-flag arguments
// joined with spaces, or all of stdin when none are given.
func exprArg() string {
	var parts []string
	for _, arg := range os.Args[2:] {
		if strings.HasPrefix(arg, "--") {
			continue
		}
		parts = append(parts, arg)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot read stdin: %v\n", err)
		os.Exit(1)
	}
	return strings.TrimRight(string(data), "\n")
}

func hasFlag(flag string) bool {
	for _, arg := range os.Args[2:] {
		if arg == flag {
			return true
		}
	}
	return false
}

// fail prints err and its caret diagnostic to stderr, then exits.
func fail(source string, err *frontend.Error) {
	fmt.Fprintln(os.Stderr, err)
	err.ShowDiagnostic(os.Stderr, source)
	os.Exit(1)
}

// ---- tokens command ----

func cmdTokens(source string, jsonMode bool) {
	tokens, lexErr := lexer.New(source).Tokenize()
	if lexErr != nil {
		fail(source, &frontend.Error{Lex: lexErr})
	}
	if jsonMode {
		printTokensJSON(tokens)
	} else {
		printTokensText(tokens)
	}
}

// ---- parse command ----

func cmdParse(source string) {
	expr, err := frontend.ParseSource(source)
	if err != nil {
		fail(source, err)
	}
	printJSON(map[string]interface{}{"ast": ast.NodeToMap(expr)})
}

// ---- eval command ----

func cmdEval(source string) {
	expr, err := frontend.ParseSource(source)
	if err != nil {
		fail(source, err)
	}
	value, evalErr := runtime.NewInterpreter().Eval(expr)
	if evalErr != nil {
		fmt.Fprintln(os.Stderr, evalErr)
		diag.Render(os.Stderr, source, evalErr.Span)
		os.Exit(1)
	}
	fmt.Println(value)
}

// ---- rpn command ----

func cmdRPN(source string) {
	expr, err := frontend.ParseSource(source)
	if err != nil {
		fail(source, err)
	}
	fmt.Println(rpn.New().Compile(expr))
}
