package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/growwithdv/Modern-Calculator/internal/calculator"
	"github.com/growwithdv/Modern-Calculator/internal/formatter"
	"github.com/growwithdv/Modern-Calculator/internal/logger"
	"github.com/growwithdv/Modern-Calculator/internal/symbol"
)

var (
	evalFormat     string
	evalOutputFile string
)

// maxEvalLines bounds how many expressions a stdin batch may carry.
const maxEvalLines = 10000

func newEvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions without the interactive UI",
		Long: `Evaluate calculator expressions and print the session.

Expressions run through the same accumulator as the interactive calculator:
strictly left to right, no operator precedence, one shared history. If no
expressions are given, one expression per line is read from stdin.

Use x instead of * to avoid shell globbing.

Examples:
  modcalc eval 3+4
  modcalc eval "12.5 x 3" 100/8
  echo "2+3x4" | modcalc eval
  modcalc eval --output json 5x9 > session.json`,
		RunE: runEval,
	}

	cmd.Flags().StringVarP(&evalFormat, "output", "o", "text", "output format (text, json, csv, markdown)")
	cmd.Flags().StringVar(&evalOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	log := logger.NewWithCallback("eval", isVerbose)

	if !cmd.Flag("output").Changed {
		evalFormat = GetGlobalConfig().Output.DefaultFormat
	}

	expressions := args
	if len(expressions) == 0 {
		lines, err := readExpressionLines(os.Stdin)
		if err != nil {
			return err
		}
		expressions = lines
	}
	if len(expressions) == 0 {
		return fmt.Errorf("no expressions to evaluate")
	}

	acc := calculator.New()
	failures := 0
	for _, expr := range expressions {
		start := time.Now()
		result, err := evaluateExpression(acc, expr)
		if err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", symbol.Get("error"), expr, err)
			// A failed expression must not leak registers into the next one.
			acc.ClearAll()
			continue
		}
		log.Debug("evaluated",
			logger.F("expression", expr),
			logger.F("result", result),
			logger.F("took", time.Since(start)))
	}

	log.Debug("batch complete",
		logger.F("expressions", len(expressions)),
		logger.F("failures", failures))

	if err := outputSession(acc); err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d expressions failed", failures, len(expressions))
	}
	return nil
}

// evaluateExpression feeds one expression through the accumulator the way
// key presses would: digits and decimal points extend the entry, operators
// stage or chain, '=' resolves. A trailing pending operation is resolved at
// the end so "3+4" works without an explicit '='.
func evaluateExpression(acc *calculator.Accumulator, expr string) (string, error) {
	for _, r := range expr {
		switch {
		case r == ' ' || r == '\t':
			continue
		case r == '=':
			if err := acc.Calculate(); err != nil {
				return "", err
			}
		default:
			if op, ok := calculator.ParseOperator(string(r)); ok {
				if err := acc.AppendOperator(op); err != nil {
					return "", err
				}
				continue
			}
			if err := acc.AppendDigit(r); err != nil {
				return "", err
			}
		}
	}

	if err := acc.Calculate(); err != nil {
		return "", err
	}
	return acc.Display(), nil
}

// readExpressionLines reads one expression per line, skipping blanks.
func readExpressionLines(reader io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() && len(lines) < maxEvalLines {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

// outputSession formats the finished session and writes it out.
func outputSession(acc *calculator.Accumulator) error {
	f, err := formatter.New(evalFormat)
	if err != nil {
		return err
	}

	session := &formatter.Session{
		Result:  acc.Display(),
		Entries: acc.History(),
	}
	output, err := f.Format(session)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return handleOutputDestination(output)
}

// handleOutputDestination writes output to file or stdout
func handleOutputDestination(output []byte) error {
	if evalOutputFile == "" {
		fmt.Print(string(output))
		return nil
	}

	if err := writeOutputBytesToFile(output, evalOutputFile); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Output saved to: %s\n", evalOutputFile)
	}
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}
	cleanPath := filepath.Clean(filePath)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
