package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mic47/platypus-diff/internal/align"
	"github.com/mic47/platypus-diff/internal/diffengine"
	"github.com/mic47/platypus-diff/internal/diffutil"
	"github.com/mic47/platypus-diff/internal/render"
	"github.com/mic47/platypus-diff/internal/report"
	"github.com/mic47/platypus-diff/internal/scoring"
)

type options struct {
	debug                   bool
	debugFile               string
	format                  string
	noColor                 bool
	policyName              string
	blockMarkersInAlignment bool
}

func newRootCmd() *cobra.Command {
	var opt options

	cmd := &cobra.Command{
		Use:           "platydiff <left> <right>",
		Short:         "Print a token-level visual diff of two text files",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opt, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opt.debug, "debug", "d", false, "print the alignment operation list before the diff")
	flags.StringVar(&opt.debugFile, "debug-file", "", "write the alignment operation list to this file instead of stdout")
	flags.StringVar(&opt.format, "format", "text", "output format: text, markdown, or html")
	flags.BoolVar(&opt.noColor, "no-color", false, "disable ANSI color markup")
	flags.StringVar(&opt.policyName, "policy", "affine", "scoring policy: affine or uniform")
	flags.BoolVar(&opt.blockMarkersInAlignment, "block-markers-significant", true,
		"treat indentation markers as part of the aligned sequence instead of splicing them back in like whitespace")

	return cmd
}

func run(opt options, leftPath, rightPath string) error {
	if opt.noColor {
		color.NoColor = true
	}

	policy, err := resolvePolicy(opt.policyName)
	if err != nil {
		return err
	}

	left, leftErr := readInput(leftPath)
	right, rightErr := readInput(rightPath)
	if leftErr != nil || rightErr != nil {
		if leftErr != nil {
			log.New(diffutil.PrefixWriter("left: ", logs.out), "", logs.flags).Print(leftErr)
		}
		if rightErr != nil {
			log.New(diffutil.PrefixWriter("right: ", logs.out), "", logs.flags).Print(rightErr)
		}
		// errors.Join keeps both *diffutil.InputError values reachable via
		// errors.As/errors.Is instead of flattening them into a plain string.
		return errors.Join(leftErr, rightErr)
	}

	result, err := diffengine.RunWithOptions(policy, left, right, diffengine.Options{
		IncludeBlockMarkers: opt.blockMarkersInAlignment,
	})
	if err != nil {
		fatalOnInvariant(err)
		return diffutil.NewInputError("<input>", err)
	}

	if opt.debug {
		if err := dumpDebug(os.Stdout, result.Script); err != nil {
			return err
		}
	}
	if opt.debugFile != "" {
		lines := make([]fmt.Stringer, len(result.Script))
		for i, op := range result.Script {
			lines[i] = op
		}
		if err := diffutil.WriteDebugFile(opt.debugFile, lines); err != nil {
			return err
		}
	}

	switch opt.format {
	case "text":
		return printText(os.Stdout, result.Lines)
	case "markdown":
		md, err := report.Markdown(result.Script)
		if err != nil {
			fatalOnInvariant(err)
			return err
		}
		fmt.Print(md)
		return nil
	case "html":
		html, err := report.HTML(result.Script)
		if err != nil {
			fatalOnInvariant(err)
			return err
		}
		os.Stdout.Write(html)
		return nil
	default:
		return fmt.Errorf("unknown --format %q: want text, markdown, or html", opt.format)
	}
}

// fatalOnInvariant terminates the process if err wraps diffutil.ErrInvariant.
// §7 declares these unreachable on well-formed input, so unlike InputError
// they're never handed back to the caller as an ordinary non-zero exit.
func fatalOnInvariant(err error) {
	if !errors.Is(err, diffutil.ErrInvariant) {
		return
	}
	var invErr *diffutil.InvariantError
	errors.As(err, &invErr)
	log.Fatalf("platydiff: %s", invErr)
}

func resolvePolicy(name string) (scoring.Policy, error) {
	switch name {
	case "affine":
		return scoring.DefaultAffine(), nil
	case "uniform":
		return scoring.Uniform{}, nil
	default:
		return nil, fmt.Errorf("unknown --policy %q: want affine or uniform", name)
	}
}

func readInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", diffutil.NewInputError(path, err)
	}
	return string(b), nil
}

func dumpDebug(w *os.File, script []align.Operation) error {
	for _, op := range script {
		if _, err := fmt.Fprintln(w, op.String()); err != nil {
			return err
		}
	}
	return nil
}

func printText(w *os.File, lines []render.Line) error {
	ew := &diffutil.ErrWriter{Writer: w}
	for _, l := range lines {
		if l.Same {
			fmt.Fprintf(ew, "  %s\n", l.Text)
			continue
		}
		if l.HasLeft {
			fmt.Fprintf(ew, "- %s\n", l.Left)
		}
		if l.HasRight {
			fmt.Fprintf(ew, "+ %s\n", l.Right)
		}
	}
	return ew.Err
}
