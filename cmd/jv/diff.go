package main

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/signadot/jsonv/codec"
	"github.com/signadot/jsonv/stream"
	"github.com/signadot/jsonv/value"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	texts := make([]string, 2)
	for i, arg := range args {
		docs, err := getDocs(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		texts[i], err = normalizedText(cfg.MainConfig, docs)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	differs, err := writeLineDiff(cc.Out, texts[0], texts[1], cfg.Context, cfg.useColor(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// normalizedText renders docs with object keys sorted, one line break after
// each document and no colors.
func normalizedText(cfg *MainConfig, docs []*value.Node) (string, error) {
	f, err := cfg.formatter()
	if err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	for _, doc := range docs {
		d, err := codec.Marshal(sortKeys(doc), stream.WithFormatter(f))
		if err != nil {
			return "", err
		}
		buf.Write(d)
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}

// sortKeys returns a copy of node with every object's entries ordered by
// key text.
func sortKeys(node *value.Node) *value.Node {
	switch node.Type {
	case value.ArrayType:
		res := make([]*value.Node, len(node.Values))
		for i, v := range node.Values {
			res[i] = sortKeys(v)
		}
		return value.FromSlice(res)
	case value.ObjectType:
		kvs := make([]value.KeyVal, len(node.Fields))
		for i := range node.Fields {
			kvs[i] = value.KeyVal{Key: node.Fields[i], Val: sortKeys(node.Values[i])}
		}
		slices.SortStableFunc(kvs, func(a, b value.KeyVal) int {
			at, _ := a.Key.KeyText()
			bt, _ := b.Key.KeyText()
			return strings.Compare(at, bt)
		})
		return value.FromKeyVals(kvs)
	default:
		return node
	}
}

type diffLine struct {
	op   diffpatch.Operation
	text string
}

// lineDiff computes a line oriented diff of a and b.
func lineDiff(a, b string) []diffLine {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var res []diffLine
	for _, d := range diffs {
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, diffLine{op: d.Type, text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// writeLineDiff writes the diff of a and b with "-", "+" and " " line
// prefixes. When context is positive, runs of unchanged lines longer than
// that are elided around the changes.
func writeLineDiff(w io.Writer, a, b string, context int, colored bool) (bool, error) {
	lines := lineDiff(a, b)
	differs := false
	for _, ln := range lines {
		if ln.op != diffpatch.DiffEqual {
			differs = true
			break
		}
	}
	if !differs {
		return false, nil
	}
	del, ins := fmt.Sprintf, fmt.Sprintf
	if colored {
		del, ins = color.RedString, color.GreenString
	}
	for i, ln := range lines {
		var s string
		switch ln.op {
		case diffpatch.DiffDelete:
			s = del("-%s", ln.text)
		case diffpatch.DiffInsert:
			s = ins("+%s", ln.text)
		default:
			if context > 0 && !nearChange(lines, i, context) {
				if i > 0 && nearChange(lines, i-1, context) {
					s = "..."
					break
				}
				continue
			}
			s = " " + ln.text
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return true, err
		}
	}
	return true, nil
}

func nearChange(lines []diffLine, i, context int) bool {
	lo, hi := max(0, i-context), min(len(lines)-1, i+context)
	for j := lo; j <= hi; j++ {
		if lines[j].op != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}
