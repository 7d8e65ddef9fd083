package main

import (
	"fmt"

	"github.com/signadot/jsonv/codec"
	"github.com/signadot/jsonv/value"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: patch requires a patch argument and optional files to which to apply it", cli.ErrUsage)
	}
	var patchData []byte
	if cfg.String {
		patchData = []byte(args[0])
	} else {
		patchData, err = readArg(cc, args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	apply, err := patcher(patchData, cfg.Merge)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	targets := args[1:]
	if len(targets) == 0 {
		targets = []string{"-"}
	}
	var results []*value.Node
	for _, target := range targets {
		docs, err := getDocs(cc, target)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", target, err)
		}
		for _, doc := range docs {
			res, err := apply(doc)
			if err != nil {
				return fmt.Errorf("error patching %s: %w", target, err)
			}
			results = append(results, res)
		}
	}
	return encodeDocs(cfg.MainConfig, cc.Out, results)
}

// patcher returns a function applying the patch in patchData, an RFC 6902
// operation list or, with merge set, an RFC 7386 merge patch.
func patcher(patchData []byte, merge bool) (func(*value.Node) (*value.Node, error), error) {
	var run func([]byte) ([]byte, error)
	if merge {
		if _, err := codec.Unmarshal(patchData); err != nil {
			return nil, err
		}
		run = func(doc []byte) ([]byte, error) {
			return jsonpatch.MergePatch(doc, patchData)
		}
	} else {
		ops, err := jsonpatch.DecodePatch(patchData)
		if err != nil {
			return nil, err
		}
		run = ops.Apply
	}
	return func(doc *value.Node) (*value.Node, error) {
		d, err := codec.Marshal(doc)
		if err != nil {
			return nil, err
		}
		out, err := run(d)
		if err != nil {
			return nil, err
		}
		return codec.Unmarshal(out)
	}, nil
}
