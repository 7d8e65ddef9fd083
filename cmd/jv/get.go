package main

import (
	"fmt"

	"github.com/signadot/jsonv/value"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an expression", cli.ErrUsage)
	}
	query := args[0]
	if query == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	program, err := expr.Compile(query)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	var results []*value.Node
	for _, arg := range args {
		docs, err := getDocs(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		for _, doc := range docs {
			res, err := query1(program, doc)
			if err != nil {
				return fmt.Errorf("error querying %s with %s: %w", arg, query, err)
			}
			if res == nil {
				continue
			}
			results = append(results, res)
		}
	}
	return encodeDocs(cfg.MainConfig, cc.Out, results)
}

// queryEnv binds doc, and the fields of doc when it is an object.
func queryEnv(doc *value.Node) (map[string]any, error) {
	a, err := value.ToAny(doc)
	if err != nil {
		return nil, err
	}
	env := map[string]any{}
	if m, ok := a.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["doc"] = a
	return env, nil
}

// query1 runs program against doc. A nil result with no error means the
// expression produced nil and nothing should be written.
func query1(program *vm.Program, doc *value.Node) (*value.Node, error) {
	env, err := queryEnv(doc)
	if err != nil {
		return nil, err
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return value.FromAny(out)
}
