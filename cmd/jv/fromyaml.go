package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/jsonv/value"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func fromYAML(cfg *FromYAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.FromYAML.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var docs []*value.Node
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		nodes, err := yamlDocs(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		docs = append(docs, nodes...)
	}
	return encodeDocs(cfg.MainConfig, cc.Out, docs)
}

// yamlDocs decodes every document in d, keeping mapping order.
func yamlDocs(d []byte) ([]*value.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(d), yaml.UseOrderedMap())
	var res []*value.Node
	for i := 0; ; i++ {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		node, err := yamlNode(v)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, node)
	}
}

func yamlNode(v any) (*value.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		kvs := make([]value.KeyVal, 0, len(x))
		for _, item := range x {
			k, err := value.KeyNode(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := yamlNode(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, value.KeyVal{Key: k, Val: val})
		}
		return value.FromKeyVals(kvs), nil
	case []any:
		vals := make([]*value.Node, len(x))
		for i, elt := range x {
			n, err := yamlNode(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return value.FromSlice(vals), nil
	default:
		return value.FromAny(v)
	}
}
