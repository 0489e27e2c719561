package main

import (
	"fmt"

	"github.com/proteus-stark/proteus/internal/proteus/air"
	"github.com/proteus-stark/proteus/internal/proteus/core"
	"github.com/proteus-stark/proteus/internal/proteus/trace"
	"github.com/proteus-stark/proteus/examples/cubic"
	"github.com/proteus-stark/proteus/examples/fibonacci"
	"github.com/proteus-stark/proteus/examples/rollup"
)

// example bundles a computation's name, its description, a constructor
// that builds the AIR and trace for a given length, and a rebuild step
// that reconstructs the same AIR from a proof's public inputs alone
// (what verify has available without regenerating the trace).
type example struct {
	name        string
	description string
	build       func(length int) (air.AIR, *trace.Trace, error)
	fromPublic  func(pub map[string]any) (air.AIR, error)
}

func registry() map[string]example {
	return map[string]example{
		"fibonacci": {
			name:        "fibonacci",
			description: "two-register Fibonacci sequence ending at a public result",
			build: func(length int) (air.AIR, *trace.Trace, error) {
				rows, result := fibonacci.GenerateTrace(length)
				a := fibonacci.New(length, result)
				tr, err := trace.NewTrace(rows)
				if err != nil {
					return nil, nil, err
				}
				return a, tr, nil
			},
			fromPublic: func(pub map[string]any) (air.AIR, error) {
				length, err := intField(pub, "length")
				if err != nil {
					return nil, err
				}
				result, err := uint64Field(pub, "result")
				if err != nil {
					return nil, err
				}
				return fibonacci.New(length, core.DefaultPrimeField.NewElementFromUint64(result)), nil
			},
		},
		"cubic": {
			name:        "cubic",
			description: "single-register repeated cubic x_next = x^3 + x + 5",
			build: func(length int) (air.AIR, *trace.Trace, error) {
				start := core.DefaultPrimeField.NewElementFromInt64(1)
				rows, result := cubic.GenerateTrace(length, start)
				a := cubic.New(length, start, result)
				tr, err := trace.NewTrace(rows)
				if err != nil {
					return nil, nil, err
				}
				return a, tr, nil
			},
			fromPublic: func(pub map[string]any) (air.AIR, error) {
				length, err := intField(pub, "length")
				if err != nil {
					return nil, err
				}
				start, err := uint64Field(pub, "start_value")
				if err != nil {
					return nil, err
				}
				result, err := uint64Field(pub, "result")
				if err != nil {
					return nil, err
				}
				field := core.DefaultPrimeField
				return cubic.New(length, field.NewElementFromUint64(start), field.NewElementFromUint64(result)), nil
			},
		},
		"rollup": {
			name:        "rollup",
			description: "batch balance transfers among a fixed set of users",
			build: func(length int) (air.AIR, *trace.Trace, error) {
				numUsers := 4
				field := core.DefaultPrimeField
				initial := []*core.FieldElement{
					field.NewElementFromUint64(100),
					field.NewElementFromUint64(100),
					field.NewElementFromUint64(100),
					field.NewElementFromUint64(100),
				}
				txs := []rollup.Transaction{
					{From: 0, To: 1, Amount: 10},
					{From: 2, To: 3, Amount: 5},
					{From: 1, To: 2, Amount: 3},
				}
				rows, final := rollup.GenerateTrace(length, numUsers, initial, txs)
				a := rollup.New(length, numUsers, initial, final)
				tr, err := trace.NewTrace(rows)
				if err != nil {
					return nil, nil, err
				}
				return a, tr, nil
			},
			fromPublic: func(pub map[string]any) (air.AIR, error) {
				length, err := intField(pub, "length")
				if err != nil {
					return nil, err
				}
				numUsers, err := intField(pub, "num_users")
				if err != nil {
					return nil, err
				}
				initial, err := uint64SliceField(pub, "initial_balances")
				if err != nil {
					return nil, err
				}
				final, err := uint64SliceField(pub, "final_balances")
				if err != nil {
					return nil, err
				}
				field := core.DefaultPrimeField
				return rollup.New(length, numUsers, toFieldSlice(field, initial), toFieldSlice(field, final)), nil
			},
		},
	}
}

func toFieldSlice(field *core.Field, vals []uint64) []*core.FieldElement {
	out := make([]*core.FieldElement, len(vals))
	for i, v := range vals {
		out[i] = field.NewElementFromUint64(v)
	}
	return out
}

func intField(pub map[string]any, key string) (int, error) {
	v, ok := pub[key]
	if !ok {
		return 0, fmt.Errorf("missing public input %q", key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("public input %q has unexpected type %T", key, v)
	}
}

func uint64Field(pub map[string]any, key string) (uint64, error) {
	v, ok := pub[key]
	if !ok {
		return 0, fmt.Errorf("missing public input %q", key)
	}
	switch n := v.(type) {
	case uint64:
		return n, nil
	case float64:
		return uint64(n), nil
	default:
		return 0, fmt.Errorf("public input %q has unexpected type %T", key, v)
	}
}

func uint64SliceField(pub map[string]any, key string) ([]uint64, error) {
	v, ok := pub[key]
	if !ok {
		return nil, fmt.Errorf("missing public input %q", key)
	}
	raw, ok := v.([]any)
	if !ok {
		if existing, ok := v.([]uint64); ok {
			return existing, nil
		}
		return nil, fmt.Errorf("public input %q has unexpected type %T", key, v)
	}
	out := make([]uint64, len(raw))
	for i, elem := range raw {
		f, ok := elem.(float64)
		if !ok {
			return nil, fmt.Errorf("public input %q[%d] has unexpected type %T", key, i, elem)
		}
		out[i] = uint64(f)
	}
	return out, nil
}
