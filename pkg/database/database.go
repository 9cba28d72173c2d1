package database

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/morsedb/morsedb/pkg/dynamics"
	"github.com/morsedb/morsedb/pkg/errors"
)

// Options controls which parameters [Build] exports.
type Options struct {
	// Parameters lists the parameter indices to export, in output order.
	// Nil exports every parameter of the parameter graph.
	Parameters []int

	// Progress, if set, is called after each parameter is exported.
	Progress func(done, total, parameter int)
}

// Build exports a source into a database document.
//
// The cell bijection is computed once and shared by every parameter. Any
// failure, from the source or from an out-of-range index, aborts the export
// and is returned unchanged in meaning; nothing is partially emitted.
func Build(src dynamics.Source, opts Options) (*Database, error) {
	net := src.Network()
	pg := src.ParameterGraph()

	params := opts.Parameters
	if params == nil {
		params = make([]int, pg.Size())
		for i := range params {
			params[i] = i
		}
	}
	if err := ValidateParameters(params, pg.Size()); err != nil {
		return nil, err
	}

	cm, err := NewCellMap(net)
	if err != nil {
		return nil, err
	}
	cx, err := ComplexSection(net)
	if err != nil {
		return nil, err
	}
	pgs, err := ParameterGraphSection(pg, params)
	if err != nil {
		return nil, err
	}

	db := &Database{
		Network:        NetworkSection(net),
		Complex:        cx,
		ParameterGraph: pgs,
		Dynamics:       make([]DynamicsEntry, 0, len(params)),
	}
	for i, p := range params {
		entry, err := BuildEntry(cm, src, p)
		if err != nil {
			return nil, err
		}
		db.Dynamics = append(db.Dynamics, entry)
		if opts.Progress != nil {
			opts.Progress(i+1, len(params), p)
		}
	}
	return db, nil
}

// BuildEntry exports the dynamics of a single parameter.
func BuildEntry(cm *CellMap, src dynamics.Source, parameter int) (DynamicsEntry, error) {
	dyn, err := src.Dynamics(parameter)
	if err != nil {
		return DynamicsEntry{}, fmt.Errorf("parameter %d: %w", parameter, err)
	}
	if dyn.DomainGraph == nil || dyn.MorseDecomposition == nil || dyn.MorseGraph == nil {
		return DynamicsEntry{}, errors.New(errors.ErrCodeInvalidInput, "parameter %d: incomplete dynamics", parameter)
	}

	mg, err := MorseGraphSection(dyn.MorseGraph)
	if err != nil {
		return DynamicsEntry{}, fmt.Errorf("parameter %d: %w", parameter, err)
	}
	ms, err := MorseSetsSection(cm, dyn.MorseDecomposition)
	if err != nil {
		return DynamicsEntry{}, fmt.Errorf("parameter %d: %w", parameter, err)
	}
	stg, err := STGSection(cm, dyn.DomainGraph)
	if err != nil {
		return DynamicsEntry{}, fmt.Errorf("parameter %d: %w", parameter, err)
	}
	return DynamicsEntry{
		Parameter:  parameter,
		MorseGraph: mg,
		MorseSets:  ms,
		STG:        stg,
	}, nil
}

// ValidateParameters checks that every index is in [0, size) and appears
// at most once.
func ValidateParameters(params []int, size int) error {
	seen := make(map[int]bool, len(params))
	for _, p := range params {
		if p < 0 || p >= size {
			return errors.New(errors.ErrCodeInvalidIndex, "parameter %d outside [0,%d)", p, size)
		}
		if seen[p] {
			return errors.New(errors.ErrCodeInvalidInput, "parameter %d selected twice", p)
		}
		seen[p] = true
	}
	return nil
}

// ParseParameters parses a selection like "0,2,5-9" into indices, keeping
// the written order. An empty string yields nil (every parameter).
func ParseParameters(expr string) ([]int, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	var out []int
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		a, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parameter selection %q", part)
		}
		if !isRange {
			out = append(out, a)
			continue
		}
		b, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parameter selection %q", part)
		}
		if b < a {
			return nil, errors.New(errors.ErrCodeInvalidInput, "parameter range %q is reversed", part)
		}
		for p := a; p <= b; p++ {
			out = append(out, p)
		}
	}
	return out, nil
}
