package network

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"

	"github.com/morsedb/morsedb/pkg/errors"
)

// term is a single input in a logic expression.
type term struct {
	name       string
	activating bool
}

// Parse reads a network from its textual specification.
//
// The format has one line per node:
//
//	X : (X + Y)(~Z) : E
//	Y : X
//	Z : ~Y
//
// The left side names the node, the middle is its logic: a product of
// factors, where a factor is either a parenthesised sum "(a + b)" or a
// single term. A term is a node name, optionally prefixed with "~" to mark
// a repressing input. The optional trailing ": E" marks the node essential.
// Blank lines and text after "#" are ignored. Node order is line order.
func Parse(spec string, model Model) (*Network, error) {
	type line struct {
		num   int
		name  string
		logic string
		ess   bool
	}

	var lines []line
	sc := bufio.NewScanner(strings.NewReader(spec))
	num := 0
	for sc.Scan() {
		num++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		parts := strings.Split(text, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, errors.New(errors.ErrCodeInvalidNetwork, "line %d: expected \"NAME : LOGIC [: E]\"", num)
		}
		l := line{num: num, name: strings.TrimSpace(parts[0]), logic: strings.TrimSpace(parts[1])}
		if len(parts) == 3 {
			flag := strings.TrimSpace(parts[2])
			switch flag {
			case "E":
				l.ess = true
			case "":
			default:
				return nil, errors.New(errors.ErrCodeInvalidNetwork, "line %d: unknown node flag %q", num, flag)
			}
		}
		lines = append(lines, l)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan network spec: %w", err)
	}
	if len(lines) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidNetwork, "network spec is empty")
	}

	names := make([]string, len(lines))
	for i, l := range lines {
		names[i] = l.name
	}

	var edges []Edge
	logic := make([][][]string, len(lines))
	for i, l := range lines {
		factors, err := parseLogic(l.logic)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidNetwork, err, "line %d", l.num)
		}
		logic[i] = make([][]string, len(factors))
		for f, factor := range factors {
			for _, t := range factor {
				edges = append(edges, Edge{Source: t.name, Target: l.name, Activating: t.activating})
				logic[i][f] = append(logic[i][f], t.name)
			}
		}
	}

	n, err := New(names, edges, model)
	if err != nil {
		return nil, err
	}
	n.essential = make([]bool, len(lines))
	n.logic = make([][][]int, len(lines))
	for i, l := range lines {
		n.essential[i] = l.ess
		n.logic[i] = make([][]int, len(logic[i]))
		for f, factor := range logic[i] {
			for _, name := range factor {
				n.logic[i][f] = append(n.logic[i][f], n.index[name])
			}
		}
	}
	return n, nil
}

// parseLogic splits a logic expression into factors of terms.
func parseLogic(s string) ([][]term, error) {
	var (
		factors [][]term
		group   []term
		inGroup bool
		negate  bool
		name    strings.Builder
	)

	flush := func() error {
		if name.Len() == 0 {
			if negate {
				return fmt.Errorf("dangling \"~\" in %q", s)
			}
			return nil
		}
		t := term{name: name.String(), activating: !negate}
		name.Reset()
		negate = false
		if inGroup {
			group = append(group, t)
		} else {
			factors = append(factors, []term{t})
		}
		return nil
	}

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if err := flush(); err != nil {
				return nil, err
			}
		case r == '(':
			if inGroup {
				return nil, fmt.Errorf("nested parentheses in %q", s)
			}
			if err := flush(); err != nil {
				return nil, err
			}
			inGroup = true
			group = nil
		case r == ')':
			if !inGroup {
				return nil, fmt.Errorf("unbalanced \")\" in %q", s)
			}
			if err := flush(); err != nil {
				return nil, err
			}
			if len(group) == 0 {
				return nil, fmt.Errorf("empty factor in %q", s)
			}
			factors = append(factors, group)
			inGroup = false
		case r == '+':
			if !inGroup {
				return nil, fmt.Errorf("\"+\" outside parentheses in %q", s)
			}
			if err := flush(); err != nil {
				return nil, err
			}
		case r == '~':
			if name.Len() > 0 || negate {
				return nil, fmt.Errorf("misplaced \"~\" in %q", s)
			}
			negate = true
		default:
			name.WriteRune(r)
		}
	}
	if inGroup {
		return nil, fmt.Errorf("unbalanced \"(\" in %q", s)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return factors, nil
}

// Essential reports whether node i was marked essential with ": E".
func (n *Network) Essential(i int) bool {
	return n.essential != nil && n.essential[i]
}

// Logic returns the factors of node v's logic as lists of input indices.
// Networks built with [New] have one single-term factor per input.
func (n *Network) Logic(v int) [][]int {
	if n.logic != nil {
		out := make([][]int, len(n.logic[v]))
		for i, f := range n.logic[v] {
			out[i] = append([]int(nil), f...)
		}
		return out
	}
	out := make([][]int, 0, len(n.inputs[v]))
	for _, u := range n.inputs[v] {
		out = append(out, []int{u})
	}
	return out
}

// Spec renders the network back into its textual specification.
func (n *Network) Spec() string {
	var b strings.Builder
	for v, name := range n.names {
		b.WriteString(name)
		b.WriteString(" : ")
		for _, factor := range n.Logic(v) {
			b.WriteByte('(')
			for i, u := range factor {
				if i > 0 {
					b.WriteString(" + ")
				}
				if !n.signs[[2]int{u, v}] {
					b.WriteByte('~')
				}
				b.WriteString(n.names[u])
			}
			b.WriteByte(')')
		}
		if n.Essential(v) {
			b.WriteString(" : E")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
