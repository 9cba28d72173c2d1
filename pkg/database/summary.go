package database

// Summary condenses a database for display.
type Summary struct {
	Nodes      int
	Links      int
	Dimension  int
	Vertices   int
	Cells      int
	TopCells   int
	Parameters int
	ParamLinks int
	Entries    []EntrySummary
}

// EntrySummary condenses one dynamics entry.
type EntrySummary struct {
	Parameter  int
	MorseNodes int
	MaxRank    int
	STGNodes   int
	STGEdges   int
	Labels     []string
}

// Summarize counts the contents of db.
func Summarize(db *Database) Summary {
	s := Summary{
		Nodes:      len(db.Network.Nodes),
		Links:      len(db.Network.Links),
		Dimension:  db.Complex.Dimension,
		Vertices:   len(db.Complex.VertsCoords),
		Cells:      len(db.Complex.Cells),
		Parameters: len(db.ParameterGraph.Nodes),
		ParamLinks: len(db.ParameterGraph.Links),
		Entries:    make([]EntrySummary, 0, len(db.Dynamics)),
	}
	for _, c := range db.Complex.Cells {
		if c.Dim == db.Complex.Dimension {
			s.TopCells++
		}
	}

	for _, e := range db.Dynamics {
		es := EntrySummary{
			Parameter:  e.Parameter,
			MorseNodes: len(e.MorseGraph),
			STGNodes:   len(e.STG),
		}
		for _, n := range e.MorseGraph {
			es.MaxRank = max(es.MaxRank, n.Rank)
			es.Labels = append(es.Labels, n.Label)
		}
		for _, n := range e.STG {
			es.STGEdges += len(n.Adjacencies)
		}
		s.Entries = append(s.Entries, es)
	}
	return s
}
