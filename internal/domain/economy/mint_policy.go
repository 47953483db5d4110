package economy

// MintValueTable maps an achievement-type name to the credit value minted
// per unit of that achievement. Lookups of unknown keys yield 0.
type MintValueTable map[string]float64

// baseMintValues are the stock conversion rates. Callers override them via
// NewMintValueTable.
var baseMintValues = MintValueTable{
	ResourceUpgrade: 1.0,
}

// DefaultMintValues returns a copy of the stock mint-value table.
func DefaultMintValues() MintValueTable {
	return NewMintValueTable(nil)
}

// NewMintValueTable merges partial overrides onto the base table. The base
// table is never mutated.
func NewMintValueTable(overrides map[string]float64) MintValueTable {
	t := make(MintValueTable, len(baseMintValues)+len(overrides))
	for k, v := range baseMintValues {
		t[k] = v
	}
	for k, v := range overrides {
		t[k] = v
	}
	return t
}

// ValueOf returns the per-unit credit value for an achievement type, or 0
// when the type is unknown.
func (t MintValueTable) ValueOf(achievement string) float64 {
	return t[achievement]
}
