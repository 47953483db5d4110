package chain

import "fmt"

// Segment is one corp's value-added step inside a chain: it acquires (or
// produces raw) a resource at InputCost, applies its margin, and offers the
// result onward at OutputPrice.
//
// Invariant: OutputPrice = InputCost × (1 + Margin). Margins therefore
// compound multiplicatively across a chain's depth. A pure raw extractor
// has InputCost 0 and prices at 0 regardless of margin.
type Segment struct {
	CorpID      string  `json:"corpId"`
	CorpType    string  `json:"corpType"`
	Resource    string  `json:"resource"`
	Quantity    int     `json:"quantity"`
	InputCost   float64 `json:"inputCost"`
	Margin      float64 `json:"margin"`
	OutputPrice float64 `json:"outputPrice"`
}

// NewSegment builds a segment with its output price derived from the
// cost-plus rule.
func NewSegment(corpID, corpType, resource string, quantity int, inputCost, margin float64) Segment {
	return Segment{
		CorpID:      corpID,
		CorpType:    corpType,
		Resource:    resource,
		Quantity:    quantity,
		InputCost:   inputCost,
		Margin:      margin,
		OutputPrice: CostPlus(inputCost, margin),
	}
}

// CostPlus applies the uniform pricing rule inputCost × (1 + margin).
func CostPlus(inputCost, margin float64) float64 {
	return inputCost * (1 + margin)
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment{%s %dx%s in=%.2f +%.0f%% out=%.2f}",
		s.CorpID, s.Quantity, s.Resource, s.InputCost, s.Margin*100, s.OutputPrice)
}
