package models

// RiskThresholds are the product-policy confidence cutoffs for risk labeling
// and value-pick flagging. They are configuration, not statistics.
type RiskThresholds struct {
	ValuePick int // confidence above this is a value pick
	Low       int // confidence above this is LOW risk
	Medium    int // confidence above this is MEDIUM risk, else HIGH
}

// DefaultRiskThresholds mirror the deployed product policy
var DefaultRiskThresholds = RiskThresholds{ValuePick: 70, Low: 75, Medium: 60}

// Level maps a confidence percentage to a risk label
func (t RiskThresholds) Level(confidence int) RiskLevel {
	switch {
	case confidence > t.Low:
		return RiskLow
	case confidence > t.Medium:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// IsValuePick reports whether a confidence percentage qualifies as a value pick
func (t RiskThresholds) IsValuePick(confidence int) bool {
	return confidence > t.ValuePick
}
