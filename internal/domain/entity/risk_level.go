// Package entity contains the core business objects of the project.
package entity

// RiskLevel classifies how urgent a detected situation is.
// Emergency severity shares the same scale.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// String returns the string representation of the RiskLevel.
func (r RiskLevel) String() string {
	return string(r)
}

// IsValid checks if the RiskLevel is a valid value.
func (r RiskLevel) IsValid() bool {
	return r.Rank() > 0
}

// Rank orders risk levels from LOW (1) to CRITICAL (4). Unknown levels rank 0.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLevelLow:
		return 1
	case RiskLevelMedium:
		return 2
	case RiskLevelHigh:
		return 3
	case RiskLevelCritical:
		return 4
	default:
		return 0
	}
}

// AtLeast reports whether r is as severe as other or more.
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return r.Rank() >= other.Rank()
}
