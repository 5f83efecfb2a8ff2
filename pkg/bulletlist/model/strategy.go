package model

import (
	"fmt"
	"strings"
)

// Strategy selects how rows are arranged.
type Strategy int

const (
	// StrategyGrid places every row in one two-column grid so the bullet
	// column is as wide as the widest bullet.
	StrategyGrid Strategy = iota
	// StrategyStack stacks independent (bullet, text) pairs; each row sizes
	// its bullet column to its own content.
	StrategyStack
)

func (s Strategy) String() string {
	switch s {
	case StrategyGrid:
		return "grid"
	case StrategyStack:
		return "stack"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses "grid" or "stack" (case-insensitive).
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid":
		return StrategyGrid, nil
	case "stack", "rows":
		return StrategyStack, nil
	default:
		return StrategyGrid, fmt.Errorf("unknown layout strategy %q", s)
	}
}
