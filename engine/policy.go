package engine

import (
	"fmt"
	"strings"
)

// ResetMode selects the ball velocity after a goal, miss or restart
type ResetMode int

const (
	ResetZero         ResetMode = iota // Armed on the shooter, waits for an aimed launch
	ResetRandomUpward                  // Served immediately with a random upward velocity
)

// Policy selects behaviour variants of the rules
type Policy struct {
	// WallBounceHorizontal reflects the ball off side walls; otherwise side exits cost a life
	WallBounceHorizontal bool
	ResetVelocity        ResetMode
	// PausesOnScore stops play after every goal or miss until resumed
	PausesOnScore bool
}

// Named rule presets
var (
	PolicyPenalty   = Policy{}
	PolicyArcade    = Policy{WallBounceHorizontal: true, ResetVelocity: ResetRandomUpward}
	PolicyTurnBased = Policy{PausesOnScore: true}
)

var policyNames = map[string]Policy{
	"penalty":    PolicyPenalty,
	"arcade":     PolicyArcade,
	"turn-based": PolicyTurnBased,
}

// ParsePolicy resolves a preset name, case-insensitive
func ParsePolicy(name string) (Policy, error) {
	p, ok := policyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Policy{}, fmt.Errorf("unknown policy %q (want penalty, arcade or turn-based)", name)
	}
	return p, nil
}

// String returns the preset name, or a field dump for custom policies
func (p Policy) String() string {
	for name, preset := range policyNames {
		if preset == p {
			return name
		}
	}
	return fmt.Sprintf("custom(bounce=%t reset=%d pause=%t)", p.WallBounceHorizontal, p.ResetVelocity, p.PausesOnScore)
}
