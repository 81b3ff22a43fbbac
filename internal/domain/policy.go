package domain

import "fmt"

// Policy decides what happens when a workflow would push a balance past
// its limit.
type Policy string

const (
	// PolicyAllow lets the write through without checking.
	PolicyAllow Policy = "allow"
	// PolicySoft rejects unless the caller explicitly overrides.
	PolicySoft Policy = "soft"
	// PolicyHard always rejects.
	PolicyHard Policy = "hard"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyAllow, PolicySoft, PolicyHard:
		return p, nil
	case "":
		return PolicyAllow, nil
	}
	return "", fmt.Errorf("unsupported policy: %s", s)
}

// Enforce returns kind when the limit is exceeded and the policy does not
// let the caller through.
func (p Policy) Enforce(exceeded, override bool, kind error) error {
	if !exceeded {
		return nil
	}
	switch p {
	case PolicyHard:
		return kind
	case PolicySoft:
		if override {
			return nil
		}
		return kind
	}
	return nil
}

type Policies struct {
	Fuel     Policy
	Quota    Policy
	Capacity Policy
	// MoveOrderDelta applies an order's amount to the newly selected tank
	// when an update changes tankId. When false the delta stays on the
	// original tank.
	MoveOrderDelta bool
}

func DefaultPolicies() Policies {
	return Policies{
		Fuel:     PolicyAllow,
		Quota:    PolicyAllow,
		Capacity: PolicyAllow,
	}
}
