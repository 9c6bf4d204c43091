package model

import "fmt"

// PolicyName identifies one of the four scheduling disciplines.
type PolicyName string

const (
	PolicyFCFS       PolicyName = "fcfs"
	PolicySJF        PolicyName = "sjf"
	PolicyPriority   PolicyName = "priority"
	PolicyRoundRobin PolicyName = "rr"
)

// AllPolicies returns the policies in the fixed comparison order.
func AllPolicies() []PolicyName {
	return []PolicyName{PolicyFCFS, PolicySJF, PolicyPriority, PolicyRoundRobin}
}

// String returns the wire name of the policy.
func (p PolicyName) String() string {
	return string(p)
}

// Title returns the human-readable name used in rendered output.
func (p PolicyName) Title() string {
	switch p {
	case PolicyFCFS:
		return "First-Come, First-Served (FCFS)"
	case PolicySJF:
		return "Preemptive Shortest Job First (SJF)"
	case PolicyPriority:
		return "Preemptive Priority Scheduling"
	case PolicyRoundRobin:
		return "Round Robin (RR)"
	}
	return string(p)
}

// Valid reports whether p names a known policy.
func (p PolicyName) Valid() bool {
	switch p {
	case PolicyFCFS, PolicySJF, PolicyPriority, PolicyRoundRobin:
		return true
	}
	return false
}

// ParsePolicy converts a wire name to a PolicyName.
func ParsePolicy(s string) (PolicyName, error) {
	p := PolicyName(s)
	if !p.Valid() {
		return "", NewValidationError(fmt.Sprintf("unknown policy %q (want fcfs, sjf, priority, or rr)", s))
	}
	return p, nil
}
