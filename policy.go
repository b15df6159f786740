package tether

// Policy represents how a key retains the values stored under it.
// Every key fixes its policy at construction and keeps it for life.
type Policy string

const (
	// PolicyRetain holds values strongly. The value stays reachable
	// until it is overwritten, cleared, or the host is collected.
	PolicyRetain Policy = "retain"

	// PolicyRetainAtomic is PolicyRetain with lock-free reads and
	// writes of the association.
	PolicyRetainAtomic Policy = "retain_atomic"

	// PolicyCopy clones the value on every write and hands the stored
	// clone to readers. Requires the value type to implement Cloner.
	PolicyCopy Policy = "copy"

	// PolicyCopyAtomic is PolicyCopy with lock-free reads and writes
	// of the association.
	PolicyCopyAtomic Policy = "copy_atomic"

	// PolicyWeak holds values weakly. Once the value is unreachable
	// outside the table, reads report absence.
	PolicyWeak Policy = "weak"

	// PolicyBorrow holds values weakly and declares that the table
	// never owned them. Reads report absence once the owner lets go.
	PolicyBorrow Policy = "borrow"
)

// validPolicies contains all valid retention policies.
var validPolicies = map[Policy]bool{
	PolicyRetain:       true,
	PolicyRetainAtomic: true,
	PolicyCopy:         true,
	PolicyCopyAtomic:   true,
	PolicyWeak:         true,
	PolicyBorrow:       true,
}

// IsValidPolicy returns true if the policy is a known retention policy.
func IsValidPolicy(p Policy) bool {
	return validPolicies[p]
}

// Atomic returns true if reads and writes under this policy are
// lock-free with respect to each other.
func (p Policy) Atomic() bool {
	return p == PolicyRetainAtomic || p == PolicyCopyAtomic
}

// Retaining returns true if the policy keeps stored values reachable.
func (p Policy) Retaining() bool {
	switch p {
	case PolicyRetain, PolicyRetainAtomic, PolicyCopy, PolicyCopyAtomic:
		return true
	}
	return false
}

// Copying returns true if the policy clones values on write.
func (p Policy) Copying() bool {
	return p == PolicyCopy || p == PolicyCopyAtomic
}
