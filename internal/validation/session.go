// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package validation

// Criterion identifies one of the five password rules. The set is closed.
type Criterion int

const (
	// MinLengthNoSpace is the mandatory rule: length within bounds and no
	// whitespace. It is not part of the three-of-four pool.
	MinLengthNoSpace Criterion = iota
	Uppercase
	Lowercase
	Digit
	SpecialCharacter

	criterionCount
)

// Criteria lists all criteria in display order.
var Criteria = [criterionCount]Criterion{
	MinLengthNoSpace,
	Uppercase,
	Lowercase,
	Digit,
	SpecialCharacter,
}

// classCriteria are the four optional character-class rules counted by the
// three-of-four aggregate.
var classCriteria = [4]Criterion{Uppercase, Lowercase, Digit, SpecialCharacter}

// String returns a stable machine name for the criterion. Human-readable
// labels are a concern of the UI shells.
func (c Criterion) String() string {
	switch c {
	case MinLengthNoSpace:
		return "min_length_no_space"
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digit"
	case SpecialCharacter:
		return "special_character"
	}
	return "unknown"
}

// Status is the tri-state display status of a criterion.
type Status int

const (
	// StatusUnset renders neutral: not evaluated yet, or suppressed while
	// the user is still typing.
	StatusUnset Status = iota
	// StatusMet renders as satisfied.
	StatusMet
	// StatusUnmet renders as an error.
	StatusUnmet
)

// String returns a stable machine name for the status.
func (s Status) String() string {
	switch s {
	case StatusMet:
		return "met"
	case StatusUnmet:
		return "unmet"
	}
	return "unset"
}

// Session holds the validation state for one password form: a status per
// criterion plus the live flag. A session must only ever be driven by a
// single caller; it performs no locking of its own.
//
// live starts true and drops to false on the first lost focus or the first
// failed Validate. It never returns to true; a fresh form gets a fresh
// session.
type Session struct {
	statuses [criterionCount]Status
	live     bool
}

// NewSession returns a session in live mode with every status unset.
func NewSession() *Session {
	return &Session{live: true}
}

// Status returns the current display status of one criterion.
func (s *Session) Status(c Criterion) Status {
	return s.statuses[c]
}

// Statuses returns a snapshot of all five statuses keyed by criterion.
func (s *Session) Statuses() map[Criterion]Status {
	out := make(map[Criterion]Status, criterionCount)
	for _, c := range Criteria {
		out[c] = s.statuses[c]
	}
	return out
}

// Live reports whether the session is still in the lenient typing phase.
func (s *Session) Live() bool {
	return s.live
}

// UnmetCriteria returns the criteria currently flagged as unmet, in
// display order.
func (s *Session) UnmetCriteria() []Criterion {
	var out []Criterion
	for _, c := range Criteria {
		if s.statuses[c] == StatusUnmet {
			out = append(out, c)
		}
	}
	return out
}

// MetCount returns how many of the four character-class criteria are
// currently met. The mandatory length criterion is not counted.
func (s *Session) MetCount() int {
	n := 0
	for _, c := range classCriteria {
		if s.statuses[c] == StatusMet {
			n++
		}
	}
	return n
}
