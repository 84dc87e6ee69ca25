// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package validation

// RequiredClassCount is how many of the four character-class criteria must
// be met, alongside the mandatory length rule, for Validate to pass.
const RequiredClassCount = 3

// OnTextChanged re-evaluates every criterion against text and updates the
// display statuses. While the session is live, failing criteria stay
// neutral so the checklist does not flash red on every keystroke. Once the
// session has gone strict, failing criteria are flagged immediately.
func (s *Session) OnTextChanged(text string) {
	results := evaluate(text)
	for _, c := range Criteria {
		switch {
		case results[c]:
			s.statuses[c] = StatusMet
		case s.live:
			s.statuses[c] = StatusUnset
		default:
			s.statuses[c] = StatusUnmet
		}
	}
}

// Validate applies the aggregate rule to the statuses written by the last
// OnTextChanged: the length rule must be met and at least
// RequiredClassCount of the four character-class rules must be met.
//
// On failure every criterion that is not met is (re)assigned unmet, even
// if it already was, so the UI re-renders its error markers, and the
// session goes strict. On success in live mode, statuses of unused
// criteria are cleared back to unset; in strict mode they keep whatever
// the last OnTextChanged wrote, so previously flagged criteria stay
// visible even though the password now passes.
func (s *Session) Validate() bool {
	pass := s.statuses[MinLengthNoSpace] == StatusMet && s.MetCount() >= RequiredClassCount

	if !pass {
		for _, c := range Criteria {
			if s.statuses[c] != StatusMet {
				s.statuses[c] = StatusUnmet
			}
		}
		s.live = false
		return false
	}

	if s.live {
		for _, c := range Criteria {
			if s.statuses[c] != StatusMet {
				s.statuses[c] = StatusUnset
			}
		}
	}
	return true
}

// FocusLost moves the session into strict mode. It is the external
// counterpart to a failed Validate: either event ends the lenient typing
// phase for good.
func (s *Session) FocusLost() {
	s.live = false
}

// Reset clears every status back to unset. The live flag is deliberately
// untouched; only a brand-new session starts lenient again.
func (s *Session) Reset() {
	for _, c := range Criteria {
		s.statuses[c] = StatusUnset
	}
}
