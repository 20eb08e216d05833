// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package screening

import "fmt"

// Stage is where a candidate is in the screening flow.
type Stage string

const (
	StageIntro           Stage = "intro"
	StageInProgress      Stage = "in_progress"
	StageKnockedOut      Stage = "knocked_out"
	StagePassed          Stage = "passed"
	StageResumeSubmitted Stage = "resume_submitted"
)

// IsTerminal reports whether no further operation can change the session.
func (s Stage) IsTerminal() bool {
	return s == StageKnockedOut || s == StageResumeSubmitted
}

func (s Stage) String() string { return string(s) }

// ParseStage converts a stored stage name back to a Stage.
func ParseStage(s string) (Stage, error) {
	switch st := Stage(s); st {
	case StageIntro, StageInProgress, StageKnockedOut, StagePassed, StageResumeSubmitted:
		return st, nil
	}
	return "", fmt.Errorf("unknown stage %q", s)
}
