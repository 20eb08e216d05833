// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package screening implements the candidate screening state machine.

# Stages

	intro → in_progress → knocked_out
	                    → passed → resume_submitted

knocked_out and resume_submitted are terminal. A candidate who wants another
attempt gets a new Session, starting again at the intro and question 0.

# Operations

	s := screening.New(sessionID, jobID, def, sink)
	s.Start()                 // intro → in_progress, emits applied
	s.Answer(1)               // wrong answer → knocked_out, emits knocked_out
	s.SubmitApplication(a)    // passed → resume_submitted, emits shortlisted

Answer rejects an option index that does not exist with ErrInvalidSelection
and leaves the session untouched. The first wrong answer ends the session.

SubmitApplication requires a name, a well-formed email and a resume
reference (ErrIncompleteApplicantInfo). Calling it again after success
returns ErrAlreadySubmitted.

Calling an operation in a stage that does not accept it returns
ErrWrongStage. Every failed operation leaves the session unchanged.

# Events

Each session reports at most one event per kind to its Sink: applied at
Start, knocked_out at the knockout, shortlisted at the application. Use a
Recorder to hold events until the session change has been persisted.

# Persistence

Snapshot and Restore move a session's state in and out of storage between
requests. Restore checks the snapshot against the job and rejects
inconsistent state with ErrInvalidSnapshot.
*/
package screening
