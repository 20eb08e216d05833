// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists jobs, screening sessions and tally events.

# Jobs

A job is written once with its questions and options:

	err := st.SaveJob(ctx, store.JobRecord{ID: id, ShareSlug: slug, CreatedAt: now, Definition: def})

LoadJob rebuilds the definition through jobdef.Validate, so a stored job that
no longer satisfies the job rules is reported as an error rather than served.

# Sessions

Sessions are stored as screening.Snapshot values plus a version counter.
SaveSession only writes when the caller's version still matches:

	rec, _ := st.LoadSession(ctx, id)
	sess, _ := screening.Restore(job.Definition, rec.Snapshot, events)
	_ = sess.Answer(2)
	err := st.SaveSession(ctx, sess.Snapshot(), rec.Version, events.Events())
	if errors.Is(err, store.ErrConflict) {
		// another request moved the session first
	}

# Tallies

Tally events are inserted in the session's transaction with one row per
(session, kind). Replays are ignored, so JobTally and ListJobTallies count
each milestone at most once per session.
*/
package store
