// Package intervals computes musical intervals.
//
// Construction takes an interval name and a start note and derives the end
// note; identification takes two notes and names the interval between them.
// Both work ascending or descending over a twelve-semitone note circle with
// the natural letters A-G and sharp/flat accidentals.
//
// Supported intervals: m2, M2, m3, M3, P4, P5, m6, M6, m7, M7, P8.
//
// Usage:
//
//	note, err := intervals.IntervalConstruction([]string{"P5", "B", "asc"}) // "F#"
//	name, err := intervals.IntervalIdentification([]string{"G#", "D#", "dsc"}) // "P4"
//
//	// A configured runtime logs every call, exposes counters via introspection
//	// and grades worksheets with its options.
//	rt, err := intervals.New(intervals.WithLogger(logger), intervals.WithWorkers(8))
//	report, err := rt.GradeAll(ctx, paths)
//
// Beyond the core, the module grades worksheet files of exercises
// (pkg/worksheet), watches them for changes (pkg/adapters/fs) and exports
// intervals as MIDI files (pkg/adapters/midi).
package intervals
