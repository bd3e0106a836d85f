package engine

// Default policy for missing or insufficient inputs, in one place.
// Every optional input degrades to a documented default instead of an
// error; the engine never fails on "no history".
//
//	Input / signal missing            Default
//	--------------------------------  ----------------------------------
//	<10 interactions                  learning style "mixed"
//	<5 hint interactions              preferred hint type "conceptual"
//	<5 completed sessions             attention span "medium"
//	no progress record                empty mastery seed, no stored areas
//	<2 snapshots and <10 sessions     improvement rate 0
//	<3 scored sessions                recommended difficulty 5
//	<3 recent sessions (adjuster)     keep current difficulty, conf. 0.1
//	no user facts                     target level 8
//	empty mastery map                 current level 1
//	<5 completed sessions (profile)   session length by attention span
//	<10 sessions (profile)            best practice time "afternoon"
//	no struggling/improving/strong    recommendation band omitted
//
// The constants behind each row live next to the code that applies them:
// pattern.StyleMinInteractions, pattern.HintMinSamples,
// pattern.SpanMinSessions, pattern.RateMinSnapshots,
// pattern.DifficultyMinSessions, adjust.MinSessions,
// profile.DefaultTargetLevel, profile.SessionLengthMinSamples, and
// profile.PracticeTimeMinTotal.
