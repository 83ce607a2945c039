// Package source supplies paired FC/SC connectivity matrices.
//
// A Dataset holds S subject IDs and, for each, one SC and one FC matrix at
// the same index. Sources produce Datasets:
//
//   - File      – YAML (or JSON) document with separate SC and FC cohorts,
//     aligned by subject ID.
//   - Synthetic – seeded generator with planted effects.
//   - Static    – an in-memory Dataset.
//
// Alignment keeps the SC subject order and drops SC subjects that have no
// FC matrix; they are reported, not fatal. Shape problems are errors.
//
// File layout:
//
//	sc:
//	  ids: [subj_001, subj_002]
//	  matrices:
//	    - [[0, 12], [12, 0]]
//	    - [[0, 7], [7, 0]]
//	fc:
//	  ids: [subj_002, subj_001]
//	  matrices: ...
//
// Missing values are written as .nan.
package source
