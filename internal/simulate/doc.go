// Package simulate draws synthetic RNA-Seq replicate counts.
//
// Counts are Poisson draws from an explicitly seeded source; nothing here
// touches a process-global random state, so two runs with the same seed and
// parameters produce the same table.
package simulate
