// Package pipeline runs the analysis stages in order: simulate counts, test
// every gene, select and annotate the significant ones, then write the
// report and any optional exports.
//
// Stages never run concurrently and each runs exactly once per call. The
// context is checked between stages only.
package pipeline
