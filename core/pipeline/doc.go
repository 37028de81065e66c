// Package pipeline turns operation specs into an ordered Pipeline and folds
// it over a wordlist.
//
// The operation set is closed on purpose: four tagged variants and an
// exhaustive switch in Apply. A new operation is added by extending the enum
// and the fold, never by runtime registration. Only Build can fail; every
// operation is total, so Apply is failure-free by construction.
package pipeline
