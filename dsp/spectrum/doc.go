// Package spectrum reduces transform output to real-valued spectra.
//
// The package does not compute transforms itself. It consumes the
// []num.Complex bins produced by package transform and provides magnitude
// and power reduction, bin-to-frequency mapping and peak search.
package spectrum
