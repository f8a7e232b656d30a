// Package logging provides the logging interface shared by the perfphylo
// packages. Components depend on Logger rather than on a concrete backend;
// zerolog is the default implementation and the standard library logger is
// available as a fallback adapter.
package logging
