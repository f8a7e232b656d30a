// Package orchestration resolves ambiguous matrix cells by running the
// phylogeny pipeline over candidate completions concurrently and aggregating
// the outcomes. It decouples the search from presentation via the Observer
// and ResultPresenter interfaces.
package orchestration
