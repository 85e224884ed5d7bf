package browse

import "github.com/ladlekit/ladle/internal/recipes"

// Phase tracks where a fetch attempt stands.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseOK
	PhaseFailed
)

// Result holds the most recently fetched page plus loading/error status.
// It is replaced wholesale on every transition; there is no partial merge
// with a previous state.
type Result struct {
	Phase   Phase
	Recipes []recipes.Recipe
	Total   int
	Err     string
}

// StartLoading marks the beginning of a fetch attempt. Any previous error is
// cleared; previously fetched recipes remain visible until the attempt
// resolves.
func (r Result) StartLoading() Result {
	r.Phase = PhaseLoading
	r.Err = ""
	return r
}

// Succeed replaces the result with a freshly fetched page.
func (r Result) Succeed(page recipes.Page) Result {
	return Result{Phase: PhaseOK, Recipes: page.Recipes, Total: page.Total}
}

// Fail clears the data and records the error message. Recovery is
// user-driven: the next query change starts a fresh attempt.
func (r Result) Fail(err error) Result {
	out := Result{Phase: PhaseFailed}
	if err != nil {
		out.Err = err.Error()
	}
	return out
}

// Loading reports whether a fetch is in flight.
func (r Result) Loading() bool {
	return r.Phase == PhaseLoading
}

// Failed reports whether the last attempt ended in an error.
func (r Result) Failed() bool {
	return r.Phase == PhaseFailed
}

// Empty reports a successful fetch that matched nothing. Rendered as a
// "no results" notice, not as an error.
func (r Result) Empty() bool {
	return r.Phase == PhaseOK && len(r.Recipes) == 0
}
