package browse

import (
	"fmt"
	"testing"

	"github.com/ladlekit/ladle/internal/recipes"
)

func TestResultTransitions(t *testing.T) {
	r := Result{}
	if r.Phase != PhaseIdle {
		t.Fatalf("zero value phase = %v, want idle", r.Phase)
	}

	r = r.Fail(fmt.Errorf("api /recipes returned status 500"))
	if !r.Failed() || r.Err == "" {
		t.Fatalf("Fail did not record the error: %+v", r)
	}

	// Starting a new attempt clears the previous error.
	r = r.StartLoading()
	if !r.Loading() || r.Err != "" {
		t.Fatalf("StartLoading = %+v, want loading with no error", r)
	}

	page := recipes.Page{Recipes: fakeRecipes(2), Total: 9}
	r = r.Succeed(page)
	if r.Phase != PhaseOK || r.Total != 9 || len(r.Recipes) != 2 {
		t.Fatalf("Succeed = %+v, want wholesale replacement", r)
	}

	// Failure replaces the state wholesale: no partial merge.
	r = r.Fail(fmt.Errorf("network down"))
	if len(r.Recipes) != 0 || r.Total != 0 {
		t.Fatalf("Fail kept stale data: %+v", r)
	}
}

func TestResultEmpty(t *testing.T) {
	r := Result{Phase: PhaseOK}
	if !r.Empty() {
		t.Fatalf("successful zero-record result should be empty")
	}
	if (Result{Phase: PhaseFailed}).Empty() {
		t.Fatalf("failed result is not an empty result")
	}
}
