package domain

import (
	"errors"
	"testing"
)

func dept(code, parent string) *Department {
	return &Department{Code: code, Name: "Dept " + code, ParentCode: parent}
}

func TestBuildTree_Nesting(t *testing.T) {
	flat := []*Department{
		dept("D1", ""),
		dept("D2", "D1"),
		dept("D3", "D1"),
		dept("D4", "D2"),
		dept("D5", ""),
	}

	roots := BuildTree(flat)

	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].Code != "D1" || roots[1].Code != "D5" {
		t.Fatalf("unexpected root order: %s, %s", roots[0].Code, roots[1].Code)
	}
	if len(roots[0].Children) != 2 {
		t.Fatalf("expected D1 to have 2 children, got %d", len(roots[0].Children))
	}
	if roots[0].Children[0].Code != "D2" || roots[0].Children[1].Code != "D3" {
		t.Fatalf("child order not preserved: %s, %s", roots[0].Children[0].Code, roots[0].Children[1].Code)
	}
	if len(roots[0].Children[0].Children) != 1 || roots[0].Children[0].Children[0].Code != "D4" {
		t.Fatalf("expected D4 under D2")
	}
}

func TestBuildTree_DanglingParentBecomesRoot(t *testing.T) {
	flat := []*Department{
		dept("D1", ""),
		dept("D2", "GONE"),
	}

	roots := BuildTree(flat)

	if len(roots) != 2 {
		t.Fatalf("expected orphan to surface as root, got %d roots", len(roots))
	}
	if roots[1].Code != "D2" {
		t.Fatalf("expected D2 as second root, got %s", roots[1].Code)
	}
}

// Flattening the forest back via pre-order traversal must yield exactly the
// input set: no loss, no duplication.
func TestBuildTree_FlattenRoundTrip(t *testing.T) {
	flat := []*Department{
		dept("A", ""),
		dept("B", "A"),
		dept("C", "B"),
		dept("D", "A"),
		dept("E", ""),
		dept("F", "E"),
	}

	got := FlattenTree(BuildTree(flat))

	if len(got) != len(flat) {
		t.Fatalf("expected %d nodes after flatten, got %d", len(flat), len(got))
	}
	seen := make(map[string]bool, len(got))
	for _, d := range got {
		if seen[d.Code] {
			t.Fatalf("duplicate node %s in flattened output", d.Code)
		}
		seen[d.Code] = true
	}
	for _, d := range flat {
		if !seen[d.Code] {
			t.Fatalf("node %s lost during build/flatten", d.Code)
		}
	}
}

func TestBuildTree_TerminatesOnCorruptedCycle(t *testing.T) {
	// A and B reference each other; neither is a root. The build must still
	// terminate and the healthy node must survive.
	flat := []*Department{
		dept("A", "B"),
		dept("B", "A"),
		dept("C", ""),
	}

	roots := BuildTree(flat)

	if len(roots) != 1 || roots[0].Code != "C" {
		t.Fatalf("expected only C as root, got %d roots", len(roots))
	}
}

func TestValidateParentAssignment_Accept(t *testing.T) {
	all := []*Department{
		dept("D1", ""),
		dept("D2", "D1"),
		dept("D3", "D2"),
	}

	if err := ValidateParentAssignment("D3", "D1", all); err != nil {
		t.Fatalf("reparenting D3 under D1 should be allowed: %v", err)
	}
	if err := ValidateParentAssignment("D3", "", all); err != nil {
		t.Fatalf("promotion to root should be allowed: %v", err)
	}
	if err := ValidateParentAssignment("D3", "GONE", all); err != nil {
		t.Fatalf("dangling parent is an orphan root, not an error: %v", err)
	}
}

func TestValidateParentAssignment_SelfParent(t *testing.T) {
	all := []*Department{dept("D1", "")}

	if err := ValidateParentAssignment("D1", "D1", all); !errors.Is(err, ErrSelfParent) {
		t.Fatalf("expected ErrSelfParent, got %v", err)
	}
}

func TestValidateParentAssignment_RejectsDescendant(t *testing.T) {
	all := []*Department{
		dept("D1", ""),
		dept("D2", "D1"),
		dept("D3", "D2"),
	}

	// D3 is a transitive descendant of D1.
	if err := ValidateParentAssignment("D1", "D3", all); !errors.Is(err, ErrCyclicParent) {
		t.Fatalf("expected ErrCyclicParent, got %v", err)
	}
}

func TestValidateParentAssignment_TwoCycle(t *testing.T) {
	// D1 already names D2 as its parent; creating D2 under D1 would close a
	// cycle of length 2.
	all := []*Department{
		dept("D1", "D2"),
	}

	if err := ValidateParentAssignment("D2", "D1", all); !errors.Is(err, ErrCyclicParent) {
		t.Fatalf("expected ErrCyclicParent, got %v", err)
	}
}

func TestValidateParentAssignment_CorruptedChainRejected(t *testing.T) {
	// Pre-existing cycle not involving the candidate: the bounded walk must
	// give up and reject instead of spinning.
	all := []*Department{
		dept("A", "B"),
		dept("B", "A"),
		dept("X", ""),
	}

	if err := ValidateParentAssignment("X", "A", all); !errors.Is(err, ErrCyclicParent) {
		t.Fatalf("expected ErrCyclicParent on corrupted chain, got %v", err)
	}
}
