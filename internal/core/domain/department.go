package domain

import (
	"errors"
	"time"
)

var ErrDepartmentNotFound = errors.New("department not found")
var ErrDepartmentExists = errors.New("department code already exists")
var ErrSelfParent = errors.New("department cannot be its own parent")
var ErrCyclicParent = errors.New("parent assignment would create a cycle")
var ErrHasChildren = errors.New("department has child departments")

// Department is an organizational unit. Code is the stable human-assigned
// identifier used for parent/child references; it never changes after
// creation, independent of the numeric-style ID assigned by storage.
type Department struct {
	ID          string        `json:"id"`
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	ParentCode  string        `json:"parentCode,omitempty"`
	Description string        `json:"description,omitempty"`
	Creator     string        `json:"creator,omitempty"`
	Modifier    string        `json:"modifier,omitempty"`
	CreatedAt   time.Time     `json:"createdTime"`
	UpdatedAt   time.Time     `json:"updatedTime"`
	Children    []*Department `json:"children,omitempty"`
}

// IsRoot reports whether the department sits at the top level of the
// hierarchy relative to the given code set: either it declares no parent, or
// its declared parent does not resolve (orphans are treated as roots, not
// errors).
func (d *Department) IsRoot(codes map[string]*Department) bool {
	if d.ParentCode == "" {
		return true
	}
	_, ok := codes[d.ParentCode]
	return !ok
}

// BuildTree materializes the parent/child forest from a flat department list.
// The relative order of the input is preserved at every level. The pass is
// bounded by the number of nodes, so a cycle left behind by corrupted data
// cannot make it loop; nodes trapped in such a cycle simply do not appear
// under any root.
func BuildTree(flat []*Department) []*Department {
	byCode := make(map[string]*Department, len(flat))
	for _, d := range flat {
		d.Children = nil
		byCode[d.Code] = d
	}

	roots := make([]*Department, 0, len(flat))
	for _, d := range flat {
		if d.IsRoot(byCode) {
			roots = append(roots, d)
			continue
		}
		parent := byCode[d.ParentCode]
		if parent == d {
			// self-parent is a broken record, surface it at the top
			roots = append(roots, d)
			continue
		}
		parent.Children = append(parent.Children, d)
	}
	return roots
}

// FlattenTree returns the pre-order traversal of a forest built by BuildTree.
func FlattenTree(roots []*Department) []*Department {
	out := make([]*Department, 0)
	var walk func(nodes []*Department)
	walk = func(nodes []*Department) {
		for _, n := range nodes {
			out = append(out, n)
			walk(n.Children)
		}
	}
	walk(roots)
	return out
}

// ValidateParentAssignment checks whether candidateCode may adopt
// proposedParentCode as its parent without violating the acyclicity
// invariant. An empty proposed parent (promotion to root) is always allowed,
// as is a parent code that does not resolve in the given list (dangling
// references are orphan roots). The ancestor walk is bounded by the
// department count; exceeding the bound means the stored chain is already
// corrupted and the assignment is rejected rather than looping forever.
func ValidateParentAssignment(candidateCode, proposedParentCode string, all []*Department) error {
	if proposedParentCode == "" {
		return nil
	}
	if proposedParentCode == candidateCode {
		return ErrSelfParent
	}

	byCode := make(map[string]*Department, len(all))
	for _, d := range all {
		byCode[d.Code] = d
	}

	cur := proposedParentCode
	for steps := 0; steps <= len(all); steps++ {
		node, ok := byCode[cur]
		if !ok {
			// chain ends at a dangling reference
			return nil
		}
		if node.ParentCode == "" {
			return nil
		}
		if node.ParentCode == candidateCode {
			return ErrCyclicParent
		}
		cur = node.ParentCode
	}
	return ErrCyclicParent
}
