package nav

// AccordionModel tracks which single top-level group is expanded, plus a
// set of independently toggled nested panels (such as the Themes
// sub-panel). Representing the top level as one optional id makes the
// mutual-exclusivity invariant structural: there is nothing to keep in
// sync and no "close the others" step.
type AccordionModel struct {
	expandedGroup string
	nested        map[string]bool
}

// NewAccordionModel returns a model with everything collapsed.
func NewAccordionModel() *AccordionModel {
	return &AccordionModel{nested: make(map[string]bool)}
}

// ToggleGroup expands the group, collapsing whichever group was open, or
// collapses it when it is already the expanded one. Returns the id of the
// group now expanded ("" when none).
func (a *AccordionModel) ToggleGroup(id string) string {
	if a.expandedGroup == id {
		a.expandedGroup = ""
	} else {
		a.expandedGroup = id
	}
	return a.expandedGroup
}

// ToggleNested flips a nested panel. Nested panels are independent of the
// top-level group and of each other; toggling one never collapses anything
// else. Returns the new open state.
func (a *AccordionModel) ToggleNested(id string) bool {
	a.nested[id] = !a.nested[id]
	return a.nested[id]
}

// IsGroupOpen reports whether the given group is the expanded one.
func (a *AccordionModel) IsGroupOpen(id string) bool {
	return a.expandedGroup == id
}

// IsNestedOpen reports whether a nested panel is open.
func (a *AccordionModel) IsNestedOpen(id string) bool {
	return a.nested[id]
}

// ExpandedGroup returns the id of the expanded group, or "" when all
// groups are collapsed.
func (a *AccordionModel) ExpandedGroup() string {
	return a.expandedGroup
}
