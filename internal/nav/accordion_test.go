package nav

import "testing"

func TestToggleGroupExclusive(t *testing.T) {
	a := NewAccordionModel()

	if got := a.ToggleGroup("operations"); got != "operations" {
		t.Errorf("ToggleGroup(operations) = %q, want %q", got, "operations")
	}
	if !a.IsGroupOpen("operations") {
		t.Error("operations should be open")
	}

	// Expanding another group collapses the first.
	if got := a.ToggleGroup("system-data"); got != "system-data" {
		t.Errorf("ToggleGroup(system-data) = %q, want %q", got, "system-data")
	}
	if a.IsGroupOpen("operations") {
		t.Error("operations should have collapsed when system-data expanded")
	}
	if !a.IsGroupOpen("system-data") {
		t.Error("system-data should be open")
	}
}

func TestToggleGroupCollapsesItself(t *testing.T) {
	a := NewAccordionModel()

	a.ToggleGroup("operations")
	if got := a.ToggleGroup("operations"); got != "" {
		t.Errorf("ToggleGroup(operations) second time = %q, want \"\"", got)
	}
	if a.ExpandedGroup() != "" {
		t.Errorf("ExpandedGroup() = %q, want \"\"", a.ExpandedGroup())
	}
}

func TestToggleNestedIndependent(t *testing.T) {
	a := NewAccordionModel()
	a.ToggleGroup("system-data")

	if !a.ToggleNested("themes") {
		t.Error("ToggleNested(themes) = false, want true")
	}

	// The nested panel does not participate in group exclusivity.
	a.ToggleGroup("operations")
	if !a.IsNestedOpen("themes") {
		t.Error("nested panel collapsed by group toggle")
	}

	if a.ToggleNested("themes") {
		t.Error("ToggleNested(themes) second time = true, want false")
	}
}

func TestDrawer(t *testing.T) {
	d := NewDrawer()

	if d.IsOpen() {
		t.Error("new drawer should be closed")
	}
	if !d.Toggle() {
		t.Error("Toggle() = false, want true")
	}
	d.Close()
	if d.IsOpen() {
		t.Error("drawer open after Close()")
	}
	// Closing a closed drawer stays closed.
	d.Close()
	if d.IsOpen() {
		t.Error("drawer open after double Close()")
	}
	d.Open()
	if !d.IsOpen() {
		t.Error("drawer closed after Open()")
	}
}
