package style

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestText_SkipsZeroFields(t *testing.T) {
	directive := Text(TextConfig{Color: "red", Weight: WeightBold})

	want := []Assignment{
		{Property: PropColor, Value: "red"},
		{Property: PropWeight, Value: "bold"},
	}
	if diff := cmp.Diff(want, directive.Assignments()); diff != "" {
		t.Fatalf("assignments mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_DisjointProperties(t *testing.T) {
	merged := Merge(
		Fill("cyan"),
		Text(TextConfig{Weight: WeightBold}),
	)

	want := []Assignment{
		{Property: PropFill, Value: "cyan"},
		{Property: PropWeight, Value: "bold"},
	}
	if diff := cmp.Diff(want, merged.Assignments()); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_LaterWinsPerProperty(t *testing.T) {
	merged := Merge(
		Text(TextConfig{Color: "red", Size: "12px"}),
		Text(TextConfig{Color: "blue"}),
	)

	if got, _ := merged.Value(PropColor); got != "blue" {
		t.Fatalf("expected later color to win, got %q", got)
	}
	if got, ok := merged.Value(PropSize); !ok || got != "12px" {
		t.Fatalf("expected earlier size retained, got %q ok=%v", got, ok)
	}
	if len(merged.Assignments()) != 2 {
		t.Fatalf("expected 2 merged assignments, got %d", len(merged.Assignments()))
	}
}

func TestBorders_AllSidesShorthand(t *testing.T) {
	directive := Borders(BorderConfig{Color: "#d3d3d3"})

	assignments := directive.Assignments()
	if len(assignments) != 4 {
		t.Fatalf("expected 4 side assignments, got %d", len(assignments))
	}
	for _, assignment := range assignments {
		if assignment.Value != "solid 1px #d3d3d3" {
			t.Fatalf("unexpected shorthand %q", assignment.Value)
		}
	}
}

func TestDirective_JSONRoundTrip(t *testing.T) {
	original := Merge(Fill("cyan"), Text(TextConfig{Weight: WeightBold}))

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Directive
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(original.Assignments(), decoded.Assignments()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
