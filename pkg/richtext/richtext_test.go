package richtext

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHTML_SanitizesScripts(t *testing.T) {
	text := HTML(`<em>fine</em><script>alert("x")</script>`)
	if got := text.Content(); strings.Contains(got, "script") {
		t.Fatalf("script survived sanitation: %q", got)
	}
	if got := text.Content(); !strings.Contains(got, "<em>fine</em>") {
		t.Fatalf("benign markup stripped: %q", got)
	}
}

func TestPlainText_StripsMarkup(t *testing.T) {
	text := HTML(`<strong>Coffee</strong> futures`)
	if got := text.PlainText(); got != "Coffee futures" {
		t.Fatalf("expected plain rendition, got %q", got)
	}
}

func TestZeroValue(t *testing.T) {
	var text Text
	if !text.IsZero() {
		t.Fatalf("zero value should be empty")
	}
	if text.Format() != FormatPlain {
		t.Fatalf("zero value should report plain format")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := HTML(`<em>per ounce</em>`)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Text
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != original {
		t.Fatalf("round trip mismatch: %+v vs %+v", decoded, original)
	}
}

func TestJSONRejectsUnknownFormat(t *testing.T) {
	var decoded Text
	err := json.Unmarshal([]byte(`{"format":"rtf","content":"x"}`), &decoded)
	if err == nil {
		t.Fatalf("expected unknown format error")
	}
}
