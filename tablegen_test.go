package tablegen_test

import (
	"context"
	"strings"
	"testing"

	tablegen "github.com/goliatone/go-tablegen"
	"github.com/goliatone/go-tablegen/pkg/richtext"
	"github.com/goliatone/go-tablegen/pkg/table"
	"github.com/goliatone/go-tablegen/pkg/tabular"
)

func quickTable(t *testing.T) *table.Table {
	t.Helper()
	frame, err := tabular.FromRecords(
		[]string{"item", "units"},
		[][]any{
			{"apples", 10},
			{"pears", 20},
		},
	)
	if err != nil {
		t.Fatalf("build frame: %v", err)
	}
	tbl, err := table.New(frame, table.WithStub("item"))
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	return tbl.Header(richtext.Plain("Inventory"), richtext.Text{})
}

func TestGenerateHTML(t *testing.T) {
	output, err := tablegen.GenerateHTML(context.Background(), quickTable(t))
	if err != nil {
		t.Fatalf("generate html: %v", err)
	}
	got := string(output)
	if !strings.Contains(got, "<table") || !strings.Contains(got, "Inventory") {
		t.Fatalf("unexpected html output:\n%s", got)
	}
}

func TestGenerateText(t *testing.T) {
	output, err := tablegen.GenerateText(context.Background(), quickTable(t))
	if err != nil {
		t.Fatalf("generate text: %v", err)
	}
	got := string(output)
	if !strings.Contains(got, "apples") || !strings.Contains(got, "units") {
		t.Fatalf("unexpected text output:\n%s", got)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	fsys := tablegen.EmbeddedTemplates()
	if fsys == nil {
		t.Fatalf("expected embedded templates")
	}
	if _, err := fsys.Open("templates/table.tmpl"); err != nil {
		t.Fatalf("open table template: %v", err)
	}
}
