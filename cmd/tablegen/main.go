package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goliatone/go-tablegen/pkg/options"
	"github.com/goliatone/go-tablegen/pkg/orchestrator"
	"github.com/goliatone/go-tablegen/pkg/richtext"
	"github.com/goliatone/go-tablegen/pkg/table"
	"github.com/goliatone/go-tablegen/pkg/tabular"
)

func main() {
	input := flag.String("input", "", "CSV file with a header row")
	title := flag.String("title", "", "table title")
	subtitle := flag.String("subtitle", "", "table subtitle")
	stub := flag.String("stub", "", "column to use as the row stub")
	group := flag.String("group", "", "column to group rows by")
	renderer := flag.String("renderer", "text", "renderer to use (html, text)")
	optionsDir := flag.String("options", "", "directory of option files (YAML/JSON)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if *input == "" {
		log.Fatal("tablegen: -input is required")
	}

	ctx := context.Background()

	frame, err := loadCSV(*input)
	if err != nil {
		log.Fatalf("load input: %v", err)
	}

	if *group != "" {
		frame, err = frame.GroupBy(*group)
		if err != nil {
			log.Fatalf("group rows: %v", err)
		}
	}

	var buildOptions []table.BuildOption
	if *stub != "" {
		buildOptions = append(buildOptions, table.WithStub(*stub))
	}

	tbl, err := table.New(frame, buildOptions...)
	if err != nil {
		log.Fatalf("build table: %v", err)
	}

	if *title != "" || *subtitle != "" {
		tbl = tbl.Header(richtext.Plain(*title), richtext.Plain(*subtitle))
	}

	if *optionsDir != "" {
		settings, err := options.LoadFS(os.DirFS(*optionsDir))
		if err != nil {
			log.Fatalf("load options: %v", err)
		}
		tbl, err = tbl.Options(settings...)
		if err != nil {
			log.Fatalf("apply options: %v", err)
		}
	}

	gen := orchestrator.New()

	result, err := gen.Generate(ctx, orchestrator.Request{
		Table:    tbl,
		Renderer: *renderer,
	})
	if err != nil {
		log.Fatalf("generate table: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Table written to %s\n", filepath.Clean(*output))
	} else {
		fmt.Println(string(result))
	}
}

// loadCSV reads a header row plus records, converting numeric-looking fields
// so aggregation and alignment treat them as numbers.
func loadCSV(path string) (*tabular.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	columns := rows[0]
	records := make([][]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make([]any, len(row))
		for i, field := range row {
			record[i] = parseField(field)
		}
		records = append(records, record)
	}

	return tabular.FromRecords(columns, records)
}

func parseField(field string) any {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return field
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return field
}
