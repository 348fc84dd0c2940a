package cmd

import (
	"strings"
	"testing"
)

const listing = `# Transações

| # | Data | Operação |
|--:|:---|:---|
| 0 | 10-01-2025 | COMPRA |
| 1 | 11-01-2025 | COMPRA |
| 2 | 12-01-2025 | VENDA |
`

func TestTrimRows(t *testing.T) {
	tests := []struct {
		name       string
		head, tail int
		wantRows   []string
		dropRows   []string
	}{
		{name: "no trim", wantRows: []string{"| 0 |", "| 1 |", "| 2 |"}},
		{name: "head", head: 1, wantRows: []string{"| 0 |"}, dropRows: []string{"| 1 |", "| 2 |"}},
		{name: "tail", tail: 1, wantRows: []string{"| 2 |"}, dropRows: []string{"| 0 |", "| 1 |"}},
		{name: "head larger than listing", head: 10, wantRows: []string{"| 0 |", "| 1 |", "| 2 |"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := trimRows(listing, tc.head, tc.tail)
			if !strings.Contains(got, "| # | Data | Operação |") {
				t.Errorf("the table header must survive trimming:\n%s", got)
			}
			for _, row := range tc.wantRows {
				if !strings.Contains(got, row) {
					t.Errorf("row %q missing:\n%s", row, got)
				}
			}
			for _, row := range tc.dropRows {
				if strings.Contains(got, row) {
					t.Errorf("row %q should have been trimmed:\n%s", row, got)
				}
			}
		})
	}
}

func TestParseDateFlag(t *testing.T) {
	day, err := parseDateFlag("2025-06-30")
	if err != nil {
		t.Fatal(err)
	}
	if day.String() != "2025-06-30" {
		t.Errorf("parseDateFlag = %s", day)
	}

	today, err := parseDateFlag("")
	if err != nil {
		t.Fatal(err)
	}
	if today.IsZero() {
		t.Error("empty flag must default to today")
	}

	if _, err := parseDateFlag("30/06/2025"); err == nil {
		t.Error("slashed dates are not accepted")
	}
}
