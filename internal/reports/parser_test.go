package reports

import "testing"

func TestParseItemSummary(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		want    []ParsedLine
	}{
		{
			name:    "quantity with x",
			summary: "2x Rol Canela",
			want:    []ParsedLine{{Quantity: 2, Name: "Rol Canela"}},
		},
		{
			name:    "quantity with spaced x",
			summary: "3 x Concha Vainilla",
			want:    []ParsedLine{{Quantity: 3, Name: "Concha Vainilla"}},
		},
		{
			name:    "quantity without x",
			summary: "4 Dona Chocolate",
			want:    []ParsedLine{{Quantity: 4, Name: "Dona Chocolate"}},
		},
		{
			name:    "extras stripped",
			summary: "2x Rol Canela (extra glaseado)",
			want:    []ParsedLine{{Quantity: 2, Name: "Rol Canela"}},
		},
		{
			name:    "no quantity falls back to one",
			summary: "Pastel Tres Leches",
			want:    []ParsedLine{{Quantity: 1, Name: "Pastel Tres Leches"}},
		},
		{
			name:    "no quantity with extras",
			summary: "Pastel Tres Leches (sin fresas)",
			want:    []ParsedLine{{Quantity: 1, Name: "Pastel Tres Leches"}},
		},
		{
			name:    "multiple lines",
			summary: "2x Rol Canela\n1x Concha",
			want: []ParsedLine{
				{Quantity: 2, Name: "Rol Canela"},
				{Quantity: 1, Name: "Concha"},
			},
		},
		{
			name:    "blank lines skipped",
			summary: "\n2x Rol Canela\n\n",
			want:    []ParsedLine{{Quantity: 2, Name: "Rol Canela"}},
		},
		{
			name:    "empty summary",
			summary: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseItemSummary(tt.summary)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
