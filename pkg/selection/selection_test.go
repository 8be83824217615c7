package selection

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Selection
		wantErr bool
	}{
		{name: "short clipboard", value: "c", want: Clipboard},
		{name: "short primary", value: "p", want: Primary},
		{name: "full clipboard", value: "clipboard", want: Clipboard},
		{name: "full primary", value: "primary", want: Primary},
		{name: "case insensitive", value: "CLIPBOARD", want: Clipboard},
		{name: "mixed case primary", value: "Primary", want: Primary},
		{name: "invalid value", value: "x", wantErr: true},
		{name: "secondary unsupported", value: "secondary", wantErr: true},
		{name: "empty value", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestMap(t *testing.T) {
	effective, warning := Map(Clipboard)
	if effective != Clipboard {
		t.Errorf("Map(Clipboard) = %v, want Clipboard", effective)
	}
	if warning != "" {
		t.Errorf("Map(Clipboard) warning = %q, want none", warning)
	}

	effective, warning = Map(Primary)
	if effective != Clipboard {
		t.Errorf("Map(Primary) = %v, want Clipboard", effective)
	}
	if warning != PrimaryWarning {
		t.Errorf("Map(Primary) warning = %q, want %q", warning, PrimaryWarning)
	}
}

func TestMapDeterminism(t *testing.T) {
	// PRIMARY and CLIPBOARD must resolve to the identical effective
	// selection so the backend call is the same either way.
	a, _ := Map(Primary)
	b, _ := Map(Clipboard)
	if a != b {
		t.Errorf("Map(Primary) = %v, Map(Clipboard) = %v, want equal", a, b)
	}
}
