package phone

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain number untouched", "089-123-4567", "089-123-4567"},
		{"label colon stripped", "Tel: 089-123-4567", "089-123-4567"},
		{"label dot stripped", "Telefon. 030 1234567", "030 1234567"},
		{"label case-insensitive", "PHONE: 0721/12345", "0721/12345"},
		{"trunk marker collapsed", "+49(0)721-91225-35", "+49 721-91225-35"},
		{"trunk marker with spaces", "+49 (0) 721 12345", "+49 721 12345"},
		{"whitespace collapsed", "089  123\t4567", "089 123 4567"},
		{"trimmed", "  0151 1234567  ", "0151 1234567"},
		{"only a label", "Telefon:", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Tel: 089-123-4567",
		"+49(0)721-91225-35",
		"+49(0)(0)30 123456",
		"Telefon:   +49  30   555 6666  ",
		"irgendein Text ohne Nummer",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalize_TrunkCollapseValidates(t *testing.T) {
	got := Normalize("+49(0)721-91225-35")
	if got != "+49 721-91225-35" {
		t.Fatalf("Normalize = %q, want %q", got, "+49 721-91225-35")
	}
	if !Valid(got) {
		t.Errorf("collapsed form %q should validate", got)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"valid after label strip", "Tel: 089-123-4567", "089-123-4567", true},
		{"valid after trunk collapse", "+49(0)721-91225-35", "+49 721-91225-35", true},
		{"rejects short run", "12", "", false},
		{"rejects words", "kein Anschluss", "", false},
		{"rejects empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Clean(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Clean(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
