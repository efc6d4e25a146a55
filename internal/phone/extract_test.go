package phone

import (
	"reflect"
	"testing"
)

func TestExtract_LabeledNumberExcludingFax(t *testing.T) {
	got := Extract("Telefon: 089-123-4567, Fax: 089-123-9999")
	want := []string{"089-123-4567"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_MobileOnly(t *testing.T) {
	got := Extract("Mobil: 0151 1234567")
	want := []string{"0151 1234567"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_FaxContext(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "bare fax token",
			text: "Fax 089 123 4567",
			want: nil,
		},
		{
			name: "telefax label",
			text: "Telefax: 030 1234567",
			want: nil,
		},
		{
			name: "fax dotted",
			text: "Fax. 089-123-9999",
			want: nil,
		},
		{
			name: "fax on previous line does not poison",
			text: "Fax: 089-123-9999\nTelefon: 089-123-4567",
			want: []string{"089-123-4567"},
		},
		{
			name: "fax far behind on same line does not poison",
			text: "Fax: 030 111 2222 und die Zentrale erreichen Sie unter 089 333 4444",
			want: []string{"089 333 4444"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtract_UnionOfPasses(t *testing.T) {
	text := "Telefon: 089 111 2222 oder zentral unter +49 30 555 6666 erreichbar"
	got := Extract(text)
	want := []string{"089 111 2222", "+49 30 555 6666"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_Deduplicates(t *testing.T) {
	text := "Tel: 089-123-4567 ... Telefon: 089-123-4567 ... nochmal 089-123-4567"
	got := Extract(text)
	want := []string{"089-123-4567"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_LabeledHitMustRevalidate(t *testing.T) {
	// A label followed by something number-ish but malformed is
	// dropped, not reported on the label's authority.
	got := Extract("Tel: 12")
	if len(got) != 0 {
		t.Errorf("Extract() = %v, want none", got)
	}
}

func TestExtract_TrunkMarkerNormalized(t *testing.T) {
	got := Extract("Telefon: +49(0)721-91225-35")
	want := []string{"+49 721-91225-35"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_NoCandidates(t *testing.T) {
	for _, text := range []string{"", "Impressum und Datenschutz", "Jahr 2024, Seite 7"} {
		if got := Extract(text); len(got) != 0 {
			t.Errorf("Extract(%q) = %v, want none", text, got)
		}
	}
}

func TestExtract_ResultsAlwaysValid(t *testing.T) {
	texts := []string{
		"Telefon: 089-123-4567, Fax: 089-123-9999",
		"Kontakt: +49 (721) 123 45 oder 0800 123 4567",
		"Mobil: 0151 1234567 Festnetz: 02131-718-92-0",
		"rein gar nichts",
	}
	for _, text := range texts {
		for _, num := range Extract(text) {
			if !Valid(num) {
				t.Errorf("Extract(%q) returned %q which fails re-validation", text, num)
			}
		}
	}
}
