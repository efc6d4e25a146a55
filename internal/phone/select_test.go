package phone

import "testing"

func TestSelectBest(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
		wantOK     bool
	}{
		{
			name:       "empty set",
			candidates: nil,
			want:       "",
			wantOK:     false,
		},
		{
			name:       "single mobile falls through",
			candidates: []string{"0151 1234567"},
			want:       "0151 1234567",
			wantOK:     true,
		},
		{
			name:       "landline preferred over mobile",
			candidates: []string{"089 1234567", "0151 1234567"},
			want:       "089 1234567",
			wantOK:     true,
		},
		{
			name:       "landline preferred even when mobile first",
			candidates: []string{"0151 1234567", "089 1234567"},
			want:       "089 1234567",
			wantOK:     true,
		},
		{
			name:       "all mobile picks first",
			candidates: []string{"0170 111 2222", "0151 333 4444"},
			want:       "0170 111 2222",
			wantOK:     true,
		},
		{
			name:       "international not treated as mobile",
			candidates: []string{"0151 1234567", "+49 30 555 6666"},
			want:       "+49 30 555 6666",
			wantOK:     true,
		},
		{
			name:       "duplicates collapse",
			candidates: []string{"089 1234567", "089 1234567"},
			want:       "089 1234567",
			wantOK:     true,
		},
		{
			name:       "empty strings ignored",
			candidates: []string{"", ""},
			want:       "",
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectBest(tt.candidates)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("SelectBest(%v) = (%q, %v), want (%q, %v)", tt.candidates, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSelectBest_NeverPicksMobileOverLandline(t *testing.T) {
	candidates := []string{"0160 999 8888", "0151 1234567", "02131-718-92-0", "0170 111 2222"}
	got, ok := SelectBest(candidates)
	if !ok || got != "02131-718-92-0" {
		t.Errorf("SelectBest(%v) = (%q, %v), want the landline", candidates, got, ok)
	}
}
