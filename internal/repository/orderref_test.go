package repository

import "testing"

func TestNormalizeOrderRef(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"sudah kanonik", "#0007", "#0007"},
		{"tanpa pagar", "0007", "#0007"},
		{"ada spasi", "  #0007  ", "#0007"},
		{"spasi tanpa pagar", " 0042 ", "#0042"},
		{"kosong", "", ""},
		{"cuma pagar", "#", ""},
		{"referensi non-numerik", "ORD-123-ABC", "#ORD-123-ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeOrderRef(tt.raw); got != tt.want {
				t.Errorf("NormalizeOrderRef(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatOrderNumber(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{1, "#0001"},
		{42, "#0042"},
		{9999, "#9999"},
		{10000, "#10000"}, // lewat 4 digit ya tetap jalan, cuma tidak di-pad lagi
	}

	for _, tt := range tests {
		if got := FormatOrderNumber(tt.seq); got != tt.want {
			t.Errorf("FormatOrderNumber(%d) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}

// Nomor yang dicetak harus langsung kanonik, biar pencocokan saat notifikasi
// masuk tinggal satu perbandingan
func TestMintedNumberIsCanonical(t *testing.T) {
	minted := FormatOrderNumber(7)
	if NormalizeOrderRef(minted) != minted {
		t.Errorf("nomor hasil mint %q tidak kanonik", minted)
	}
}

func TestParseNumericRef(t *testing.T) {
	tests := []struct {
		raw  string
		want uint64
	}{
		{"7", 7},
		{"0007", 7},
		{"#0007", 7},
		{" #12 ", 12},
		{"ORD-123", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := ParseNumericRef(tt.raw); got != tt.want {
			t.Errorf("ParseNumericRef(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
