package config

import "testing"

func TestForcedPlayerID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  uint32
	}{
		{"absent", "", 0},
		{"explicit zero", "0", 0},
		{"hex", "0004de42", 0x0004de42},
		{"upper range", "deadbeef", 0xdeadbeef},
		{"garbage", "not-hex", 0},
		{"too large", "1deadbeef0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvForcePlayerID, tt.value)
			if got := ForcedPlayerID(); got != tt.want {
				t.Fatalf("got %08x want %08x", got, tt.want)
			}
		})
	}
}

func TestUpdateDisabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"1", true},
		{"true", true},
		{"yes", false},
	}
	for _, tt := range tests {
		t.Setenv(EnvUpdateDisabled, tt.value)
		if got := UpdateDisabled(); got != tt.want {
			t.Fatalf("UpdateDisabled with %q = %v want %v", tt.value, got, tt.want)
		}
	}
}
