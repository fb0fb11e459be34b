package faker

import "testing"

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		h, s, l int
	}{
		{"white", 255, 255, 255, 0, 0, 100},
		{"black", 0, 0, 0, 0, 0, 0},
		{"gray", 128, 128, 128, 0, 0, 50},
		{"red", 255, 0, 0, 0, 100, 50},
		{"green", 0, 255, 0, 120, 100, 50},
		{"blue", 0, 0, 255, 240, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := rgbToHSL(tt.r, tt.g, tt.b)
			if h != tt.h || s != tt.s || l != tt.l {
				t.Errorf("rgbToHSL(%d, %d, %d) = (%d, %d%%, %d%%), want (%d, %d%%, %d%%)",
					tt.r, tt.g, tt.b, h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}
