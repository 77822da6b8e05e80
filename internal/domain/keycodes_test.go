package domain

import "testing"

func TestQMKKeycode(t *testing.T) {
	tests := []struct {
		zmk  string
		want string
	}{
		{"A", "KC_A"},
		{"N4", "KC_4"},
		{"NUMBER_7", "KC_7"},
		{"BSPC", "KC_BSPACE"},
		{"SEMI", "KC_SCOLON"},
		{"UNDER", "LSFT(KC_MINUS)"},
		{"LBRC", "LSFT(KC_LBRACKET)"},
		{"C_VOL_UP", "KC_AUDIO_VOL_UP"},
		{"BT_CLR", "KC_NO"},
		{"RGB_TOG", "KC_NO"},

		// modifier wrappers, including nesting
		{"LS(MINUS)", "LSFT(KC_MINUS)"},
		{"LC(X)", "LCTL(KC_X)"},
		{"LG(LS(K))", "LGUI(LSFT(KC_K))"},
		{"RA(N2)", "RALT(KC_2)"},

		// passthrough and fallback
		{"KC_CUSTOM", "KC_CUSTOM"},
		{"F13", "KC_F13"},
	}

	for _, tc := range tests {
		if got := qmkKeycode(tc.zmk); got != tc.want {
			t.Errorf("qmkKeycode(%q) = %q, want %q", tc.zmk, got, tc.want)
		}
	}
}

func TestQMKModifier(t *testing.T) {
	for zmk, want := range map[string]string{
		"LSHIFT": "LSFT",
		"LSHFT":  "LSFT",
		"LG":     "LGUI",
		"LGUI":   "LGUI",
		"RGUI":   "RGUI",
		"LALT":   "LALT",
		"RALT":   "RALT",
		"LCMD":   "LGUI",
		"RCTRL":  "RCTL",
	} {
		got, ok := qmkModifier(zmk)
		if !ok || got != want {
			t.Errorf("qmkModifier(%q) = %q, %v; want %q, true", zmk, got, ok, want)
		}
	}

	if _, ok := qmkModifier("A"); ok {
		t.Error("qmkModifier(\"A\") unexpectedly resolved")
	}
}
