package domain

import (
	"regexp"
	"strings"
)

// zmkToQMK maps ZMK key names to QMK keycodes. ZMK-only hardware features
// (bluetooth, RGB, output selection) translate to KC_NO: the key exists, the
// destination firmware just has nothing to do for it.
var zmkToQMK = map[string]string{
	// Letters
	"A": "KC_A", "B": "KC_B", "C": "KC_C", "D": "KC_D", "E": "KC_E",
	"F": "KC_F", "G": "KC_G", "H": "KC_H", "I": "KC_I", "J": "KC_J",
	"K": "KC_K", "L": "KC_L", "M": "KC_M", "N": "KC_N", "O": "KC_O",
	"P": "KC_P", "Q": "KC_Q", "R": "KC_R", "S": "KC_S", "T": "KC_T",
	"U": "KC_U", "V": "KC_V", "W": "KC_W", "X": "KC_X", "Y": "KC_Y",
	"Z": "KC_Z",

	// Numbers
	"N0": "KC_0", "N1": "KC_1", "N2": "KC_2", "N3": "KC_3", "N4": "KC_4",
	"N5": "KC_5", "N6": "KC_6", "N7": "KC_7", "N8": "KC_8", "N9": "KC_9",
	"NUMBER_0": "KC_0", "NUMBER_1": "KC_1", "NUMBER_2": "KC_2",
	"NUMBER_3": "KC_3", "NUMBER_4": "KC_4", "NUMBER_5": "KC_5",
	"NUMBER_6": "KC_6", "NUMBER_7": "KC_7", "NUMBER_8": "KC_8",
	"NUMBER_9": "KC_9",

	// Function keys
	"F1": "KC_F1", "F2": "KC_F2", "F3": "KC_F3", "F4": "KC_F4",
	"F5": "KC_F5", "F6": "KC_F6", "F7": "KC_F7", "F8": "KC_F8",
	"F9": "KC_F9", "F10": "KC_F10", "F11": "KC_F11", "F12": "KC_F12",

	// Modifiers
	"LEFT_CONTROL": "KC_LCTRL", "LCTRL": "KC_LCTRL", "LEFT_CTRL": "KC_LCTRL",
	"RIGHT_CONTROL": "KC_RCTRL", "RCTRL": "KC_RCTRL", "RIGHT_CTRL": "KC_RCTRL",
	"LEFT_SHIFT": "KC_LSHIFT", "LSHIFT": "KC_LSHIFT", "LSHFT": "KC_LSHIFT",
	"RIGHT_SHIFT": "KC_RSHIFT", "RSHIFT": "KC_RSHIFT", "RSHFT": "KC_RSHIFT",
	"LEFT_ALT": "KC_LALT", "LALT": "KC_LALT",
	"RIGHT_ALT": "KC_RALT", "RALT": "KC_RALT",
	"LEFT_GUI": "KC_LGUI", "LGUI": "KC_LGUI", "LEFT_WIN": "KC_LGUI", "LWIN": "KC_LGUI",
	"RIGHT_GUI": "KC_RGUI", "RGUI": "KC_RGUI", "RIGHT_WIN": "KC_RGUI", "RWIN": "KC_RGUI",

	// Navigation
	"UP": "KC_UP", "DOWN": "KC_DOWN", "LEFT": "KC_LEFT", "RIGHT": "KC_RIGHT",
	"HOME": "KC_HOME", "END": "KC_END",
	"PAGE_UP": "KC_PGUP", "PG_UP": "KC_PGUP", "PGUP": "KC_PGUP",
	"PAGE_DOWN": "KC_PGDN", "PG_DN": "KC_PGDN", "PGDN": "KC_PGDN",

	// Editing
	"BACKSPACE": "KC_BSPACE", "BSPC": "KC_BSPACE", "BKSP": "KC_BSPACE",
	"DELETE": "KC_DELETE", "DEL": "KC_DELETE",
	"INSERT": "KC_INSERT", "INS": "KC_INSERT",
	"ENTER": "KC_ENTER", "RETURN": "KC_ENTER", "RET": "KC_ENTER",
	"TAB":      "KC_TAB",
	"ESCAPE":   "KC_ESCAPE", "ESC": "KC_ESCAPE",
	"SPACE":    "KC_SPACE", "SPC": "KC_SPACE",
	"CAPSLOCK": "KC_CAPSLOCK", "CAPS": "KC_CAPSLOCK",
	"PRINTSCREEN": "KC_PSCREEN", "PSCRN": "KC_PSCREEN", "PSCR": "KC_PSCREEN",

	// Punctuation and symbols
	"MINUS": "KC_MINUS", "PLUS": "KC_KP_PLUS",
	"EQUAL": "KC_EQUAL", "EQUALS": "KC_EQUAL",
	"UNDERSCORE": "LSFT(KC_MINUS)", "UNDER": "LSFT(KC_MINUS)",
	"LEFT_BRACKET": "KC_LBRACKET", "LBKT": "KC_LBRACKET",
	"RIGHT_BRACKET": "KC_RBRACKET", "RBKT": "KC_RBRACKET",
	"LEFT_BRACE": "LSFT(KC_LBRACKET)", "LBRC": "LSFT(KC_LBRACKET)",
	"RIGHT_BRACE": "LSFT(KC_RBRACKET)", "RBRC": "LSFT(KC_RBRACKET)",
	"LEFT_PARENTHESIS": "LSFT(KC_9)", "LPAR": "LSFT(KC_9)",
	"RIGHT_PARENTHESIS": "LSFT(KC_0)", "RPAR": "LSFT(KC_0)",
	"BACKSLASH": "KC_BSLASH", "BSLH": "KC_BSLASH",
	"SLASH": "KC_SLASH", "FSLH": "KC_SLASH",
	"SEMICOLON": "KC_SCOLON", "SEMI": "KC_SCOLON",
	"COLON":      "LSFT(KC_SCOLON)",
	"APOSTROPHE": "KC_QUOTE", "APOS": "KC_QUOTE", "SQT": "KC_QUOTE",
	"SINGLE_QUOTE":  "KC_QUOTE",
	"DOUBLE_QUOTES": "LSFT(KC_QUOTE)", "DQT": "LSFT(KC_QUOTE)",
	"COMMA":  "KC_COMMA",
	"PERIOD": "KC_DOT", "DOT": "KC_DOT",
	"GRAVE": "KC_GRAVE", "GRV": "KC_GRAVE",
	"TILDE": "LSFT(KC_GRAVE)", "TILD": "LSFT(KC_GRAVE)",

	// Shifted symbols
	"EXCLAMATION": "LSFT(KC_1)", "EXCL": "LSFT(KC_1)",
	"AT_SIGN": "LSFT(KC_2)", "AT": "LSFT(KC_2)",
	"HASH": "LSFT(KC_3)", "POUND": "LSFT(KC_3)",
	"DOLLAR": "LSFT(KC_4)", "DLLR": "LSFT(KC_4)",
	"PERCENT": "LSFT(KC_5)", "PRCNT": "LSFT(KC_5)",
	"CARET": "LSFT(KC_6)", "CRRT": "LSFT(KC_6)",
	"AMPERSAND": "LSFT(KC_7)", "AMPS": "LSFT(KC_7)",
	"ASTERISK": "LSFT(KC_8)", "ASTRK": "LSFT(KC_8)", "STAR": "LSFT(KC_8)",
	"QUESTION": "LSFT(KC_SLASH)", "QMARK": "LSFT(KC_SLASH)",
	"PIPE":      "LSFT(KC_BSLASH)",
	"LESS_THAN": "LSFT(KC_COMMA)", "LT": "LSFT(KC_COMMA)",
	"GREATER_THAN": "LSFT(KC_DOT)", "GT": "LSFT(KC_DOT)",

	// Keypad
	"KP_ASTERISK": "KC_KP_ASTERISK", "KP_MULTIPLY": "KC_KP_ASTERISK",
	"KP_PLUS": "KC_KP_PLUS", "KP_ADD": "KC_KP_PLUS",
	"KP_MINUS": "KC_KP_MINUS", "KP_SUBTRACT": "KC_KP_MINUS",
	"KP_SLASH": "KC_KP_SLASH", "KP_DIVIDE": "KC_KP_SLASH",

	// Media
	"K_PLAY_PAUSE": "KC_MEDIA_PLAY_PAUSE", "C_PP": "KC_MEDIA_PLAY_PAUSE",
	"K_STOP": "KC_MEDIA_STOP", "C_STOP": "KC_MEDIA_STOP",
	"K_NEXT": "KC_MEDIA_NEXT_TRACK", "C_NEXT": "KC_MEDIA_NEXT_TRACK",
	"K_PREV": "KC_MEDIA_PREV_TRACK", "C_PREV": "KC_MEDIA_PREV_TRACK",
	"K_VOL_UP": "KC_AUDIO_VOL_UP", "C_VOL_UP": "KC_AUDIO_VOL_UP",
	"K_VOL_DN": "KC_AUDIO_VOL_DOWN", "C_VOL_DN": "KC_AUDIO_VOL_DOWN",
	"K_MUTE": "KC_AUDIO_MUTE", "C_MUTE": "KC_AUDIO_MUTE",

	// Special
	"K_APPLICATION": "KC_APPLICATION", "K_APP": "KC_APPLICATION",
	"K_CMENU": "KC_APPLICATION",

	// ZMK-only features
	"BT_CLR": "KC_NO", "BT_CLR_ALL": "KC_NO",
	"BT_SEL": "KC_NO", "BT_PRV": "KC_NO", "BT_NXT": "KC_NO",
	"BT_DISC": "KC_NO",
	"OUT_TOG": "KC_NO", "OUT_USB": "KC_NO", "OUT_BLE": "KC_NO",
	"EP_ON": "KC_NO", "EP_OFF": "KC_NO", "EP_TOG": "KC_NO",
	"EXT_POWER": "KC_NO",
	"RGB_TOG": "KC_NO", "RGB_EFF": "KC_NO", "RGB_EFR": "KC_NO",
	"RGB_HUI": "KC_NO", "RGB_HUD": "KC_NO",
	"RGB_SAI": "KC_NO", "RGB_SAD": "KC_NO",
	"RGB_BRI": "KC_NO", "RGB_BRD": "KC_NO",
	"RGB_SPI": "KC_NO", "RGB_SPD": "KC_NO",
}

// zmkModifiers maps ZMK modifier names (the short wrapper form, the bare key
// name, and the long key name) to the QMK modifier function prefix.
var zmkModifiers = map[string]string{
	"LC": "LCTL", "LEFT_CONTROL": "LCTL", "LCTRL": "LCTL",
	"RC": "RCTL", "RIGHT_CONTROL": "RCTL", "RCTRL": "RCTL",
	"LS": "LSFT", "LEFT_SHIFT": "LSFT", "LSHIFT": "LSFT", "LSHFT": "LSFT",
	"RS": "RSFT", "RIGHT_SHIFT": "RSFT", "RSHIFT": "RSFT", "RSHFT": "RSFT",
	"LA": "LALT", "LEFT_ALT": "LALT", "LALT": "LALT",
	"RA": "RALT", "RIGHT_ALT": "RALT", "RALT": "RALT",
	"LG": "LGUI", "LEFT_GUI": "LGUI", "LGUI": "LGUI", "LWIN": "LGUI", "LCMD": "LGUI", "LMETA": "LGUI",
	"RG": "RGUI", "RIGHT_GUI": "RGUI", "RGUI": "RGUI", "RWIN": "RGUI", "RCMD": "RGUI", "RMETA": "RGUI",
}

var modifierWrapper = regexp.MustCompile(`^(\w+)\((.+)\)$`)

// qmkKeycode converts a ZMK key name to its QMK equivalent, rewriting
// modifier wrappers like LS(MINUS) or LG(LS(K)) recursively.
func qmkKeycode(zmk string) string {
	if match := modifierWrapper.FindStringSubmatch(zmk); match != nil {
		mod := match[1]
		if q, ok := zmkModifiers[mod]; ok {
			mod = q
		}
		return mod + "(" + qmkKeycode(match[2]) + ")"
	}
	if q, ok := zmkToQMK[zmk]; ok {
		return q
	}
	if strings.HasPrefix(zmk, "KC_") {
		return zmk
	}
	return "KC_" + zmk
}

// qmkModifier resolves a ZMK modifier name to the QMK modifier prefix used
// in mod-tap keycodes. It reports false for names that are not modifiers.
func qmkModifier(zmk string) (string, bool) {
	q, ok := zmkModifiers[zmk]
	return q, ok
}
