package core

type Button uint8

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_4
	BUTTON_5
	BUTTON_MAX_BUTTONS
)

// Key code definitions. Values follow the GLFW key tokens so that the
// platform layer can translate without a lookup table.
type KeyCode uint16

const (
	KEY_SPACE         KeyCode = 32
	KEY_APOSTROPHE    KeyCode = 39
	KEY_COMMA         KeyCode = 44
	KEY_MINUS         KeyCode = 45
	KEY_PERIOD        KeyCode = 46
	KEY_SLASH         KeyCode = 47
	KEY_0             KeyCode = 48
	KEY_1             KeyCode = 49
	KEY_2             KeyCode = 50
	KEY_3             KeyCode = 51
	KEY_4             KeyCode = 52
	KEY_5             KeyCode = 53
	KEY_6             KeyCode = 54
	KEY_7             KeyCode = 55
	KEY_8             KeyCode = 56
	KEY_9             KeyCode = 57
	KEY_SEMICOLON     KeyCode = 59
	KEY_EQUAL         KeyCode = 61
	KEY_A             KeyCode = 65
	KEY_B             KeyCode = 66
	KEY_C             KeyCode = 67
	KEY_D             KeyCode = 68
	KEY_E             KeyCode = 69
	KEY_F             KeyCode = 70
	KEY_G             KeyCode = 71
	KEY_H             KeyCode = 72
	KEY_I             KeyCode = 73
	KEY_J             KeyCode = 74
	KEY_K             KeyCode = 75
	KEY_L             KeyCode = 76
	KEY_M             KeyCode = 77
	KEY_N             KeyCode = 78
	KEY_O             KeyCode = 79
	KEY_P             KeyCode = 80
	KEY_Q             KeyCode = 81
	KEY_R             KeyCode = 82
	KEY_S             KeyCode = 83
	KEY_T             KeyCode = 84
	KEY_U             KeyCode = 85
	KEY_V             KeyCode = 86
	KEY_W             KeyCode = 87
	KEY_X             KeyCode = 88
	KEY_Y             KeyCode = 89
	KEY_Z             KeyCode = 90
	KEY_LEFT_BRACKET  KeyCode = 91
	KEY_BACKSLASH     KeyCode = 92
	KEY_RIGHT_BRACKET KeyCode = 93
	KEY_GRAVE         KeyCode = 96
	KEY_ESCAPE        KeyCode = 256
	KEY_ENTER         KeyCode = 257
	KEY_TAB           KeyCode = 258
	KEY_BACKSPACE     KeyCode = 259
	KEY_INSERT        KeyCode = 260
	KEY_DELETE        KeyCode = 261
	KEY_RIGHT         KeyCode = 262
	KEY_LEFT          KeyCode = 263
	KEY_DOWN          KeyCode = 264
	KEY_UP            KeyCode = 265
	KEY_PAGE_UP       KeyCode = 266
	KEY_PAGE_DOWN     KeyCode = 267
	KEY_HOME          KeyCode = 268
	KEY_END           KeyCode = 269
	KEY_CAPS_LOCK     KeyCode = 280
	KEY_SCROLL_LOCK   KeyCode = 281
	KEY_NUM_LOCK      KeyCode = 282
	KEY_PRINT_SCREEN  KeyCode = 283
	KEY_PAUSE         KeyCode = 284
	KEY_F1            KeyCode = 290
	KEY_F2            KeyCode = 291
	KEY_F3            KeyCode = 292
	KEY_F4            KeyCode = 293
	KEY_F5            KeyCode = 294
	KEY_F6            KeyCode = 295
	KEY_F7            KeyCode = 296
	KEY_F8            KeyCode = 297
	KEY_F9            KeyCode = 298
	KEY_F10           KeyCode = 299
	KEY_F11           KeyCode = 300
	KEY_F12           KeyCode = 301
	KEY_NUMPAD0       KeyCode = 320
	KEY_NUMPAD1       KeyCode = 321
	KEY_NUMPAD2       KeyCode = 322
	KEY_NUMPAD3       KeyCode = 323
	KEY_NUMPAD4       KeyCode = 324
	KEY_NUMPAD5       KeyCode = 325
	KEY_NUMPAD6       KeyCode = 326
	KEY_NUMPAD7       KeyCode = 327
	KEY_NUMPAD8       KeyCode = 328
	KEY_NUMPAD9       KeyCode = 329
	KEY_DECIMAL       KeyCode = 330
	KEY_DIVIDE        KeyCode = 331
	KEY_MULTIPLY      KeyCode = 332
	KEY_SUBTRACT      KeyCode = 333
	KEY_ADD           KeyCode = 334
	KEY_NUMPAD_ENTER  KeyCode = 335
	KEY_NUMPAD_EQUAL  KeyCode = 336
	KEY_LSHIFT        KeyCode = 340
	KEY_LCONTROL      KeyCode = 341
	KEY_LALT          KeyCode = 342
	KEY_LSUPER        KeyCode = 343
	KEY_RSHIFT        KeyCode = 344
	KEY_RCONTROL      KeyCode = 345
	KEY_RALT          KeyCode = 346
	KEY_RSUPER        KeyCode = 347
	KEY_MENU          KeyCode = 348
	KEYS_MAX_KEYS     KeyCode = 349
)

// Modifier key bitmask. Values follow the GLFW modifier bits.
type ModifierKey uint8

const (
	MOD_SHIFT   ModifierKey = 0x01
	MOD_CONTROL ModifierKey = 0x02
	MOD_ALT     ModifierKey = 0x04
	MOD_SUPER   ModifierKey = 0x08
)
