package action

import "strings"

// KeyCode distinguishes rune keys from named keys.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyTab
	KeyBackTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
)

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
)

// Key is a decoded key press.
type Key struct {
	Code KeyCode
	Rune rune
	Mod  Modifiers
}

// Rune returns an unmodified rune key.
func Rune(r rune) Key { return Key{Code: KeyRune, Rune: r} }

// Ctrl returns r with the control modifier held.
func Ctrl(r rune) Key { return Key{Code: KeyRune, Rune: r, Mod: ModCtrl} }

// Alt returns r with the alt modifier held.
func Alt(r rune) Key { return Key{Code: KeyRune, Rune: r, Mod: ModAlt} }

// Named returns a named key such as KeyEnter.
func Named(code KeyCode) Key { return Key{Code: code} }

// Printable reports whether the key inserts text.
func (k Key) Printable() bool {
	return k.Code == KeyRune && k.Mod&(ModCtrl|ModAlt) == 0 && k.Rune >= ' ' && k.Rune != 0x7f
}

// String renders the key the way key bindings name it, e.g. "ctrl+j",
// "enter" or "x".
func (k Key) String() string {
	var b strings.Builder
	if k.Mod&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if k.Mod&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if k.Code == KeyRune {
		b.WriteRune(k.Rune)
		return b.String()
	}
	if name, ok := keyNames[k.Code]; ok {
		b.WriteString(name)
		return b.String()
	}
	b.WriteString("unknown")
	return b.String()
}
