package sport

import (
	"log"

	"sportui/internal/ui"
)

// bindNamed binds a configured key name on d. Unknown names are logged and
// left unbound; config.Load rejects them earlier.
func bindNamed(d *ui.Dispatcher, name string, fn func() bool, desc string) {
	code, r, ok := ui.ParseKey(name)
	switch {
	case !ok:
		log.Printf("sport: unknown key %q", name)
	case code == ui.KeyChar:
		d.BindRune(r, fn, desc)
	default:
		d.BindWithDesc(code, fn, desc)
	}
}

// isRune reports whether name is the single character r.
func isRune(name string, r rune) bool {
	code, got, ok := ui.ParseKey(name)
	return ok && code == ui.KeyChar && got == r
}
