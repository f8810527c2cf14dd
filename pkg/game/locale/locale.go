// Package locale installs the embedded message catalogue into gotext so that
// gotext.Get returns English text instead of message keys.
package locale

import (
	_ "embed"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain every message lives in
const Domain = "default"

//go:embed en.po
var enPo []byte

var once sync.Once

// Load parses the embedded catalogue and makes it the global gotext storage.
// It is safe to call more than once.
func Load() {
	once.Do(func() {
		po := gotext.NewPo()
		po.Parse(enPo)

		l := gotext.NewLocale("", "en")
		l.AddTranslator(Domain, po)
		gotext.SetStorage(l)
	})
}
