// Package i18n provides the process-wide translation service the toolbar's
// language switch talks to.
package i18n

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/spec-kit/session-toolbar/internal/domain"
)

var codeTags = map[string]language.Tag{
	domain.LocaleChineseSimplified: language.SimplifiedChinese,
	domain.LocaleEnglish:           language.English,
}

// Translator tracks the active display language.
type Translator struct {
	mu     sync.RWMutex
	active language.Tag
	logger *zap.Logger
}

// NewTranslator starts in fallback.
func NewTranslator(fallback language.Tag, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Translator{active: fallback, logger: logger}
}

// ChangeLanguage switches the active language. Unknown codes are ignored.
func (t *Translator) ChangeLanguage(code string) {
	tag, ok := TagForCode(code)
	if !ok {
		t.logger.Debug("ignoring unknown locale code", zap.String("code", code))
		return
	}
	t.mu.Lock()
	t.active = tag
	t.mu.Unlock()
}

// Language returns the active language.
func (t *Translator) Language() language.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active
}

// TagForCode resolves a switcher code to its BCP 47 tag.
func TagForCode(code string) (language.Tag, bool) {
	tag, ok := codeTags[code]
	return tag, ok
}
