package service

import (
	"reflect"

	"github.com/spec-kit/session-toolbar/internal/domain"
)

// LocaleService is the process-wide translation service.
type LocaleService interface {
	ChangeLanguage(code string)
}

// LocaleSwitcher forwards the user's language choice to the LocaleService.
type LocaleSwitcher struct {
	service LocaleService
}

// NewLocaleSwitcher accepts a nil service; selections then do nothing.
func NewLocaleSwitcher(svc LocaleService) *LocaleSwitcher {
	if isNilService(svc) {
		svc = nil
	}
	return &LocaleSwitcher{service: svc}
}

// Available reports whether a translation service is attached.
func (s *LocaleSwitcher) Available() bool {
	return s != nil && s.service != nil
}

// Select asks the translation service to switch to code.
func (s *LocaleSwitcher) Select(code string) {
	if !s.Available() {
		return
	}
	s.service.ChangeLanguage(code)
}

// Options returns the language choices offered to the user.
func (s *LocaleSwitcher) Options() []domain.LocaleOption {
	return domain.LocaleOptions()
}

func isNilService(svc LocaleService) bool {
	if svc == nil {
		return true
	}
	v := reflect.ValueOf(svc)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}
