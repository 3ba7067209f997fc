package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "Поздравляю! Теперь у тебя 3 уровень", tr.T("ru", "level.up", 3))
	assert.Equal(t, "Congratulations! You are now level 3", tr.T("en", "level.up", 3))
}

func TestTranslateFallsBackToRussian(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, tr.T("ru", "level.up", 2), tr.T("de", "level.up", 2))
	assert.Equal(t, tr.T("ru", "level.up", 2), tr.T("", "level.up", 2))
}

func TestTranslateUnknownKeyRendersKey(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "no.such.key", tr.T("ru", "no.such.key"))
}

func TestFormatNumberGroupsDigits(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "1,234,567", tr.FormatNumber("en", 1234567))
	assert.NotEqual(t, "1234567", tr.FormatNumber("ru", 1234567))
}
