package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/saaslanding/pkg/sanitizer"
)

func TestApplyAndCompose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", sanitizer.Apply("  Hello \n World ", sanitizer.Trim, sanitizer.SingleLine, sanitizer.ToLower))

	upperFirst := sanitizer.Compose(sanitizer.Trim, func(s string) string { return strings.ToUpper(s[:1]) + s[1:] })
	assert.Equal(t, "Abc", upperFirst("  abc "))
	assert.Equal(t, "x", sanitizer.Apply("x"))
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"  John.Doe@Example.COM ", "john.doe@example.com"},
		{"a\u200b@b.co", "a@b.co"},
		{"cafe\u0301@example.com", "caf\u00e9@example.com"},
		{"no-at-sign", "no-at-sign"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.in), tt.in)
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "j***@example.com", sanitizer.MaskEmail("john@example.com"))
	assert.Equal(t, "*@example.com", sanitizer.MaskEmail("j@example.com"))
	assert.Equal(t, "*@example.com", sanitizer.MaskEmail("@example.com"))
	assert.Equal(t, "***", sanitizer.MaskEmail("plain"))
	assert.Equal(t, "", sanitizer.MaskEmail("  "))
}

func TestExtractEmailDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", sanitizer.ExtractEmailDomain("a@Example.com"))
	assert.Empty(t, sanitizer.ExtractEmailDomain("plain"))
}

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab", sanitizer.RemoveControlChars("a\x00\u202eb"))
	assert.Equal(t, "a b c", sanitizer.SingleLine("a\n\tb   c"))
	assert.Equal(t, "hé", sanitizer.MaxLength("héllo", 2))
	assert.Equal(t, "hi", sanitizer.MaxLength("hi", 5))
	assert.Empty(t, sanitizer.MaxLength("hi", 0))
}
