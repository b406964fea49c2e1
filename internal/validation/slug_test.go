package validation

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugCharset = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

func TestDeriveGroupSlug(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"Simple", "Jazz Records", "jazz-records"},
		{"Punctuation", "Cats & Dogs!", "cats-dogs"},
		{"Cyrillic", "Новая группа", "novaia-gruppa"},
		{"Accented", "Café Société", "cafe-societe"},
		{"Mixed", "Go 1.25 Release Notes", "go-1-25-release-notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveGroupSlug(tt.title)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, slugCharset, got)
		})
	}
}

func TestDeriveGroupSlug_TruncatesLongTitles(t *testing.T) {
	t.Parallel()

	title := strings.Repeat("word ", 340) // 1700 characters
	got := DeriveGroupSlug(title)

	assert.LessOrEqual(t, len(got), GroupSlugMaxLen)
	assert.Regexp(t, slugCharset, got)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestDeriveGroupSlug_Deterministic(t *testing.T) {
	t.Parallel()

	title := "Ещё одна группа про Go"
	assert.Equal(t, DeriveGroupSlug(title), DeriveGroupSlug(title))
}

func TestValidateGroupSlug(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{"Valid", "jazz-records", false},
		{"Valid With Underscore", "jazz_records_2", false},
		{"Empty", "", true},
		{"Spaces", "jazz records", true},
		{"Unicode", "джаз", true},
		{"Too Long", strings.Repeat("a", GroupSlugMaxLen+1), true},
		{"Exactly Max", strings.Repeat("a", GroupSlugMaxLen), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGroupSlug(tt.slug)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
