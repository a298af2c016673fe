package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for the identifier sanitizer:
// - Digit-leading identifiers get the configured letter prefix
// - Valid identifiers pass through unchanged
// - Engine-core class names are never rewritten
// - A/U-prefixed generated class names lose prefix and _C suffix
// - Other class names pass through unchanged
// - Field name cleanup strips GUID suffixes, then numeric suffixes

func newTestSanitizer() *Sanitizer {
	return NewSanitizer("C", []string{"UObject", "AActor", "UActorComponent"})
}

func TestSanitizer_Identifier(t *testing.T) {
	t.Parallel()
	s := newTestSanitizer()

	assert.Equal(t, "C3DWidget", s.Identifier("3DWidget"))
	assert.Equal(t, "Health", s.Identifier("Health"))
	assert.Equal(t, "", s.Identifier(""))
}

func TestSanitizer_Identifier_NeverStartsWithDigit(t *testing.T) {
	t.Parallel()
	s := newTestSanitizer()

	for _, name := range []string{"0", "9Lives", "42_Foo", "Already", "_Under"} {
		got := s.Identifier(name)
		if got != "" {
			assert.False(t, got[0] >= '0' && got[0] <= '9', "identifier %q starts with a digit", got)
		}
	}
}

func TestSanitizer_ClassName(t *testing.T) {
	t.Parallel()
	s := newTestSanitizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"core object untouched", "UObject*", "UObject*"},
		{"core actor untouched", "AActor", "AActor"},
		{"core component untouched", "UActorComponentRef", "UActorComponentRef"},
		{"actor convention stripped", "AMyDoor_C", "MyDoor"},
		{"object convention stripped", "UMyItem_C", "MyItem"},
		{"other prefix kept", "FMyStruct_C", "FMyStruct_C"},
		{"digit gets prefix", "3DWidget", "C3DWidget"},
		{"plain name unchanged", "Harvestable", "Harvestable"},
		{"empty unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ClassName(tt.in))
		})
	}
}

func TestCleanFieldName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"guid suffix stripped", "TargetActor_2_1A2B3C4D5E6F7890ABCDEF1234567890", "TargetActor"},
		{"numeric suffix stripped", "Health_12", "Health"},
		{"plain name unchanged", "Health", "Health"},
		{"short hex not a guid", "Value_1_ABCD", "Value_1_ABCD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanFieldName(tt.in))
		})
	}
}
