package molecule_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/pharmyrus/internal/domain/molecule"
)

func TestMatchesDevCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"ODM-201", true},
		{"odm-201", true},
		{"BAY1841788", true},
		{"MK-7264A", true},
		{"AB-123", true},
		{"A-1234", false},       // only one letter
		{"ABCDEF-123", false},   // six letters
		{"ODM-12", false},       // only two digits
		{"darolutamide", false},
		{"1297538-32-9", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, molecule.MatchesDevCode(tc.in), tc.in)
	}
}

func TestMatchesRegistryNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, molecule.MatchesRegistryNumber("1297538-32-9"))
	assert.True(t, molecule.MatchesRegistryNumber("50-78-2"))
	assert.False(t, molecule.MatchesRegistryNumber("1297538-32"))
	assert.False(t, molecule.MatchesRegistryNumber("ODM-201"))
}

func TestNewProfile_ClassifiesDarolutamideSynonyms(t *testing.T) {
	t.Parallel()

	raw := []string{
		"darolutamide",
		"ODM-201",
		"BAY-1841788",
		"1297538-32-9",
		"Nubeqa",
		"xx", // too short to keep as a synonym
	}

	p := molecule.NewProfile("darolutamide", "Nubeqa", raw)

	assert.Equal(t, "darolutamide", p.Name)
	assert.Equal(t, []string{"ODM-201", "BAY-1841788"}, p.DevCodes)
	assert.Equal(t, "1297538-32-9", p.RegistryNumber)
	assert.Contains(t, p.Synonyms, "Nubeqa")
	assert.Contains(t, p.Synonyms, "darolutamide")
	assert.NotContains(t, p.Synonyms, "xx")
}

func TestNewProfile_FirstRegistryNumberWins(t *testing.T) {
	t.Parallel()

	p := molecule.NewProfile("aspirin", "", []string{"50-78-2", "11126-35-5"})
	assert.Equal(t, "50-78-2", p.RegistryNumber)
}

func TestNewProfile_DevCodesDedupedCaseInsensitively(t *testing.T) {
	t.Parallel()

	p := molecule.NewProfile("x", "", []string{"ODM-201", "odm-201", "Odm-201"})
	assert.Equal(t, []string{"ODM-201"}, p.DevCodes)
}

func TestNewProfile_DevCodeCap(t *testing.T) {
	t.Parallel()

	raw := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		raw = append(raw, fmt.Sprintf("AB-%03d", i+100))
	}

	p := molecule.NewProfile("x", "", raw)
	assert.Len(t, p.DevCodes, 25)
}

func TestNewProfile_ScanBound(t *testing.T) {
	t.Parallel()

	raw := make([]string, 160)
	for i := range raw {
		raw[i] = strings.Repeat("a", 10)
	}
	// An entry past the 150-entry scan window must be ignored.
	raw[155] = "ZZZ-9999"

	p := molecule.NewProfile("x", "", raw)
	assert.Empty(t, p.DevCodes)
	assert.Len(t, p.Synonyms, 50)
}

func TestNewProfile_EmptyInput(t *testing.T) {
	t.Parallel()

	p := molecule.NewProfile("darolutamide", "", nil)
	assert.Equal(t, "darolutamide", p.Name)
	assert.Empty(t, p.DevCodes)
	assert.Empty(t, p.Synonyms)
	assert.Empty(t, p.RegistryNumber)
}
