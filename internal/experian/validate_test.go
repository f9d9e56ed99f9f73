package experian

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"Profile response root", `<INProfileResponse><SCORE/></INProfileResponse>`, true},
		{"Bureau wrapper root", `<EXPERIAN><CreditScore/></EXPERIAN>`, true},
		{"Generic report root", `<CreditReport></CreditReport>`, true},
		{"Nested report root", `<Envelope><INProfileResponse/></Envelope>`, true},
		{"Unrelated XML", `<Document><Data/></Document>`, false},
		{"Not XML at all", `just some text`, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempFile(t, "report.xml", tc.content)
			valid, err := ValidateFormat(path)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, valid)
		})
	}
}

func TestValidateFormat_MissingFile(t *testing.T) {
	valid, err := ValidateFormat(filepath.Join(t.TempDir(), "nope.xml"))
	assert.False(t, valid)
	assert.Error(t, err)
}
