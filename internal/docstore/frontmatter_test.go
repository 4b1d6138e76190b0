package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		fm      string
		body    string
		hasFM   bool
		wantErr bool
	}{
		{"none", "# Title\n", "", "# Title\n", false, false},
		{"simple", "---\ntitle: A\n---\nbody\n", "title: A\n", "body\n", true, false},
		{"empty", "---\n---\nbody\n", "", "body\n", true, false},
		{"crlf", "---\r\ntitle: A\r\n---\r\nbody\r\n", "title: A\r\n", "body\r\n", true, false},
		{"no trailing newline", "---\ntitle: A\n---", "title: A", "", true, false},
		{"unclosed", "---\ntitle: A\n", "", "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := splitFrontmatter([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hasFM, fm != nil)
			assert.Equal(t, tt.fm, string(fm))
			assert.Equal(t, tt.body, string(body))
		})
	}
}

func TestParseFrontmatter(t *testing.T) {
	fm, err := parseFrontmatter([]byte("id: intro\nsidebar_position: 3\nsidebar_label: Start\n"))
	require.NoError(t, err)
	assert.Equal(t, "intro", fm.ID)
	assert.Equal(t, "Start", fm.SidebarLabel)
	require.NotNil(t, fm.SidebarPosition)
	assert.InDelta(t, 3.0, *fm.SidebarPosition, 0)

	fm, err = parseFrontmatter(nil)
	require.NoError(t, err)
	assert.Nil(t, fm.SidebarPosition)

	_, err = parseFrontmatter([]byte("title: [unclosed"))
	assert.Error(t, err)
}

func TestFirstHeading(t *testing.T) {
	assert.Equal(t, "Hello World", firstHeading([]byte("intro\n\n# Hello World\n\n# Second\n")))
	assert.Equal(t, "Use duckdb now", firstHeading([]byte("# Use `duckdb` now\n")))
	assert.Equal(t, "", firstHeading([]byte("## Only level two\n")))
}
