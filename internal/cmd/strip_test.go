package cmd

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/liamg/memoryfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexHTML = `<body>
<svg viewBox="0 0 24 24" fill="none">
<path d="M0 0"/>
</svg>
<footer/>
</body>
`

func newFS(t *testing.T, name, content string) *memoryfs.FS {
	t.Helper()

	fsys := memoryfs.New()
	require.NoError(t, fsys.WriteFile(name, []byte(content), fileMode))

	return fsys
}

func readBack(t *testing.T, fsys fs.FS, name string) string {
	t.Helper()

	data, err := fs.ReadFile(fsys, name)
	require.NoError(t, err)

	return string(data)
}

func TestStripRemovesSVGBlock(t *testing.T) {
	fsys := newFS(t, "index.html", indexHTML)

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "index.html"}, &stdout, &stderr, fsys)
	require.Zero(t, code, stderr.String())

	assert.Equal(t, "<body>\n<footer/>\n</body>\n", readBack(t, fsys, "index.html"))
	assert.Contains(t, stderr.String(), "removed block L2-4 from index.html")
}

func TestStripNotFoundLeavesFileUntouched(t *testing.T) {
	fsys := newFS(t, "index.html", "<body>\nan svg mention\n</body>\n")

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "index.html"}, &stdout, &stderr, fsys)
	require.Zero(t, code, stderr.String())

	assert.Equal(t, "<body>\nan svg mention\n</body>\n", readBack(t, fsys, "index.html"))
	assert.Contains(t, stderr.String(), "block not found in index.html")
	assert.Contains(t, stdout.String(), "an svg mention")
}

func TestStripIdempotent(t *testing.T) {
	fsys := newFS(t, "index.html", indexHTML)

	var stdout, stderr bytes.Buffer

	require.Zero(t, run([]string{"strip", "-q", "index.html"}, &stdout, &stderr, fsys))

	once := readBack(t, fsys, "index.html")

	stderr.Reset()

	require.Zero(t, run([]string{"strip", "index.html"}, &stdout, &stderr, fsys))

	assert.Equal(t, once, readBack(t, fsys, "index.html"))
	assert.Contains(t, stderr.String(), "block not found")
}

func TestStripUnterminatedFails(t *testing.T) {
	content := "<body>\n<svg viewBox=\"0 0 24 24\">\nno closer\n"
	fsys := newFS(t, "index.html", content)

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "index.html"}, &stdout, &stderr, fsys)
	require.Equal(t, 1, code)

	assert.Contains(t, stderr.String(), "unterminated block")
	assert.Equal(t, content, readBack(t, fsys, "index.html"))
}

func TestStripTruncateFlag(t *testing.T) {
	fsys := newFS(t, "index.html", "<body>\n<svg viewBox=\"0 0 24 24\">\nno closer\n")

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "--truncate", "index.html"}, &stdout, &stderr, fsys)
	require.Zero(t, code, stderr.String())

	assert.Equal(t, "<body>\n", readBack(t, fsys, "index.html"))
	assert.Contains(t, stderr.String(), "removed block L2-3 from index.html")
}

func TestStripDryRun(t *testing.T) {
	fsys := newFS(t, "index.html", indexHTML)

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "--dry-run", "index.html"}, &stdout, &stderr, fsys)
	require.Zero(t, code, stderr.String())

	assert.Equal(t, indexHTML, readBack(t, fsys, "index.html"))
	assert.Contains(t, stderr.String(), "would remove block L2-4 from index.html")
}

func TestStripAllFlag(t *testing.T) {
	content := "<svg viewBox=\"0 0 24 24\">\n</svg>\nmid\n<svg viewBox=\"0 0 24 24\">\n</svg>\n"
	fsys := newFS(t, "index.html", content)

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "--all", "index.html"}, &stdout, &stderr, fsys)
	require.Zero(t, code, stderr.String())

	assert.Equal(t, "mid\n", readBack(t, fsys, "index.html"))
}

func TestStripCustomMarkers(t *testing.T) {
	fsys := newFS(t, "page.html", "a\n<nav>\nlink\n</nav>\nb\n")

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "--start", "*<nav>*", "--end", "*</nav>*", "page.html"}, &stdout, &stderr, fsys)
	require.Zero(t, code, stderr.String())

	assert.Equal(t, "a\nb\n", readBack(t, fsys, "page.html"))
}

func TestStripProfileFlag(t *testing.T) {
	fsys := newFS(t, "page.html", "a\n<nav>\nlink\n</nav>\nb\n")

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "-p", `start="*<nav>*" end="*</nav>*"`, "page.html"}, &stdout, &stderr, fsys)
	require.Zero(t, code, stderr.String())

	assert.Equal(t, "a\nb\n", readBack(t, fsys, "page.html"))
}

func TestStripMarkdownSkipsFencedCode(t *testing.T) {
	content := "# Doc\n\n<div>\n<svg viewBox=\"0 0 24 24\">\n</svg>\n</div>\n\n```html\n<svg viewBox=\"0 0 24 24\">\n</svg>\n```\n"
	fsys := newFS(t, "doc.md", content)

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "doc.md"}, &stdout, &stderr, fsys)
	require.Zero(t, code, stderr.String())

	want := "# Doc\n\n<div>\n</div>\n\n```html\n<svg viewBox=\"0 0 24 24\">\n</svg>\n```\n"
	assert.Equal(t, want, readBack(t, fsys, "doc.md"))
}

func TestStripMarkdownFencedOnly(t *testing.T) {
	content := "# Doc\n\n```html\n<svg viewBox=\"0 0 24 24\">\n</svg>\n```\n"
	fsys := newFS(t, "doc.md", content)

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "doc.md"}, &stdout, &stderr, fsys)
	require.Zero(t, code, stderr.String())

	assert.Equal(t, content, readBack(t, fsys, "doc.md"))
	assert.Contains(t, stderr.String(), "block not found in doc.md")
}

func TestStripMarkdownDisabled(t *testing.T) {
	content := "# Doc\n\n```html\n<svg viewBox=\"0 0 24 24\">\n</svg>\n```\n"
	fsys := newFS(t, "doc.md", content)

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "--markdown=false", "doc.md"}, &stdout, &stderr, fsys)
	require.Zero(t, code, stderr.String())

	assert.Equal(t, "# Doc\n\n```html\n```\n", readBack(t, fsys, "doc.md"))
	assert.Contains(t, stderr.String(), "removed block L4-5 from doc.md")
}

func TestStripExecHook(t *testing.T) {
	fsys := newFS(t, "index.html", indexHTML)

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "-q", "--exec", "echo cleaned {}", "index.html"}, &stdout, &stderr, fsys)
	require.Zero(t, code, stderr.String())

	assert.Contains(t, stdout.String(), "cleaned index.html")
}

func TestStripExecHookFailure(t *testing.T) {
	fsys := newFS(t, "index.html", indexHTML)

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "-q", "--exec", "exit 3", "index.html"}, &stdout, &stderr, fsys)
	require.Equal(t, 1, code)

	assert.Contains(t, stderr.String(), "hook exited with 3")
}

func TestStripMissingFile(t *testing.T) {
	fsys := memoryfs.New()

	var stdout, stderr bytes.Buffer

	code := run([]string{"strip", "missing.html"}, &stdout, &stderr, fsys)
	assert.Equal(t, 1, code)
}
