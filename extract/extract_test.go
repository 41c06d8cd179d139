package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText_Plain(t *testing.T) {
	for _, ext := range []string{"txt", "html", "md", "csv"} {
		text, err := Text(ext, []byte("hello\nworld"))
		require.NoError(t, err)
		require.Equal(t, "hello\nworld", text)
	}
}

func TestText_UnknownExtension(t *testing.T) {
	text, err := Text("bin", []byte{0x00, 0x01, 0x02})
	require.NoError(t, err)
	require.Empty(t, text)

	text, err = Text("", []byte("data"))
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestLookup(t *testing.T) {
	for _, ext := range []string{"pdf", "docx", "xlsx", "xlsm", "pptx", "txt", "html", "md", "csv"} {
		_, ok := Lookup(ext)
		require.True(t, ok, "extension %q should have a rule", ext)
	}

	_, ok := Lookup("exe")
	require.False(t, ok)

	// Dispatch is on lower-cased extensions only.
	_, ok = Lookup("PDF")
	require.False(t, ok)
}

func TestExtensions(t *testing.T) {
	exts := Extensions()
	require.Len(t, exts, 9)
	require.Contains(t, exts, "xlsm")
	require.IsIncreasing(t, exts)
}

func TestSupported(t *testing.T) {
	require.True(t, Supported("docx"))
	require.False(t, Supported("zip"))
}
