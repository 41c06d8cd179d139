package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const wordDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:r><w:t>Hello World</w:t></w:r>
      <w:r><w:t>!</w:t></w:r>
    </w:p>
    <w:p>
      <w:r><w:t>白い　犬</w:t></w:r>
    </w:p>
  </w:body>
</w:document>`

func TestWord_Extract(t *testing.T) {
	data := buildContainer(t, map[string]string{
		"word/document.xml": wordDocumentXML,
	})

	text, err := Text("docx", data)
	require.NoError(t, err)

	// Paragraphs concatenate with no separator; half-width and full-width
	// spaces are stripped.
	require.Equal(t, "HelloWorld!白い犬", text)
}

func TestWord_Extract_EmptyBody(t *testing.T) {
	data := buildContainer(t, map[string]string{
		"word/document.xml": `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body/></w:document>`,
	})

	text, err := Text("docx", data)
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestWord_Extract_NotADocx(t *testing.T) {
	_, err := Text("docx", []byte("plain bytes, no zip"))
	require.Error(t, err)
}
