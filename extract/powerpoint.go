package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// PowerPoint extracts the text of every shape with a text frame, slide by
// slide in presentation order and shape by shape in shape-collection order.
// Newlines and both half-width and full-width space characters are stripped
// so that cosmetic line breaks do not fragment contiguous text.
type PowerPoint struct{}

var (
	pptStrip     = strings.NewReplacer("\n", "", "\r", "", " ", "", "　", "")
	pptSlidePart = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)
)

type pptSlide struct {
	Shapes []pptShape `xml:"cSld>spTree>sp"`
}

type pptShape struct {
	// TextBody is nil for shapes without a text frame.
	TextBody *pptTextBody `xml:"txBody"`
}

type pptTextBody struct {
	Paragraphs []pptParagraph `xml:"p"`
}

type pptParagraph struct {
	Runs []pptRun `xml:"r"`
}

type pptRun struct {
	Text string `xml:"t"`
}

// Extract implements Extractor.
func (PowerPoint) Extract(r *bytes.Reader) (string, error) {
	zr, err := openContainer(r)
	if err != nil {
		return "", fmt.Errorf("parse pptx: %w", err)
	}

	// Slide parts carry their presentation position in the part name.
	type slidePart struct {
		num  int
		name string
	}
	var parts []slidePart
	for _, f := range zr.File {
		m := pptSlidePart.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		parts = append(parts, slidePart{num: num, name: f.Name})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].num < parts[j].num })

	var sb strings.Builder
	for _, part := range parts {
		var slide pptSlide
		if err := decodePart(zr, part.name, &slide); err != nil {
			return "", fmt.Errorf("parse pptx: %w", err)
		}
		for _, shape := range slide.Shapes {
			if shape.TextBody == nil {
				continue
			}
			for _, par := range shape.TextBody.Paragraphs {
				for _, run := range par.Runs {
					sb.WriteString(run.Text)
				}
			}
		}
	}
	return pptStrip.Replace(sb.String()), nil
}
