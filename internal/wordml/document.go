package wordml

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/riverfjs/wordify-go/internal/types"
)

// headingStyles 标题级别到段落样式 ID 的映射
var headingStyles = map[int]string{
	1: "Heading1",
	2: "Heading2",
	3: "Heading3",
}

// DocumentXML renders the body part (word/document.xml).
func DocumentXML(doc types.Document) *etree.Document {
	x := newXMLDocument()
	root := x.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	body := root.CreateElement("w:body")

	for _, b := range doc {
		appendBlock(body, b)
	}

	sect := body.CreateElement("w:sectPr")
	pgSz := sect.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", "12240")
	pgSz.CreateAttr("w:h", "15840")
	pgMar := sect.CreateElement("w:pgMar")
	for _, side := range []string{"w:top", "w:right", "w:bottom", "w:left"} {
		pgMar.CreateAttr(side, "1440")
	}
	return x
}

func appendBlock(body *etree.Element, b types.Block) {
	p := body.CreateElement("w:p")
	switch v := b.(type) {
	case types.Heading:
		style, ok := headingStyles[v.Level]
		if !ok {
			style = "Heading1"
		}
		setParagraphStyle(p, style)
	case types.ListItem:
		pPr := setParagraphStyle(p, "ListParagraph")
		numPr := pPr.CreateElement("w:numPr")
		numPr.CreateElement("w:ilvl").CreateAttr("w:val", strconv.Itoa(v.IndentLevel))
		numPr.CreateElement("w:numId").CreateAttr("w:val", bulletNumID)
	}

	for _, r := range b.BlockRuns() {
		appendRun(p, r)
	}
}

func setParagraphStyle(p *etree.Element, style string) *etree.Element {
	pPr := p.CreateElement("w:pPr")
	pPr.CreateElement("w:pStyle").CreateAttr("w:val", style)
	return pPr
}

// appendRun 写入一个 w:r；文本中的换行转为 w:br
func appendRun(p *etree.Element, r types.Run) {
	if r.Text == "" {
		return
	}
	wr := p.CreateElement("w:r")
	if !r.Style.IsZero() {
		rPr := wr.CreateElement("w:rPr")
		if r.Style.Bold {
			rPr.CreateElement("w:b")
		}
		if r.Style.Italic {
			rPr.CreateElement("w:i")
		}
		if r.Style.Color != "" {
			rPr.CreateElement("w:color").CreateAttr("w:val", strings.ToUpper(r.Style.Color))
		}
	}

	for i, line := range strings.Split(r.Text, "\n") {
		if i > 0 {
			wr.CreateElement("w:br")
		}
		if line == "" {
			continue
		}
		t := wr.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(line)
	}
}
