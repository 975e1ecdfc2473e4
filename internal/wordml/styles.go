package wordml

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/riverfjs/wordify-go/internal/types"
)

func stylesXML(cfg *types.RenderConfig) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("w:styles")
	root.CreateAttr("xmlns:w", nsW)

	rPrDefault := root.CreateElement("w:docDefaults").
		CreateElement("w:rPrDefault").
		CreateElement("w:rPr")
	fonts := rPrDefault.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", cfg.FontFamily)
	fonts.CreateAttr("w:hAnsi", cfg.FontFamily)
	fonts.CreateAttr("w:cs", cfg.FontFamily)
	rPrDefault.CreateElement("w:sz").CreateAttr("w:val", strconv.Itoa(cfg.FontSize))

	normal := paragraphStyle(root, "Normal", "Normal")
	normal.CreateAttr("w:default", "1")

	for level := 1; level <= 3; level++ {
		id := headingStyles[level]
		st := paragraphStyle(root, id, "heading "+strconv.Itoa(level))
		st.CreateElement("w:basedOn").CreateAttr("w:val", "Normal")
		st.CreateElement("w:next").CreateAttr("w:val", "Normal")
		st.CreateElement("w:qFormat")
		pPr := st.CreateElement("w:pPr")
		pPr.CreateElement("w:keepNext")
		spacing := pPr.CreateElement("w:spacing")
		spacing.CreateAttr("w:before", "240")
		spacing.CreateAttr("w:after", "120")
		pPr.CreateElement("w:outlineLvl").CreateAttr("w:val", strconv.Itoa(level-1))
		rPr := st.CreateElement("w:rPr")
		rPr.CreateElement("w:b")
		rPr.CreateElement("w:sz").CreateAttr("w:val", strconv.Itoa(cfg.HeadingSize(level)))
	}

	list := paragraphStyle(root, "ListParagraph", "List Paragraph")
	list.CreateElement("w:basedOn").CreateAttr("w:val", "Normal")
	list.CreateElement("w:pPr").CreateElement("w:ind").CreateAttr("w:left", "720")

	return doc
}

func paragraphStyle(root *etree.Element, id, name string) *etree.Element {
	st := root.CreateElement("w:style")
	st.CreateAttr("w:type", "paragraph")
	st.CreateAttr("w:styleId", id)
	st.CreateElement("w:name").CreateAttr("w:val", name)
	return st
}

// numberingXML 定义唯一的项目符号列表，numId 为 bulletNumID
func numberingXML(cfg *types.RenderConfig) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("w:numbering")
	root.CreateAttr("xmlns:w", nsW)

	abstract := root.CreateElement("w:abstractNum")
	abstract.CreateAttr("w:abstractNumId", "0")
	lvl := abstract.CreateElement("w:lvl")
	lvl.CreateAttr("w:ilvl", "0")
	lvl.CreateElement("w:start").CreateAttr("w:val", "1")
	lvl.CreateElement("w:numFmt").CreateAttr("w:val", "bullet")
	lvl.CreateElement("w:lvlText").CreateAttr("w:val", cfg.BulletSymbol)
	lvl.CreateElement("w:lvlJc").CreateAttr("w:val", "left")
	ind := lvl.CreateElement("w:pPr").CreateElement("w:ind")
	ind.CreateAttr("w:left", "720")
	ind.CreateAttr("w:hanging", "360")

	num := root.CreateElement("w:num")
	num.CreateAttr("w:numId", bulletNumID)
	num.CreateElement("w:abstractNumId").CreateAttr("w:val", "0")
	return doc
}
