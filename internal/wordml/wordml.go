// Package wordml assembles a Document into a WordprocessingML (.docx) package.
package wordml

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/riverfjs/wordify-go/internal/types"
)

const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRel = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCT  = "http://schemas.openxmlformats.org/package/2006/content-types"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"

	// ContentType is the MIME type of an assembled package.
	ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	// bulletNumID 是项目符号列表使用的 w:numId
	bulletNumID = "1"
)

// Part is one XML file inside the package.
type Part struct {
	Name string
	Doc  *etree.Document
}

// Parts returns the package parts in the order they are written.
func Parts(doc types.Document, cfg *types.RenderConfig) []Part {
	if cfg == nil {
		cfg = types.DefaultRenderConfig()
	}
	return []Part{
		{Name: "[Content_Types].xml", Doc: contentTypesXML()},
		{Name: "_rels/.rels", Doc: packageRelsXML()},
		{Name: "docProps/core.xml", Doc: corePropsXML(cfg)},
		{Name: "word/_rels/document.xml.rels", Doc: documentRelsXML()},
		{Name: "word/document.xml", Doc: DocumentXML(doc)},
		{Name: "word/styles.xml", Doc: stylesXML(cfg)},
		{Name: "word/numbering.xml", Doc: numberingXML(cfg)},
	}
}

// Assemble writes doc as a .docx package to w.
func Assemble(w io.Writer, doc types.Document, cfg *types.RenderConfig) error {
	if cfg == nil {
		cfg = types.DefaultRenderConfig()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid render config: %w", err)
	}

	zw := zip.NewWriter(w)
	for _, part := range Parts(doc, cfg) {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:   part.Name,
			Method: zip.Deflate,
		})
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", part.Name, err)
		}
		if _, err := part.Doc.WriteTo(fw); err != nil {
			return fmt.Errorf("failed to write %s: %w", part.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish package: %w", err)
	}
	return nil
}

func newXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

func contentTypesXML() *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("Types")
	root.CreateAttr("xmlns", nsCT)

	defaults := [][2]string{
		{"rels", "application/vnd.openxmlformats-package.relationships+xml"},
		{"xml", "application/xml"},
	}
	for _, d := range defaults {
		el := root.CreateElement("Default")
		el.CreateAttr("Extension", d[0])
		el.CreateAttr("ContentType", d[1])
	}

	overrides := [][2]string{
		{"/word/document.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
		{"/word/styles.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
		{"/word/numbering.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"},
		{"/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml"},
	}
	for _, o := range overrides {
		el := root.CreateElement("Override")
		el.CreateAttr("PartName", o[0])
		el.CreateAttr("ContentType", o[1])
	}
	return doc
}

func relationships(rels ...[3]string) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", nsRel)
	for _, r := range rels {
		el := root.CreateElement("Relationship")
		el.CreateAttr("Id", r[0])
		el.CreateAttr("Type", r[1])
		el.CreateAttr("Target", r[2])
	}
	return doc
}

func packageRelsXML() *etree.Document {
	return relationships(
		[3]string{"rId1", relOfficeDocument, "word/document.xml"},
		[3]string{"rId2", relCoreProps, "docProps/core.xml"},
	)
}

func documentRelsXML() *etree.Document {
	return relationships(
		[3]string{"rId1", relStyles, "styles.xml"},
		[3]string{"rId2", relNumbering, "numbering.xml"},
	)
}

func corePropsXML(cfg *types.RenderConfig) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("cp:coreProperties")
	root.CreateAttr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties")
	root.CreateAttr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	if cfg.Title != "" {
		root.CreateElement("dc:title").SetText(cfg.Title)
	}
	if cfg.Author != "" {
		root.CreateElement("dc:creator").SetText(cfg.Author)
	}
	return doc
}
