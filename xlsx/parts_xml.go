package xlsx

import (
	"bytes"

	"github.com/adnsv/srw/xml"
)

// xmlW is a short alias for the tag writer type, used across the XML
// emitter files so each one doesn't need its own import of srw/xml.
type xmlW = *xml.Writer

func newPartWriter() (*bytes.Buffer, *xml.Writer) {
	bb := &bytes.Buffer{}
	x := xml.NewWriter(bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()
	return bb, x
}

// writeContentTypes emits [Content_Types].xml: one <Default> per file
// extension in use, and one <Override> per part path that needs an
// explicit content type (everything but media, which Default covers).
func (w *engineWriter) writeContentTypes() error {
	bb, x := newPartWriter()

	x.OTag("+Types")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/package/2006/content-types")

	for _, ext := range sortedKeys(w.defaultContentTypes) {
		x.OTag("+Default").Attr("Extension", ext).Attr("ContentType", w.defaultContentTypes[ext])
		x.CTag()
	}
	for _, path := range sortedKeys(w.partContentTypes) {
		x.OTag("+Override").Attr("PartName", path).Attr("ContentType", w.partContentTypes[path])
		x.CTag()
	}
	x.CTag()

	return w.out.WriteBlob("[Content_Types].xml", bb.Bytes())
}

// writeCoreProperties emits docProps/core.xml with a stable placeholder
// creator and timestamp.
func (w *engineWriter) writeCoreProperties() error {
	bb, x := newPartWriter()

	x.OTag("+cp:coreProperties")
	x.Attr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties")
	x.Attr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	x.Attr("xmlns:dcterms", "http://purl.org/dc/terms/")
	x.Attr("xmlns:dcmitype", "http://purl.org/dc/dcmitype/")
	x.Attr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")

	x.OTag("dc:creator").Write(libraryName).CTag()
	x.OTag("+dcterms:created").Attr("xsi:type", "dcterms:W3CDTF").Write(stablePlaceholderTimestamp).CTag()
	x.OTag("+dcterms:modified").Attr("xsi:type", "dcterms:W3CDTF").Write(stablePlaceholderTimestamp).CTag()

	x.CTag()

	path := "docProps/core.xml"
	w.partContentTypes["/"+path] = "application/vnd.openxmlformats-package.core-properties+xml"
	w.globalRels.Add(relTypeCoreProperties, path)
	return w.out.WriteBlob(path, bb.Bytes())
}

// writeExtendedProperties emits docProps/app.xml.
func (w *engineWriter) writeExtendedProperties() error {
	bb, x := newPartWriter()

	x.OTag("+Properties")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties")
	x.Attr("xmlns:vt", "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes")

	x.OTag("Application").Write(libraryName).CTag()
	x.OTag("+HeadingPairs")
	x.OTag("+vt:vector").Attr("size", 2).Attr("baseType", "variant")
	x.OTag("+vt:variant")
	x.OTag("vt:lpstr").Write("Worksheets").CTag()
	x.CTag()
	x.OTag("+vt:variant")
	x.OTag("vt:i4").Write(len(w.wb.Sheets)).CTag()
	x.CTag()
	x.CTag() // vt:vector
	x.CTag() // HeadingPairs

	x.OTag("+TitlesOfParts")
	x.OTag("+vt:vector").Attr("size", len(w.wb.Sheets)).Attr("baseType", "lpstr")
	for _, sheet := range w.wb.Sheets {
		x.OTag("vt:lpstr").Write(sheet.Name).CTag()
	}
	x.CTag() // vt:vector
	x.CTag() // TitlesOfParts

	x.CTag()

	path := "docProps/app.xml"
	w.partContentTypes["/"+path] = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	w.globalRels.Add(relTypeExtendedProps, path)
	return w.out.WriteBlob(path, bb.Bytes())
}

// writeTheme emits xl/theme/theme1.xml: one canonical default color/font
// scheme. Custom themes are out of scope; every workbook gets this one.
func (w *engineWriter) writeTheme() error {
	bb, x := newPartWriter()

	x.OTag("+a:theme")
	x.Attr("xmlns:a", "http://schemas.openxmlformats.org/drawingml/2006/main")
	x.Attr("name", "xlsxgen default")

	x.OTag("+a:themeElements")

	x.OTag("+a:clrScheme").Attr("name", "xlsxgen")
	for _, c := range []struct{ name, val string }{
		{"dk1", "000000"}, {"lt1", "FFFFFF"}, {"dk2", "1F497D"}, {"lt2", "EEECE1"},
		{"accent1", "4F81BD"}, {"accent2", "C0504D"}, {"accent3", "9BBB59"},
		{"accent4", "8064A2"}, {"accent5", "4BACC6"}, {"accent6", "F79646"},
		{"hlink", "0000FF"}, {"folHlink", "800080"},
	} {
		x.OTag("+a:" + c.name)
		x.OTag("a:srgbClr").Attr("val", c.val).CTag()
		x.CTag()
	}
	x.CTag() // clrScheme

	x.OTag("+a:fontScheme").Attr("name", "xlsxgen")
	x.OTag("+a:majorFont")
	x.OTag("a:latin").Attr("typeface", "Calibri Light").CTag()
	x.CTag()
	x.OTag("+a:minorFont")
	x.OTag("a:latin").Attr("typeface", "Calibri").CTag()
	x.CTag()
	x.CTag() // fontScheme

	x.OTag("+a:fmtScheme").Attr("name", "xlsxgen")
	x.OTag("+a:fillStyleLst")
	x.OTag("a:solidFill").OTag("a:schemeClr").Attr("val", "phClr").CTag().CTag()
	x.CTag()
	x.OTag("+a:lnStyleLst")
	x.OTag("a:ln").OTag("a:solidFill").OTag("a:schemeClr").Attr("val", "phClr").CTag().CTag().CTag()
	x.CTag()
	x.OTag("+a:effectStyleLst")
	x.OTag("+a:effectStyle")
	x.OTag("a:effectLst").CTag()
	x.CTag()
	x.CTag()
	x.OTag("+a:bgFillStyleLst")
	x.OTag("a:solidFill").OTag("a:schemeClr").Attr("val", "phClr").CTag().CTag()
	x.CTag()
	x.CTag() // fmtScheme

	x.CTag() // themeElements

	x.CTag() // a:theme

	path := "xl/theme/theme1.xml"
	w.partContentTypes["/"+path] = "application/vnd.openxmlformats-officedocument.theme+xml"
	w.workbookRels.Add(relTypeTheme, "theme/theme1.xml")
	return w.out.WriteBlob(path, bb.Bytes())
}

const libraryName = "xlsxgen"

// stablePlaceholderTimestamp is the fixed docProps timestamp this engine
// emits: a real wall-clock timestamp would break the determinism property
// (two writes of the same workbook must be byte-for-byte identical).
const stablePlaceholderTimestamp = "2006-01-02T15:04:05Z"

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortStrings(keys)
	return keys
}
