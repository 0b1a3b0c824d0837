package xlsx

import "strings"

// FontWeight is the cell font weight.
type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

// FontStyle is the cell font slant.
type FontStyle string

const (
	StyleNormal FontStyle = "normal"
	StyleItalic FontStyle = "italic"
)

// TextDecoration is the cell text decoration (underline/strikethrough).
type TextDecoration string

const (
	DecorationNone          TextDecoration = ""
	DecorationUnderline     TextDecoration = "underline"
	DecorationDoubleUnderline TextDecoration = "double-underline"
	DecorationStrikethrough TextDecoration = "strikethrough"
)

// HorizontalAlignment is the cell horizontal alignment, per ECMA-376
// ST_HorizontalAlignment.
type HorizontalAlignment string

const (
	HAlignGeneral HorizontalAlignment = "general"
	HAlignLeft    HorizontalAlignment = "left"
	HAlignCenter  HorizontalAlignment = "center"
	HAlignRight   HorizontalAlignment = "right"
	HAlignFill    HorizontalAlignment = "fill"
	HAlignJustify HorizontalAlignment = "justify"
)

// VerticalAlignment is the cell vertical alignment, per ECMA-376
// ST_VerticalAlignment.
type VerticalAlignment string

const (
	VAlignTop      VerticalAlignment = "top"
	VAlignCenter   VerticalAlignment = "center"
	VAlignBottom   VerticalAlignment = "bottom"
	VAlignJustify  VerticalAlignment = "justify"
)

// BorderStyle is a single border side's line style.
type BorderStyle string

const (
	BorderNone   BorderStyle = ""
	BorderThin   BorderStyle = "thin"
	BorderMedium BorderStyle = "medium"
	BorderThick  BorderStyle = "thick"
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
	BorderDouble BorderStyle = "double"
)

// NumberFormatPreset is one of the built-in spreadsheet number formats,
// reserved to numFmtId values below 164.
type NumberFormatPreset int

// Presets mirror the ECMA-376 built-in number format IDs actually exercised
// by this engine; General (0) is always available and need not be set
// explicitly.
const (
	NumFmtGeneral    NumberFormatPreset = 0
	NumFmtInteger    NumberFormatPreset = 1
	NumFmtTwoDecimal NumberFormatPreset = 2
	NumFmtPercent    NumberFormatPreset = 9
	NumFmtDate       NumberFormatPreset = 14
	NumFmtDateTime   NumberFormatPreset = 22
)

var presetFormatCodes = map[NumberFormatPreset]string{
	NumFmtGeneral:    "General",
	NumFmtInteger:    "0",
	NumFmtTwoDecimal: "0.00",
	NumFmtPercent:    "0%",
	NumFmtDate:       "m/d/yyyy",
	NumFmtDateTime:   "m/d/yyyy h:mm",
}

// NumberFormat is either a built-in preset or a custom format-code string.
// At most one of the two is meaningful; CustomCode takes precedence when
// non-empty.
type NumberFormat struct {
	Preset     NumberFormatPreset
	CustomCode string
}

// Code returns the effective number-format code string for this
// NumberFormat: the custom pattern if set, otherwise the preset's raw
// value.
func (f NumberFormat) Code() string {
	if f.CustomCode != "" {
		return f.CustomCode
	}
	if code, ok := presetFormatCodes[f.Preset]; ok {
		return code
	}
	return "General"
}

func (f NumberFormat) isSet() bool {
	return f.CustomCode != "" || f.Preset != NumFmtGeneral
}

// CellFormat is a per-cell formatting record. Every field is optional (the
// zero value means "unset"); dedup equality is structural over all fields.
type CellFormat struct {
	FontName       string
	FontSize       float64
	Weight         FontWeight
	Style          FontStyle
	Decoration     TextDecoration
	FontColor      string // 6-hex-digit RGB, no leading "#"
	BackgroundColor string // 6-hex-digit RGB, no leading "#"

	HAlign     HorizontalAlignment
	VAlign     VerticalAlignment
	WrapText   bool
	Rotation   int // 0-180

	NumberFormat NumberFormat

	BorderTop    BorderStyle
	BorderBottom BorderStyle
	BorderLeft   BorderStyle
	BorderRight  BorderStyle
	BorderColor  string
}

// IsZero reports whether f has no fields set at all (the default format).
func (f *CellFormat) IsZero() bool {
	if f == nil {
		return true
	}
	return *f == CellFormat{}
}

func (f *CellFormat) hasFont() bool {
	return f.FontName != "" || f.FontSize != 0 || f.Weight == WeightBold ||
		f.Style == StyleItalic || f.Decoration != DecorationNone || f.FontColor != ""
}

func (f *CellFormat) hasAlignment() bool {
	return f.HAlign != "" || f.VAlign != "" || f.WrapText || f.Rotation != 0
}

// dedupKey produces the canonical concatenation of every field (with nil
// sentinels for unset) used to detect structural equality between two
// formats for the style table.
func (f *CellFormat) dedupKey() string {
	if f == nil {
		return ""
	}
	var b strings.Builder
	sep := func() { b.WriteByte('\x1f') }
	b.WriteString(f.FontName)
	sep()
	writeFloat(&b, f.FontSize)
	sep()
	b.WriteString(string(f.Weight))
	sep()
	b.WriteString(string(f.Style))
	sep()
	b.WriteString(string(f.Decoration))
	sep()
	b.WriteString(f.FontColor)
	sep()
	b.WriteString(f.BackgroundColor)
	sep()
	b.WriteString(string(f.HAlign))
	sep()
	b.WriteString(string(f.VAlign))
	sep()
	if f.WrapText {
		b.WriteByte('1')
	}
	sep()
	writeInt(&b, f.Rotation)
	sep()
	writeInt(&b, int(f.NumberFormat.Preset))
	sep()
	b.WriteString(f.NumberFormat.CustomCode)
	sep()
	b.WriteString(string(f.BorderTop))
	sep()
	b.WriteString(string(f.BorderBottom))
	sep()
	b.WriteString(string(f.BorderLeft))
	sep()
	b.WriteString(string(f.BorderRight))
	sep()
	b.WriteString(f.BorderColor)
	return b.String()
}

func writeFloat(b *strings.Builder, v float64) {
	b.WriteString(formatFloatCompact(v))
}

func writeInt(b *strings.Builder, v int) {
	b.WriteString(formatIntCompact(v))
}
