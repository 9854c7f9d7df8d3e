package draft

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/clothmesh/geom"
)

// xmlLine mirrors the `<line x1="" y1="" x2="" y2=""/>` element spec.md §6
// describes. Attributes other than the four coordinates are deliberately
// not modeled here, so encoding/xml silently drops them on decode, which is
// exactly the ignore-unknown-attributes contract the spec calls for.
type xmlLine struct {
	X1 string `xml:"x1,attr"`
	Y1 string `xml:"y1,attr"`
	X2 string `xml:"x2,attr"`
	Y2 string `xml:"y2,attr"`
}

// xmlDocument is the permissive outer shape: any element may appear, only
// <line> children (at any depth) are interpreted. encoding/xml's streaming
// decoder (used in Load) is what actually achieves the "traversed but
// otherwise ignored" behavior for non-<line> elements; this struct exists
// only for Save, which always emits a flat <pattern> of <line> children.
type xmlDocument struct {
	XMLName xml.Name  `xml:"pattern"`
	Lines   []xmlLine `xml:"line"`
}

// Load reads a draft XML file. Only <line> elements are interpreted; other
// elements are structurally traversed but ignored, and only their x1/y1/x2/
// y2 attributes are read. Numeric parsing is strict: any attribute that
// does not parse as a real number is a fatal load error wrapping the
// offending value (spec.md §6, §7(a)).
//
// The returned Draft has a fresh link-id counter (its first NextLink returns
// 1): Pinned/Rigid/Link attributes are not encoded in this format (see
// xmlLine), so link ids are assigned purely by the in-memory drafting
// session, never persisted.
func Load(path string) (*Draft, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "draft: open %s", path)
	}
	defer f.Close()

	return decode(f)
}

func decode(r io.Reader) (*Draft, error) {
	dec := xml.NewDecoder(r)
	d := New()
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "draft: malformed xml")
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "line" {
			continue
		}
		var xl xmlLine
		if err := dec.DecodeElement(&xl, &start); err != nil {
			return nil, errors.Wrap(err, "draft: malformed <line> element")
		}
		line, err := parseLine(xl)
		if err != nil {
			return nil, err
		}
		// LineID must be distinct per line so mesh.seamPartner's
		// same-line exclusion (spec.md §3 invariant) can tell two samples
		// of one drafted line apart from two samples of its seam partner;
		// load order is as good a stable identity as any, since the file
		// format never persists one (Save's doc comment).
		line.LineID = uint64(len(d.Lines))
		d.Lines = append(d.Lines, line)
	}
	return d, nil
}

func parseLine(xl xmlLine) (geom.Line, error) {
	x1, err := strconv.ParseFloat(xl.X1, 64)
	if err != nil {
		return geom.Line{}, errors.Wrapf(err, "draft: invalid x1 %q", xl.X1)
	}
	y1, err := strconv.ParseFloat(xl.Y1, 64)
	if err != nil {
		return geom.Line{}, errors.Wrapf(err, "draft: invalid y1 %q", xl.Y1)
	}
	x2, err := strconv.ParseFloat(xl.X2, 64)
	if err != nil {
		return geom.Line{}, errors.Wrapf(err, "draft: invalid x2 %q", xl.X2)
	}
	y2, err := strconv.ParseFloat(xl.Y2, 64)
	if err != nil {
		return geom.Line{}, errors.Wrapf(err, "draft: invalid y2 %q", xl.Y2)
	}
	return geom.Line{
		P1: geom.Point2{X: x1, Y: y1},
		P2: geom.Point2{X: x2, Y: y2},
	}, nil
}

// Save writes d back out in the same <line x1 y1 x2 y2/> shape Load
// accepts. Only endpoint geometry round-trips; Pinned/Rigid/Link/LineID
// are not part of this file format, matching Load's "attributes other
// than the four coordinates are ignored" contract symmetrically
// (SPEC_FULL.md §4.1).
func (d *Draft) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "draft: create %s", path)
	}
	defer f.Close()

	return d.encode(f)
}

func (d *Draft) encode(w io.Writer) error {
	doc := xmlDocument{Lines: make([]xmlLine, len(d.Lines))}
	for i, l := range d.Lines {
		doc.Lines[i] = xmlLine{
			X1: strconv.FormatFloat(l.P1.X, 'g', -1, 64),
			Y1: strconv.FormatFloat(l.P1.Y, 'g', -1, 64),
			X2: strconv.FormatFloat(l.P2.X, 'g', -1, 64),
			Y2: strconv.FormatFloat(l.P2.Y, 'g', -1, 64),
		}
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "draft: encode xml")
	}
	return nil
}
