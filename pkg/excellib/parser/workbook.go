package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/CWK-Elocity/excel-lib/pkg/excellib/models"
)

// workbookManifest is the archive entry every xlsx container must have.
const workbookManifest = "xl/workbook.xml"

// mediaDir holds embedded media files inside the archive.
const mediaDir = "xl/media/"

// InspectContainer validates the raw workbook bytes as an xlsx archive
// and reports everything that lives outside the cell grid: pictures
// (anchored and floating), charts, and media archive entries. The
// findings are advisory; only an unreadable archive or a missing
// workbook manifest is an error.
func InspectContainer(data []byte, scanMedia bool) (*models.WorkbookReport, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a readable archive", ErrInvalidContainer)
	}
	manifest, err := readZipFile(r, workbookManifest)
	if err != nil || manifest == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidContainer, workbookManifest)
	}

	sheets := parseWorkbookSheets(manifest)
	report := &models.WorkbookReport{WorksheetCount: len(sheets)}

	var sheetFiles map[string]string
	if relsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels"); err == nil && relsXML != nil {
		sheetFiles = parseWorkbookRels(relsXML, sheets)
	}

	for _, sheet := range sheets {
		sheetPath, ok := sheetFiles[sheet.name]
		if !ok {
			continue
		}
		drawingPath := sheetDrawingPath(r, sheetPath)
		if drawingPath == "" {
			continue
		}
		drawingXML, err := readZipFile(r, drawingPath)
		if err != nil || drawingXML == nil {
			continue
		}
		for _, obj := range parseDrawingObjects(drawingXML) {
			report.NonCellObjects = append(report.NonCellObjects, obj.notice(sheet.name))
		}
	}

	if scanMedia {
		for _, f := range r.File {
			if strings.HasPrefix(f.Name, mediaDir) {
				report.NonCellObjects = append(report.NonCellObjects, fmt.Sprintf("Image found: %s", f.Name))
			}
		}
	}

	return report, nil
}

// sheetInfo pairs a sheet name with its workbook relationship id.
type sheetInfo struct {
	rID  string
	name string
}

// parseWorkbookSheets reads the sheet list from xl/workbook.xml in
// workbook order.
func parseWorkbookSheets(data []byte) []sheetInfo {
	var sheets []sheetInfo
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var info sheetInfo
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					info.name = attr.Value
				case "id":
					info.rID = attr.Value
				}
			}
			if info.name != "" && info.rID != "" {
				sheets = append(sheets, info)
			}
		}
	}

	return sheets
}

// parseWorkbookRels maps sheet names to their worksheet file paths via
// xl/_rels/workbook.xml.rels.
func parseWorkbookRels(data []byte, sheets []sheetInfo) map[string]string {
	byRID := make(map[string]string, len(sheets))
	for _, s := range sheets {
		byRID[s.rID] = s.name
	}

	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if name, ok := byRID[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[name] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}

// sheetDrawingPath resolves a worksheet's drawing file through the
// sheet's own relationship part, or "" when the sheet has no drawing.
func sheetDrawingPath(r *zip.Reader, sheetPath string) string {
	relsPath := strings.Replace(sheetPath, "worksheets/", "worksheets/_rels/", 1)
	relsPath = strings.Replace(relsPath, ".xml", ".xml.rels", 1)

	relsXML, err := readZipFile(r, relsPath)
	if err != nil || relsXML == nil {
		return ""
	}

	decoder := xml.NewDecoder(bytes.NewReader(relsXML))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var relType, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Type":
					relType = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if strings.Contains(strings.ToLower(relType), "drawing") {
				return resolveRelativePath(target, "xl/drawings")
			}
		}
	}

	return ""
}

// drawingObject is a picture or chart found in a sheet's drawing part.
type drawingObject struct {
	isChart  bool
	anchored bool
	col, row int // 0-based anchor cell, valid when anchored
}

// notice renders the object as a human-readable advisory line.
func (o drawingObject) notice(sheetName string) string {
	if o.isChart {
		return fmt.Sprintf("Chart found in sheet '%s'.", sheetName)
	}
	if !o.anchored {
		return fmt.Sprintf("Image not anchored to any cell in sheet '%s'.", sheetName)
	}
	ref, err := excelize.CoordinatesToCellName(o.col+1, o.row+1)
	if err != nil {
		ref = fmt.Sprintf("(%d,%d)", o.col+1, o.row+1)
	}
	return fmt.Sprintf("Image anchored at cell %s in sheet '%s'.", ref, sheetName)
}

// parseDrawingObjects walks a drawing XML part and returns every
// picture and chart it anchors.
func parseDrawingObjects(data []byte) []drawingObject {
	var objects []drawingObject

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "twoCellAnchor", "oneCellAnchor":
				objects = append(objects, parseAnchorObjects(decoder, true)...)
			case "absoluteAnchor":
				objects = append(objects, parseAnchorObjects(decoder, false)...)
			}
		}
	}

	return objects
}

// parseAnchorObjects consumes one anchor element and reports the
// pictures and charts inside it, with the anchor cell when one exists.
func parseAnchorObjects(decoder *xml.Decoder, anchored bool) []drawingObject {
	var objects []drawingObject
	col, row := 0, 0
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "from":
				col, row = parseAnchorCell(decoder)
				depth--
			case "pic":
				objects = append(objects, drawingObject{anchored: anchored, col: col, row: row})
			case "graphicFrame":
				objects = append(objects, drawingObject{isChart: true, anchored: anchored, col: col, row: row})
			}
		case xml.EndElement:
			depth--
		}
	}

	return objects
}

// parseAnchorCell reads the col and row children of a from element.
func parseAnchorCell(decoder *xml.Decoder) (col, row int) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "col":
				col = readElementInt(decoder)
				depth--
			case "row":
				row = readElementInt(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return col, row
}

// readElementInt reads an element's character data as an integer.
func readElementInt(decoder *xml.Decoder) int {
	text, _ := readElementText(decoder)
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return n
}

// readElementText reads character data until the current element
// closes.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

// resolveRelativePath resolves an OOXML relationship target against
// its base directory inside the archive.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return baseDir + target
	}
	return baseDir + "/" + target
}

// readZipFile returns the contents of a named archive entry, or nil
// when the entry does not exist.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}
