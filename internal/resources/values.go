package resources

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// valueTypes maps a <resources> child element to its resource type. Elements
// missing from the map are ignored.
var valueTypes = map[string]string{
	"array":             "array",
	"attr":              "attr",
	"bool":              "bool",
	"color":             "color",
	"declare-styleable": "styleable",
	"dimen":             "dimen",
	"drawable":          "drawable",
	"fraction":          "fraction",
	"id":                "id",
	"integer":           "integer",
	"integer-array":     "array",
	"plurals":           "plurals",
	"string":            "string",
	"string-array":      "array",
	"style":             "style",
}

type valueEntry struct {
	typ  string
	name string
}

// parseValues returns the named entries declared directly under <resources>.
// Attributes declared inside a declare-styleable are recorded as attr items
// too, matching how the framework exposes them.
func parseValues(path string) ([]valueEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := decodeValues(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}

func decodeValues(r io.Reader) ([]valueEntry, error) {
	dec := xml.NewDecoder(r)
	var (
		entries   []valueEntry
		depth     int
		styleable bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if depth != 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return entries, nil
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			depth++
			switch {
			case depth == 1:
				if el.Name.Local != "resources" {
					return nil, fmt.Errorf("root element is <%s>, want <resources>", el.Name.Local)
				}
			case depth == 2:
				typ := valueTypes[el.Name.Local]
				if el.Name.Local == "item" {
					typ = attrValue(el, "type")
				}
				name := attrValue(el, "name")
				if typ != "" && name != "" {
					entries = append(entries, valueEntry{typ: typ, name: name})
				}
				styleable = el.Name.Local == "declare-styleable"
			case depth == 3 && styleable && el.Name.Local == "attr":
				// android:-prefixed names reference framework attrs.
				if name := attrValue(el, "name"); name != "" && !strings.Contains(name, ":") {
					entries = append(entries, valueEntry{typ: "attr", name: name})
				}
			}
		case xml.EndElement:
			depth--
		}
	}
}

func attrValue(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value
		}
	}
	return ""
}
