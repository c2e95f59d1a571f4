// Package attrenum extracts enum and flag values from the framework's
// attrs.xml so the native engine can resolve symbolic attribute values such as
// android:orientation="vertical".
package attrenum

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Map is attribute name → value name → integer value.
type Map map[string]map[string]int32

// Load parses the attribute definition file at path.
func Load(path string) (Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open attrs %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse attrs %s: %w", path, err)
	}
	return m, nil
}

// Parse reads attrs.xml content. Every <enum> and <flag> element is recorded
// under the nearest enclosing <attr>; one outside any <attr> is an error.
func Parse(r io.Reader) (Map, error) {
	dec := xml.NewDecoder(r)
	m := make(Map)
	var attr string

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "attr":
				attr = attrValue(el, "name")
			case "enum", "flag":
				name := attrValue(el, "name")
				if attr == "" {
					return nil, fmt.Errorf("%s %q outside of an attr", el.Name.Local, name)
				}
				v, err := decodeValue(attrValue(el, "value"))
				if err != nil {
					return nil, fmt.Errorf("attr %s %s %q: %w", attr, el.Name.Local, name, err)
				}
				if m[attr] == nil {
					m[attr] = make(map[string]int32)
				}
				m[attr][name] = v
			}
		case xml.EndElement:
			if el.Name.Local == "attr" {
				attr = ""
			}
		}
	}
}

func attrValue(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// decodeValue accepts decimal, 0x/0X/# hexadecimal and 0-prefixed octal.
// Values are parsed as 64-bit and narrowed, so unsigned flag masks such as
// 0xffffffff wrap to their 32-bit two's complement.
func decodeValue(s string) (int32, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		s = "0x" + rest
	}

	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return int32(v), nil //nolint:gosec // narrowing is the documented behavior
}
