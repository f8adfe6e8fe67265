// Package bcd summarizes browser support for HTML entities from a
// browser-compat-data style JSON dataset.
package bcd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/hoverdoc"
)

// Ensure Service implements hoverdoc.CompatService at compile time.
var _ hoverdoc.CompatService = (*Service)(nil)

// displayNames maps dataset browser identifiers to human-readable names.
// Unknown identifiers pass through unchanged.
var displayNames = map[string]string{
	"chrome":                 "Chrome",
	"chrome_android":         "Chrome Android",
	"edge":                   "Edge",
	"firefox":                "Firefox",
	"firefox_android":        "Firefox for Android",
	"ie":                     "Internet Explorer",
	"opera":                  "Opera",
	"opera_android":          "Opera Android",
	"safari":                 "Safari",
	"safari_ios":             "Safari on iOS",
	"samsunginternet_android": "Samsung Internet",
	"webview_android":        "WebView Android",
}

// VersionValue is a browser-compat-data version field: a version string,
// a bare boolean (supported, version unknown), or null.
type VersionValue struct {
	version string
	boolVal bool
	isBool  bool
	set     bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *VersionValue) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		v.isBool = true
		v.boolVal = data[0] == 't'
		v.set = true
		return nil
	default:
		if err := json.Unmarshal(data, &v.version); err != nil {
			return fmt.Errorf("unexpected version value %s: %w", data, err)
		}
		v.set = true
		return nil
	}
}

// Concrete returns the version string and true when the value is a real
// version number. Booleans, null, and the "preview" sentinel don't
// identify a version, so they report false.
func (v VersionValue) Concrete() (string, bool) {
	if !v.set || v.isBool || v.version == "" || v.version == "preview" {
		return "", false
	}
	return v.version, true
}

// SupportStatement is a single browser support statement.
type SupportStatement struct {
	VersionAdded   VersionValue `json:"version_added"`
	VersionRemoved VersionValue `json:"version_removed"`
}

// statementList accepts the dataset's single-object or array encodings of
// a browser's support statements.
type statementList []SupportStatement

func (l *statementList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, (*[]SupportStatement)(l))
	}
	var single SupportStatement
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = statementList{single}
	return nil
}

// browserStatements pairs a browser identifier with its statements.
type browserStatements struct {
	browser    string
	statements statementList
}

// supportSet preserves the dataset's browser enumeration order, which a
// plain map would lose.
type supportSet struct {
	browsers []browserStatements
}

func (s *supportSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected support object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		browser, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected browser identifier, got %v", tok)
		}

		var statements statementList
		if err := dec.Decode(&statements); err != nil {
			return fmt.Errorf("failed to decode support for %q: %w", browser, err)
		}
		s.browsers = append(s.browsers, browserStatements{browser: browser, statements: statements})
	}

	_, err = dec.Token()
	return err
}

// compat is the __compat block of a feature.
type compat struct {
	Support supportSet `json:"support"`
}

// feature is a dataset feature: an optional __compat block plus named
// subfeatures (an element's attributes live as subfeatures of the
// element).
type feature struct {
	compat *compat
	sub    map[string]*feature
}

func (f *feature) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, value := range raw {
		if key == "__compat" {
			f.compat = &compat{}
			if err := json.Unmarshal(value, f.compat); err != nil {
				return fmt.Errorf("failed to decode __compat: %w", err)
			}
			continue
		}

		trimmed := bytes.TrimSpace(value)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			continue
		}
		var sub feature
		if err := json.Unmarshal(value, &sub); err != nil {
			return fmt.Errorf("failed to decode subfeature %q: %w", key, err)
		}
		if f.sub == nil {
			f.sub = make(map[string]*feature)
		}
		f.sub[key] = &sub
	}
	return nil
}

// dataset is the subset of the compatibility data this service consumes.
type dataset struct {
	HTML struct {
		Elements         map[string]*feature `json:"elements"`
		GlobalAttributes map[string]*feature `json:"global_attributes"`
	} `json:"html"`
}

// Service implements hoverdoc.CompatService over a dataset loaded once at
// construction.
type Service struct {
	data dataset
}

// New parses the dataset from raw JSON.
func New(raw []byte) (*Service, error) {
	s := &Service{}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, hoverdoc.Errorf(hoverdoc.EINVALID, "invalid compatibility dataset: %v", err)
	}
	return s, nil
}

// LoadFile reads and parses the dataset from a JSON file.
func LoadFile(path string) (*Service, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read compatibility dataset: %w", err)
	}
	return New(raw)
}

// SummarizeElement summarizes support for an element.
func (s *Service) SummarizeElement(name string) ([]hoverdoc.BrowserSupport, error) {
	return s.summarize(s.data.HTML.Elements[strings.ToLower(name)])
}

// SummarizeElementAttribute summarizes support for an element-specific
// attribute, recorded in the dataset as a subfeature of the element.
func (s *Service) SummarizeElementAttribute(element, name string) ([]hoverdoc.BrowserSupport, error) {
	el := s.data.HTML.Elements[strings.ToLower(element)]
	if el == nil {
		return nil, hoverdoc.Errorf(hoverdoc.ENOTFOUND, "no compatibility data for %s[%s]", element, name)
	}
	return s.summarize(el.sub[strings.ToLower(name)])
}

// SummarizeGlobalAttribute summarizes support for a global attribute.
func (s *Service) SummarizeGlobalAttribute(name string) ([]hoverdoc.BrowserSupport, error) {
	return s.summarize(s.data.HTML.GlobalAttributes[strings.ToLower(name)])
}

func (s *Service) summarize(f *feature) ([]hoverdoc.BrowserSupport, error) {
	if f == nil || f.compat == nil {
		return nil, hoverdoc.Errorf(hoverdoc.ENOTFOUND, "no compatibility data")
	}

	summary := make([]hoverdoc.BrowserSupport, 0, len(f.compat.Support.browsers))
	for _, bs := range f.compat.Support.browsers {
		if len(bs.statements) == 0 {
			continue
		}

		// TODO: a browser can record several statements (version ranges
		// with gaps); only the first is considered here.
		stmt := bs.statements[0]

		added, addedOK := stmt.VersionAdded.Concrete()
		removed, removedOK := stmt.VersionRemoved.Concrete()

		version := added
		if !addedOK {
			version = removed
		}
		if !addedOK && !removedOK {
			continue
		}

		summary = append(summary, hoverdoc.BrowserSupport{
			Browser:   displayName(bs.browser),
			Version:   version,
			Supported: addedOK,
		})
	}
	return summary, nil
}

func displayName(browser string) string {
	if name, ok := displayNames[browser]; ok {
		return name
	}
	return browser
}
