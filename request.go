package hoverdoc

import (
	"fmt"
	"strings"
)

// Kind identifies what a documentation request is about.
type Kind string

// Request kinds.
const (
	KindElement          Kind = "element"
	KindGlobalAttribute  Kind = "global-attribute"
	KindElementAttribute Kind = "element-attribute"
)

// Validate returns an error if the kind is not one of the known variants.
func (k Kind) Validate() error {
	switch k {
	case KindElement, KindGlobalAttribute, KindElementAttribute:
		return nil
	}
	return Errorf(EINVALID, "unknown request kind %q", string(k))
}

// DocRequest identifies an HTML entity to look up documentation for.
// It is immutable per lookup and discarded after the response.
type DocRequest struct {
	Kind Kind

	// Name is the element or attribute name as it appears in source.
	Name string

	// OwningElement is set for element attributes whose owning element is
	// known (e.g. "video" for the "autoplay" attribute). Empty otherwise.
	OwningElement string

	// Language selects the localized documentation page.
	Language Language
}

// Validate returns an error if the request contains invalid fields.
func (r *DocRequest) Validate() error {
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Name) == "" {
		return Errorf(EINVALID, "request name required")
	}
	if err := r.Language.Validate(); err != nil {
		return err
	}
	return nil
}

// CacheKey derives the cache key for the request. The kind tag and the
// separator make the key injective over the request space: a global
// attribute and an element attribute with the same textual name never
// collide, nor do attributes of different owning elements.
func (r *DocRequest) CacheKey() string {
	parts := []string{string(r.Kind), strings.ToLower(r.Name)}
	if r.Kind == KindElementAttribute {
		parts = append(parts, strings.ToLower(r.OwningElement))
	}
	parts = append(parts, string(r.Language))
	return strings.Join(parts, "|")
}

// URL returns the canonical documentation URL for the request.
func (r *DocRequest) URL() string {
	var section string
	switch r.Kind {
	case KindGlobalAttribute:
		section = "Global_attributes"
	case KindElementAttribute:
		section = "Attributes"
	default:
		section = "Element"
	}
	return fmt.Sprintf("%s/%s/docs/Web/HTML/%s/%s", Host, r.Language, section, strings.ToLower(r.Name))
}
