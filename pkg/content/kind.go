package content

// Kind identifies one of the content kinds stored for the media page.
// The set is closed; table names are derived from it and never from request input.
type Kind uint8

const (
	KindIntro Kind = iota + 1
	KindIframe
	KindSection
)

// Kinds lists every valid kind.
var Kinds = []Kind{KindIntro, KindIframe, KindSection}

// Table returns the table backing the kind, or "" for an unknown kind.
func (k Kind) Table() string {
	switch k {
	case KindIntro:
		return "intros"
	case KindIframe:
		return "iframes"
	case KindSection:
		return "media_sections"
	}
	return ""
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k.Table() != ""
}

func (k Kind) String() string {
	switch k {
	case KindIntro:
		return "intro"
	case KindIframe:
		return "iframe"
	case KindSection:
		return "section"
	}
	return "unknown"
}
