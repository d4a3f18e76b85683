package dom

import "strings"

// Kind is the closed set of element kinds the binding layer distinguishes.
// Resolution from an element is total: every element maps to exactly one
// kind, and every kind maps to a controllable-property policy or to none.
type Kind int

const (
	// KindUnknown is any element with no controllable property mapping.
	KindUnknown Kind = iota
	// KindTextInput is an <input> whose type resolves to a text-like value
	// (text, email, color, date, and every other non-file/non-checked type).
	KindTextInput
	// KindCheckedInput is an <input type="checkbox"> or <input type="radio">.
	KindCheckedInput
	// KindFileInput is an <input type="file">. Never controllable: browsers
	// forbid setting a file input's value programmatically.
	KindFileInput
	// KindTextArea is a <textarea>.
	KindTextArea
	// KindSelect is a <select>.
	KindSelect
	// KindCustom is a custom element (hyphenated tag name); its policy comes
	// from the capability registry.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindTextInput:
		return "text input"
	case KindCheckedInput:
		return "checked input"
	case KindFileInput:
		return "file input"
	case KindTextArea:
		return "textarea"
	case KindSelect:
		return "select"
	case KindCustom:
		return "custom element"
	default:
		return "unknown"
	}
}

// KindOf resolves an element's kind from its tag and type attribute. The
// type attribute is read at call time: an element's effective kind is not
// final until mount, which is why compatibility checks run then.
func KindOf(el *Element) Kind {
	switch el.Tag() {
	case "input":
		t, _ := el.Attribute("type")
		switch strings.ToLower(t) {
		case "file":
			return KindFileInput
		case "checkbox", "radio":
			return KindCheckedInput
		default:
			return KindTextInput
		}
	case "textarea":
		return KindTextArea
	case "select":
		return KindSelect
	}
	// Custom element tag names are required to contain a hyphen.
	if strings.Contains(el.Tag(), "-") {
		return KindCustom
	}
	return KindUnknown
}
