// Package focus classifies elements as keyboard focusable.
package focus

import (
	"golang.org/x/net/html/atom"

	"github.com/jacoelho/ariacheck/dom"
)

// Mode selects how focusability is decided.
type Mode int

const (
	// Strict requires the element itself to be focusable.
	Strict Mode = iota
	// Loose accepts an element inside a focusable ancestor.
	Loose
)

// Classifier reports whether an element is focusable under a mode.
type Classifier interface {
	IsFocusable(el *dom.Element, mode Mode) bool
}

// Default is the built-in classifier.
type Default struct{}

// IsFocusable implements Classifier.
func (Default) IsFocusable(el *dom.Element, mode Mode) bool {
	switch mode {
	case Strict:
		return matches(el)
	case Loose:
		for cur := el; cur != nil; cur = cur.Parent() {
			if matches(cur) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func matches(el *dom.Element) bool {
	if el == nil {
		return false
	}
	if el.Attribute("tabindex") == "-1" {
		return false
	}
	if el.Attribute("contenteditable") == "true" || el.HasAttribute("tabindex") {
		return true
	}
	switch {
	case el.IsTag(atom.A), el.IsTag(atom.Area):
		return el.HasAttribute("href")
	case el.IsTag(atom.Iframe):
		return true
	case el.IsTag(atom.Button), el.IsTag(atom.Input), el.IsTag(atom.Select), el.IsTag(atom.Textarea):
		return !el.Disabled()
	}
	return false
}
