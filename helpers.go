package ariacheck

import (
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/errors"
	"github.com/jacoelho/ariacheck/focus"
	"github.com/jacoelho/ariacheck/internal/expect"
	"github.com/jacoelho/ariacheck/internal/linkage"
	"github.com/jacoelho/ariacheck/internal/visibility"
)

// AssertHidden checks el has the hidden attribute and a display of none.
func (c *Checker) AssertHidden(el *dom.Element) error {
	return c.check("AssertHidden", func() error { return visibility.AssertHidden(el) })
}

// AssertVisible checks el has neither the hidden attribute nor display none.
func (c *Checker) AssertVisible(el *dom.Element) error {
	return c.check("AssertVisible", func() error { return visibility.AssertVisible(el) })
}

// AssertLabelValue checks the accessible label of el.
func (c *Checker) AssertLabelValue(el *dom.Element, value string) error {
	return c.check("AssertLabelValue", func() error { return linkage.LabelValue(c.doc, el, value) })
}

// AssertDescriptionValue checks the accessible description of el.
func (c *Checker) AssertDescriptionValue(el *dom.Element, value string) error {
	return c.check("AssertDescriptionValue", func() error { return linkage.DescriptionValue(c.doc, el, value) })
}

// AssertActiveElement checks el is the focused element. Two elements with
// identical markup are treated as the same element.
func (c *Checker) AssertActiveElement(el *dom.Element) error {
	return c.check("AssertActiveElement", func() error {
		if err := expect.Present(el, "element"); err != nil {
			return err
		}
		active := c.doc.ActiveElement()
		if active.Equal(el) || active.OuterHTML() == el.OuterHTML() {
			return nil
		}
		return errors.NewViolation(errors.ErrActiveElement, "expected element to be focused").
			On(el.String()).
			Diff(el.String(), active.String())
	})
}

// AssertContainsActiveElement checks the focused element is el or inside it.
func (c *Checker) AssertContainsActiveElement(el *dom.Element) error {
	return c.check("AssertContainsActiveElement", func() error {
		if err := expect.Present(el, "element"); err != nil {
			return err
		}
		if active := c.doc.ActiveElement(); !el.Contains(active) {
			return errors.NewViolation(errors.ErrActiveElement, "expected element to contain the focused element").
				On(el.String()).
				Diff(el.String(), active.String())
		}
		return nil
	})
}

// AssertFocusable checks el is focusable in strict mode.
func (c *Checker) AssertFocusable(el *dom.Element) error {
	return c.check("AssertFocusable", func() error { return c.focusable(el, true) })
}

// AssertNotFocusable checks el is not focusable in strict mode.
func (c *Checker) AssertNotFocusable(el *dom.Element) error {
	return c.check("AssertNotFocusable", func() error { return c.focusable(el, false) })
}

func (c *Checker) focusable(el *dom.Element, want bool) error {
	if err := expect.Present(el, "element"); err != nil {
		return err
	}
	got := c.classifier.IsFocusable(el, focus.Strict)
	if got == want {
		return nil
	}
	return errors.NewViolation(errors.ErrFocusable, "unexpected focusability").
		On(el.String()).
		Diff(focusWord(want), focusWord(got))
}

func focusWord(focusable bool) string {
	if focusable {
		return "focusable"
	}
	return "not focusable"
}

// GetByText returns the first leaf element under the body whose text is
// exactly text, or nil.
func (c *Checker) GetByText(text string) *dom.Element {
	return c.doc.GetByText(text)
}
