// Package linkage verifies id cross-references between widget elements.
package linkage

import (
	"strings"

	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/errors"
	"github.com/jacoelho/ariacheck/internal/expect"
)

// Pair checks that source's attr literally equals target's id. Both
// endpoints must exist; a missing endpoint is reported as such.
func Pair(source *dom.Element, attr string, target *dom.Element, names [2]string) error {
	if err := expect.Present(source, names[0]); err != nil {
		return err
	}
	if err := expect.Present(target, names[1]); err != nil {
		return err
	}
	if err := expect.HasAttr(target, "id"); err != nil {
		return err
	}
	return reference(source, attr, target.ID(), target.String())
}

// Bidirectional checks button aria-controls -> panel id and panel
// aria-labelledby -> button id. Each direction fails on its own.
func Bidirectional(button, panel *dom.Element, names [2]string) error {
	if err := expect.Present(button, names[0]); err != nil {
		return err
	}
	if err := expect.Present(panel, names[1]); err != nil {
		return err
	}
	if err := expect.HasAttr(panel, "id"); err != nil {
		return err
	}
	if err := expect.HasAttr(button, "id"); err != nil {
		return err
	}
	if err := reference(button, "aria-controls", panel.ID(), panel.String()); err != nil {
		return err
	}
	return reference(panel, "aria-labelledby", button.ID(), button.String())
}

// Composite checks the trigger is labelled by the label followed by itself.
func Composite(button, label *dom.Element) error {
	if err := expect.Present(button, "button"); err != nil {
		return err
	}
	if err := expect.Present(label, "label"); err != nil {
		return err
	}
	want := label.ID() + " " + button.ID()
	return reference(button, "aria-labelledby", want, label.String()+" "+button.String())
}

// Active checks the container's aria-activedescendant references item.
func Active(container, item *dom.Element, names [2]string) error {
	if err := expect.Present(container, names[0]); err != nil {
		return err
	}
	if err := expect.Present(item, names[1]); err != nil {
		return err
	}
	if err := expect.HasAttr(item, "id"); err != nil {
		return err
	}
	return reference(container, "aria-activedescendant", item.ID(), item.String())
}

// NotActive checks the container's aria-activedescendant does not reference item.
func NotActive(container, item *dom.Element, names [2]string) error {
	if err := expect.Present(container, names[0]); err != nil {
		return err
	}
	if err := expect.Present(item, names[1]); err != nil {
		return err
	}
	return expect.AttrNotEquals(container, "aria-activedescendant", item.ID())
}

// NoActive checks the container references no active item, which is the
// absence of aria-activedescendant rather than an empty value.
func NoActive(container *dom.Element, name string) error {
	if err := expect.Present(container, name); err != nil {
		return err
	}
	return expect.NoAttr(container, "aria-activedescendant")
}

// Owner checks owner's attr equals el's id after requiring el to carry one.
// Used for parts that the widget root points at, like a dialog title.
func Owner(owner *dom.Element, attr string, el *dom.Element) error {
	if err := expect.HasAttr(el, "id"); err != nil {
		return err
	}
	return reference(owner, attr, el.ID(), el.String())
}

// LabelValue checks the accessible label of el by the first applicable
// strategy: aria-labelledby, aria-label, a for= label, the element's own
// text. Only that strategy is consulted.
func LabelValue(doc *dom.Document, el *dom.Element, value string) error {
	if err := expect.Present(el, "element"); err != nil {
		return err
	}
	if ids, ok := el.Attr("aria-labelledby"); ok {
		got := joinText(doc, strings.Split(ids, " "))
		if got != value {
			return errors.NewViolation(errors.ErrLabel, "expected label from aria-labelledby").
				Attr("aria-labelledby").
				On(el.String()).
				Diff(value, got)
		}
		return nil
	}
	if el.HasAttribute("aria-label") {
		if err := expect.AttrEquals(el, "aria-label", value); err != nil {
			return relabel(err)
		}
		return nil
	}
	if id := el.ID(); id != "" {
		if labels := doc.AttrEquals("for", id); len(labels) > 0 {
			return relabel(expect.TextContains(labels[0], value))
		}
	}
	return relabel(expect.TextContains(el, value))
}

// DescriptionValue checks the text of the element aria-describedby references.
func DescriptionValue(doc *dom.Document, el *dom.Element, value string) error {
	if err := expect.Present(el, "element"); err != nil {
		return err
	}
	id, ok := el.Attr("aria-describedby")
	target := doc.ByID(id)
	if !ok || target == nil {
		return errors.NewViolation(errors.ErrDescription, "expected aria-describedby to reference an element").
			Attr("aria-describedby").
			On(el.String()).
			Diff(value, errors.Absent)
	}
	if got := target.TextContent(); got != value {
		return errors.NewViolation(errors.ErrDescription, "expected description").
			Attr("aria-describedby").
			On(el.String()).
			Diff(value, got)
	}
	return nil
}

func reference(source *dom.Element, attr, want, target string) error {
	got, ok := source.Attr(attr)
	if !ok {
		return errors.NewViolationf(errors.ErrLinkage, "expected reference to %s", target).
			Attr(attr).
			On(source.String()).
			Diff(want, errors.Absent)
	}
	if got != want {
		return errors.NewViolationf(errors.ErrLinkage, "expected reference to %s", target).
			Attr(attr).
			On(source.String()).
			Diff(want, got)
	}
	return nil
}

// joinText concatenates the text of the referenced elements in id order.
// Ids that reference nothing contribute an empty string.
func joinText(doc *dom.Document, ids []string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, doc.ByID(id).TextContent())
	}
	return strings.Join(parts, " ")
}

func relabel(err error) error {
	if v, ok := errors.AsViolation(err); ok {
		v.Code = string(errors.ErrLabel)
	}
	return err
}
