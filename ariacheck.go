// Package ariacheck verifies that headless UI widgets satisfy their ARIA
// contract at every point of their lifecycle.
//
// A test drives a widget, then asks a Checker whether the document is in a
// legal state. Each assertion returns nil or an error holding a
// *errors.Violation tagged with the assertion's name.
package ariacheck

import (
	"go.uber.org/zap"

	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/errors"
	"github.com/jacoelho/ariacheck/focus"
	"github.com/jacoelho/ariacheck/internal/contract"
	"github.com/jacoelho/ariacheck/internal/resolve"
	"github.com/jacoelho/ariacheck/internal/visibility"
)

// State is the expected lifecycle state of a widget part.
type State = visibility.State

const (
	Visible            = visibility.Visible
	InvisibleHidden    = visibility.InvisibleHidden
	InvisibleUnmounted = visibility.InvisibleUnmounted
)

// Options describes the expected container, trigger or label.
type Options = contract.Options

// ItemOptions describes the expected option or menu item.
type ItemOptions = contract.ItemOptions

// Selection is the expected selection state of an item.
type Selection = contract.Selection

const (
	SelectionUnspecified = contract.SelectionUnspecified
	Selected             = contract.Selected
	Unselected           = contract.Unselected
)

// Mode is the combobox selection mode.
type Mode = contract.Mode

const (
	ModeSingle   = contract.ModeSingle
	ModeMultiple = contract.ModeMultiple
)

// SwitchState is the checked state of a switch.
type SwitchState = contract.SwitchState

const (
	SwitchOn  = contract.SwitchOn
	SwitchOff = contract.SwitchOff
)

// SwitchOptions describes the expected switch.
type SwitchOptions = contract.SwitchOptions

// TabsOptions describes the expected tab list.
type TabsOptions = contract.TabsOptions

// Checker runs contract checks against one document. Elements are resolved
// on every call; the checker keeps no DOM state between calls.
type Checker struct {
	doc        *dom.Document
	classifier focus.Classifier
	logger     *zap.Logger
}

// New returns a checker for doc with default options.
func New(doc *dom.Document) *Checker {
	return NewWithOptions(doc, NewCheckerOptions())
}

// NewWithOptions returns a checker for doc configured by opts.
func NewWithOptions(doc *dom.Document, opts CheckerOptions) *Checker {
	resolved := opts.withDefaults()
	return &Checker{
		doc:        doc,
		classifier: resolved.classifier,
		logger:     resolved.logger,
	}
}

// Document returns the checked document.
func (c *Checker) Document() *dom.Document {
	return c.doc
}

// ObserveState reports which lifecycle state el is in.
func (c *Checker) ObserveState(el *dom.Element) State {
	return visibility.Observe(el)
}

// check runs fn and tags its violation with the public checker name.
func (c *Checker) check(name string, fn func() error) error {
	err := errors.Tag(fn(), name)
	if err == nil {
		c.logger.Debug("check passed", zap.String("checker", name))
		return nil
	}
	code := ""
	if v, ok := errors.AsViolation(err); ok {
		code = v.Code
	}
	c.logger.Debug("check failed",
		zap.String("checker", name),
		zap.String("code", code),
		zap.Error(err),
	)
	return err
}

func (c *Checker) one(part resolve.Part) *dom.Element {
	return resolve.One(c.doc, part)
}

func (c *Checker) all(part resolve.Part) []*dom.Element {
	return resolve.All(c.doc, part)
}

// ref returns refs[i] when the caller passed it, even if it is nil, and
// resolves part otherwise.
func (c *Checker) ref(refs []*dom.Element, i int, part resolve.Part) *dom.Element {
	if i < len(refs) {
		return refs[i]
	}
	return c.one(part)
}

// set returns items when the caller passed any and resolves part otherwise.
func (c *Checker) set(items []*dom.Element, part resolve.Part) []*dom.Element {
	if len(items) > 0 {
		return items
	}
	return c.all(part)
}
