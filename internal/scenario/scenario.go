// Package scenario runs declarative lists of contract checks against one
// document.
package scenario

import (
	"fmt"
	"os"
	"slices"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/jacoelho/ariacheck"
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/errors"
)

// Scenario is a named, ordered list of checks.
type Scenario struct {
	Name   string  `koanf:"name"`
	Checks []Check `koanf:"checks"`
}

// Check names one public checker and the options it runs with.
type Check struct {
	Name        string            `koanf:"name"`
	Check       string            `koanf:"check"`
	State       string            `koanf:"state"`
	Text        string            `koanf:"text"`
	Tag         string            `koanf:"tag"`
	Attributes  map[string]string `koanf:"attributes"`
	Orientation string            `koanf:"orientation"`
	Mode        string            `koanf:"mode"`
	Selected    *bool             `koanf:"selected"`
	Active      int               `koanf:"active"`
	Label       string            `koanf:"label"`
	Description string            `koanf:"description"`
	// Item is an XPath selecting the option, menu item or element under test.
	Item string `koanf:"item"`
	// Targets are XPaths replacing resolver lookups, in argument order.
	Targets []string `koanf:"targets"`
}

// DisplayName returns the check name, falling back to the checker name.
func (c Check) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Check
}

// Load reads and parses the scenario file at path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML scenario.
func Parse(data []byte) (Scenario, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	var sc Scenario
	if err := k.UnmarshalWithConf("", &sc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if len(sc.Checks) == 0 {
		return Scenario{}, fmt.Errorf("scenario %q has no checks", sc.Name)
	}
	return sc, nil
}

// Result is the outcome of one check.
type Result struct {
	Name  string
	Check string
	Err   error
}

// Passed reports whether the check held.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Report holds every result of a scenario run, in check order.
type Report struct {
	Name    string
	Results []Result
}

// Failed returns the number of failed checks.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

// Err returns nil when every check passed and an errors.ViolationList otherwise.
func (r Report) Err() error {
	var list errors.ViolationList
	for _, res := range r.Results {
		if res.Err == nil {
			continue
		}
		vs, ok := errors.AsViolations(res.Err)
		if !ok {
			v := errors.NewViolation(errors.ErrScenario, res.Err.Error())
			v.Checker = res.Name
			vs = []errors.Violation{*v}
		}
		list = append(list, vs...)
	}
	if len(list) == 0 {
		return nil
	}
	return list
}

// Run executes every check of sc against the checker's document. A failing
// check never stops the run.
func Run(c *ariacheck.Checker, sc Scenario) Report {
	report := Report{Name: sc.Name, Results: make([]Result, 0, len(sc.Checks))}
	for _, check := range sc.Checks {
		report.Results = append(report.Results, Result{
			Name:  check.DisplayName(),
			Check: check.Check,
			Err:   RunCheck(c, check),
		})
	}
	return report
}

// RunCheck executes a single check. Malformed checks fail with
// errors.ErrScenario instead of reaching the checker.
func RunCheck(c *ariacheck.Checker, check Check) error {
	err := runCheck(c, check)
	return errors.Tag(err, check.DisplayName())
}

func runCheck(c *ariacheck.Checker, check Check) error {
	r, ok := registry[check.Check]
	if !ok {
		return scenarioErr("unknown check %q", check.Check)
	}
	in, err := prepare(c.Document(), r, check)
	if err != nil {
		return err
	}
	return r.run(c, in)
}

// Names returns the known check names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type input struct {
	check Check
	opts  ariacheck.Options
	item  *dom.Element
	refs  []*dom.Element
}

func prepare(doc *dom.Document, r runner, check Check) (input, error) {
	in := input{check: check}

	var state ariacheck.State
	if r.state {
		s, err := ParseState(check.State)
		if err != nil {
			return input{}, err
		}
		state = s
	}
	mode, err := ParseMode(check.Mode)
	if err != nil {
		return input{}, err
	}
	in.opts = ariacheck.Options{
		State:       state,
		TextContent: check.Text,
		Tag:         check.Tag,
		Attributes:  check.Attributes,
		Orientation: check.Orientation,
		Mode:        mode,
	}

	if r.item {
		if check.Item == "" {
			return input{}, scenarioErr("check %q requires an item", check.Check)
		}
		item, err := doc.Query(check.Item)
		if err != nil {
			return input{}, scenarioErr("invalid item xpath %q: %v", check.Item, err)
		}
		in.item = item
	}

	for _, target := range check.Targets {
		if r.many {
			els, err := doc.QueryAll(target)
			if err != nil {
				return input{}, scenarioErr("invalid target xpath %q: %v", target, err)
			}
			// An empty set would fall back to every element in the document.
			if len(els) == 0 {
				return input{}, scenarioErr("target xpath %q matches nothing", target)
			}
			in.refs = append(in.refs, els...)
			continue
		}
		el, err := doc.Query(target)
		if err != nil {
			return input{}, scenarioErr("invalid target xpath %q: %v", target, err)
		}
		// A target that matches nothing is passed as an explicit nil.
		in.refs = append(in.refs, el)
	}
	return in, nil
}

// ParseState maps a state name to a lifecycle state.
func ParseState(s string) (ariacheck.State, error) {
	switch s {
	case "visible":
		return ariacheck.Visible, nil
	case "hidden", "invisible-hidden":
		return ariacheck.InvisibleHidden, nil
	case "unmounted", "invisible-unmounted":
		return ariacheck.InvisibleUnmounted, nil
	case "":
		return 0, scenarioErr("state is required")
	default:
		return 0, scenarioErr("unknown state %q", s)
	}
}

// ParseSwitchState maps on and off to a switch state.
func ParseSwitchState(s string) (ariacheck.SwitchState, error) {
	switch s {
	case "on":
		return ariacheck.SwitchOn, nil
	case "off":
		return ariacheck.SwitchOff, nil
	case "":
		return 0, scenarioErr("switch state is required")
	default:
		return 0, scenarioErr("unknown switch state %q", s)
	}
}

// ParseMode maps a mode name to a selection mode. Empty means single.
func ParseMode(s string) (ariacheck.Mode, error) {
	switch s {
	case "", "single":
		return ariacheck.ModeSingle, nil
	case "multiple":
		return ariacheck.ModeMultiple, nil
	default:
		return 0, scenarioErr("unknown mode %q", s)
	}
}

func selection(selected *bool) ariacheck.Selection {
	switch {
	case selected == nil:
		return ariacheck.SelectionUnspecified
	case *selected:
		return ariacheck.Selected
	default:
		return ariacheck.Unselected
	}
}

func scenarioErr(format string, args ...any) error {
	return errors.NewViolationf(errors.ErrScenario, format, args...)
}
