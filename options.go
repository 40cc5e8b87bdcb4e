package ariacheck

import (
	"go.uber.org/zap"

	"github.com/jacoelho/ariacheck/focus"
)

// CheckerOptions configures a Checker.
type CheckerOptions struct {
	classifier focus.Classifier
	logger     *zap.Logger
}

type resolvedCheckerOptions struct {
	classifier focus.Classifier
	logger     *zap.Logger
}

// NewCheckerOptions returns a default, valid options value.
func NewCheckerOptions() CheckerOptions {
	return CheckerOptions{}
}

// WithFocusClassifier sets the classifier behind AssertFocusable and
// AssertNotFocusable (nil uses focus.Default).
func (o CheckerOptions) WithFocusClassifier(classifier focus.Classifier) CheckerOptions {
	o.classifier = classifier
	return o
}

// WithLogger sets the logger that records each check at debug level
// (nil disables logging).
func (o CheckerOptions) WithLogger(logger *zap.Logger) CheckerOptions {
	o.logger = logger
	return o
}

func (o CheckerOptions) withDefaults() resolvedCheckerOptions {
	resolved := resolvedCheckerOptions{
		classifier: o.classifier,
		logger:     o.logger,
	}
	if resolved.classifier == nil {
		resolved.classifier = focus.Default{}
	}
	if resolved.logger == nil {
		resolved.logger = zap.NewNop()
	}
	return resolved
}
