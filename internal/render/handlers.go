package render

import (
	"fmt"
	"regexp"

	"github.com/jsdocgen/jsdocgen/internal/extract"
)

// HandlerConfig is one example-handler entry as it appears in the config
// file: a pattern matched against example outputs and a test snippet for the
// host script.
type HandlerConfig struct {
	Pattern string `yaml:"pattern" validate:"required"`
	Test    string `yaml:"test" validate:"required"`
}

// ExampleHandler is a compiled handler entry.
type ExampleHandler struct {
	Pattern *regexp.Regexp
	Test    string
}

// CompileHandlers compiles handler configuration once, at configuration time.
func CompileHandlers(configs []HandlerConfig) ([]ExampleHandler, error) {
	handlers := make([]ExampleHandler, 0, len(configs))
	for _, c := range configs {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("render: handler pattern %q: %w", c.Pattern, err)
		}
		handlers = append(handlers, ExampleHandler{Pattern: re, Test: c.Test})
	}
	return handlers, nil
}

// AnnotateExamples tests every example's output against the handlers in
// order; the first match wins and the example is annotated with that
// handler's index and a script-escaped form of its expected output.
func AnnotateExamples(lib *extract.LibraryInfo, handlers []ExampleHandler) {
	if len(handlers) == 0 {
		return
	}
	for _, fn := range lib.Functions {
		if fn.Examples == nil {
			continue
		}
		for _, ex := range fn.Examples.List {
			for i, h := range handlers {
				if h.Pattern.MatchString(ex.Output) {
					ex.Handler = i
					ex.Expected = extract.EscapeScript(ex.Output)
					break
				}
			}
		}
	}
}
