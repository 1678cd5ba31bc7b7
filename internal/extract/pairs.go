package extract

import (
	"regexp"
	"strings"
)

// pairPattern matches one "input // output" line; the "=>" marker after the
// separator is optional and whitespace around both sides is trimmed.
var pairPattern = regexp.MustCompile(`^\s*(.*?)\s*//\s*(?:=>\s*)?(.*?)\s*$`)

// defaultBenchmarkLabel is used when a benchmark pair names no label.
const defaultBenchmarkLabel = "Ops/second"

// ParsePairs splits a tag body into a preamble and an ordered list of
// (left, right) pairs. Lines preceding the first pair are kept verbatim in
// the preamble; later lines that are not pairs are dropped.
func ParsePairs(text string) PairResult {
	result := PairResult{Content: text}

	var preamble []string
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "//") {
			if m := pairPattern.FindStringSubmatch(line); m != nil {
				result.Pairs = append(result.Pairs, PairInfo{Left: m[1], Right: m[2]})
				continue
			}
		}
		if len(result.Pairs) == 0 {
			preamble = append(preamble, line)
		}
	}
	result.Preamble = strings.Join(preamble, "\n")
	return result
}

// Divide splits s at the first occurrence of divider, excluding the divider
// from both halves. When the divider is absent, s is returned whole as a
// single-element slice.
func Divide(s, divider string) []string {
	i := strings.Index(s, divider)
	if i < 0 {
		return []string{s}
	}
	return []string{s[:i], s[i+len(divider):]}
}

// Examples extracts the example list from an @examples tag body. IDs start at
// 1 per call, and the escaped variants are safe to embed inside single-quoted
// strings in a host script.
func Examples(text string) *ExampleCollection {
	parsed := ParsePairs(text)
	collection := &ExampleCollection{
		Content:  parsed.Content,
		Preamble: parsed.Preamble,
	}
	for i, pair := range parsed.Pairs {
		collection.List = append(collection.List, &ExampleInfo{
			ID:            i + 1,
			Input:         pair.Left,
			Output:        pair.Right,
			EscapedInput:  EscapeScript(pair.Left),
			EscapedOutput: EscapeScript(pair.Right),
			Handler:       -1,
		})
	}
	return collection
}

// Benchmarks extracts the benchmark groups from a @benchmarks tag body. Each
// pair's right side divides on " - " into a benchmark name and a case label
// (defaulting to "Ops/second"). Pairs group by benchmark name in order of
// first appearance; case IDs keep counting across groups.
func Benchmarks(text string) *BenchmarkCollection {
	parsed := ParsePairs(text)
	collection := &BenchmarkCollection{
		Content:  parsed.Content,
		Preamble: parsed.Preamble,
	}

	groups := make(map[string]*BenchmarkInfo)
	caseID := 0
	for _, pair := range parsed.Pairs {
		divided := Divide(pair.Right, " - ")
		name := divided[0]
		label := defaultBenchmarkLabel
		if len(divided) > 1 {
			label = divided[1]
		}

		group, ok := groups[name]
		if !ok {
			group = &BenchmarkInfo{ID: len(collection.List) + 1, Name: name}
			groups[name] = group
			collection.List = append(collection.List, group)
		}

		caseID++
		group.Cases = append(group.Cases, &BenchmarkCase{
			ID:    caseID,
			Input: pair.Left,
			Label: label,
		})
	}
	return collection
}

// EscapeScript backslash-escapes single quotes so a value can be embedded in
// a single-quoted host-script string.
func EscapeScript(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
