// Package extract turns a parsed JavaScript AST and its documentation
// comments into the library-level documentation record handed to rendering.
package extract

// NameInfo locates a documented declaration within its namespace.
// "#" in a qualified name marks an instance member.
type NameInfo struct {
	Name       string `json:"name"`
	ShortName  string `json:"shortName"`
	Namespace  string `json:"namespace,omitempty"`
	Identifier string `json:"identifier"`
}

// ParamInfo is one documented parameter.
type ParamInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ReturnInfo documents a function's return value.
type ReturnInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// PairInfo is one "input // output" line from an examples or benchmarks body.
type PairInfo struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// PairResult is the parsed form of a pair-bearing tag body.
type PairResult struct {
	Content  string     `json:"content"`
	Preamble string     `json:"preamble"`
	Pairs    []PairInfo `json:"pairs"`
}

// ExampleInfo is one runnable example. IDs are sequential within a single
// extraction call, starting at 1. Handler is the index of the matching
// example handler, or -1 when none applies.
type ExampleInfo struct {
	ID            int    `json:"id"`
	Input         string `json:"input"`
	Output        string `json:"output"`
	EscapedInput  string `json:"escapedInput"`
	EscapedOutput string `json:"escapedOutput"`
	Handler       int    `json:"handler"`
	Expected      string `json:"expected,omitempty"`
}

// ExampleCollection holds the examples extracted from one @examples tag.
type ExampleCollection struct {
	Content  string         `json:"content"`
	Preamble string         `json:"preamble"`
	List     []*ExampleInfo `json:"list"`
}

// BenchmarkCase is one implementation variant within a benchmark group.
// Case IDs keep counting across groups within one extraction call.
type BenchmarkCase struct {
	ID    int    `json:"id"`
	Input string `json:"input"`
	Label string `json:"label"`
}

// BenchmarkInfo is one named benchmark group.
type BenchmarkInfo struct {
	ID    int              `json:"id"`
	Name  string           `json:"name"`
	Cases []*BenchmarkCase `json:"cases"`
}

// BenchmarkCollection holds the benchmarks extracted from one @benchmarks tag.
type BenchmarkCollection struct {
	Content  string           `json:"content"`
	Preamble string           `json:"preamble"`
	List     []*BenchmarkInfo `json:"list"`
}

// FunctionInfo is the documentation record for one function. It is created
// once per matched (node, doclet) pair and not mutated afterwards.
type FunctionInfo struct {
	NameInfo

	Description   string               `json:"description"`
	Params        []ParamInfo          `json:"params"`
	Returns       *ReturnInfo          `json:"returns,omitempty"`
	IsConstructor bool                 `json:"isConstructor"`
	IsStatic      bool                 `json:"isStatic"`
	IsPublic      bool                 `json:"isPublic"`
	HasSignature  bool                 `json:"hasSignature"`
	Signature     string               `json:"signature"`
	Examples      *ExampleCollection   `json:"examples,omitempty"`
	Benchmarks    *BenchmarkCollection `json:"benchmarks,omitempty"`
	Tags          []string             `json:"tags"`
}

// HasExamples reports whether the function carries at least one example.
func (f *FunctionInfo) HasExamples() bool {
	return f.Examples != nil && len(f.Examples.List) > 0
}

// HasBenchmarks reports whether the function carries at least one benchmark.
func (f *FunctionInfo) HasBenchmarks() bool {
	return f.Benchmarks != nil && len(f.Benchmarks.List) > 0
}

// Member is a function decorated with its section type for rendering.
type Member struct {
	*FunctionInfo
	SectionType string `json:"sectionType"`
}

// NamespaceInfo groups a constructor and its members. Members excludes the
// constructor; AllMembers is the constructor (when present) prepended to
// Members.
type NamespaceInfo struct {
	Namespace     string          `json:"namespace"`
	Constructor   *FunctionInfo   `json:"constructor,omitempty"`
	Members       []*FunctionInfo `json:"members"`
	AllMembers    []*Member       `json:"allMembers"`
	HasExamples   bool            `json:"hasExamples"`
	HasBenchmarks bool            `json:"hasBenchmarks"`
}

// LibraryInfo is the top-level documentation record for one source file.
type LibraryInfo struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Source      string           `json:"source"`
	Namespaces  []*NamespaceInfo `json:"namespaces"`
	Functions   []*FunctionInfo  `json:"functions"`
}
