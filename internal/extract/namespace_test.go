package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fn(name string) *FunctionInfo {
	return &FunctionInfo{NameInfo: ParseName(name)}
}

func TestBuildNamespacesGroupsByFirstAppearance(t *testing.T) {
	functions := []*FunctionInfo{
		fn("Seq#map"),
		fn("helper"),
		fn("Seq.from"),
	}

	namespaces := BuildNamespaces(functions)
	require.Len(t, namespaces, 2)
	assert.Equal(t, "Seq", namespaces[0].Namespace)
	assert.Equal(t, "helper", namespaces[1].Namespace)

	// Both Seq members land in the same namespace despite the interleaving.
	assert.Len(t, namespaces[0].Members, 2)

	// A top-level function is the constructor of its own namespace.
	require.NotNil(t, namespaces[1].Constructor)
	assert.Equal(t, "helper", namespaces[1].Constructor.Name)
	assert.Empty(t, namespaces[1].Members)
}

func TestBuildNamespaceMemberOrdering(t *testing.T) {
	functions := []*FunctionInfo{
		fn("Seq"),
		fn("Seq#reduce"),
		fn("Seq.zip"),
		fn("Seq#map"),
		fn("Seq.from"),
	}

	ns := BuildNamespace("Seq", functions, functions)

	require.NotNil(t, ns.Constructor)
	assert.Equal(t, "Seq", ns.Constructor.Name)

	// Static members before instance members, alphabetical within each tier.
	var names []string
	for _, m := range ns.Members {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Seq.from", "Seq.zip", "Seq#map", "Seq#reduce"}, names)

	require.Len(t, ns.AllMembers, 5)
	assert.Equal(t, "constructor", ns.AllMembers[0].SectionType)
	assert.Equal(t, "Seq", ns.AllMembers[0].Name)
	for _, m := range ns.AllMembers[1:] {
		assert.Equal(t, "method", m.SectionType)
	}
}

func TestBuildNamespaceConstructorFromAnotherGroup(t *testing.T) {
	ctor := fn("Seq")
	member := fn("Seq#map")
	all := []*FunctionInfo{ctor, member}

	// The constructor's own namespace key is "Seq" via its short name, so it
	// is found even when the grouped slice holds only the instance member.
	ns := BuildNamespace("Seq", []*FunctionInfo{member}, all)
	assert.Same(t, ctor, ns.Constructor)
	require.Len(t, ns.Members, 1)
}

func TestBuildNamespaceFlags(t *testing.T) {
	withExamples := fn("Seq#map")
	withExamples.Examples = Examples("map([1], inc) // => [2]")

	ns := BuildNamespace("Seq", []*FunctionInfo{withExamples}, []*FunctionInfo{withExamples})
	assert.True(t, ns.HasExamples)
	assert.False(t, ns.HasBenchmarks)
}

func TestFirstPopulatedNamespace(t *testing.T) {
	empty := &NamespaceInfo{Namespace: "Empty"}
	populated := BuildNamespace("Seq", []*FunctionInfo{fn("Seq#map")}, nil)

	assert.Equal(t, "Seq", firstPopulatedNamespace([]*NamespaceInfo{empty, populated}))
	assert.Equal(t, "", firstPopulatedNamespace(nil))
}
