package extract

import (
	"sort"
	"strings"
)

// BuildNamespaces groups function records by namespace key and builds one
// NamespaceInfo per key, in order of first appearance. A record's namespace
// key is its namespace when present, otherwise its short name: top-level
// declarations form their own single-member namespace.
func BuildNamespaces(functions []*FunctionInfo) []*NamespaceInfo {
	var order []string
	grouped := make(map[string][]*FunctionInfo)
	for _, fn := range functions {
		key := fn.Namespace
		if key == "" {
			key = fn.ShortName
		}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], fn)
	}

	namespaces := make([]*NamespaceInfo, 0, len(order))
	for _, key := range order {
		namespaces = append(namespaces, BuildNamespace(key, grouped[key], functions))
	}
	return namespaces
}

// BuildNamespace builds the record for one namespace. The constructor is the
// single record across all namespaces whose qualified name equals the
// namespace exactly; members sort static-before-instance, then alphabetically
// by short name within each tier.
func BuildNamespace(namespace string, group []*FunctionInfo, all []*FunctionInfo) *NamespaceInfo {
	info := &NamespaceInfo{Namespace: namespace}

	for _, fn := range all {
		if fn.Name == namespace {
			info.Constructor = fn
			break
		}
	}

	for _, fn := range group {
		if fn != info.Constructor {
			info.Members = append(info.Members, fn)
		}
	}
	sort.SliceStable(info.Members, func(i, j int) bool {
		a, b := info.Members[i], info.Members[j]
		aStatic := !strings.Contains(a.Name, "#")
		bStatic := !strings.Contains(b.Name, "#")
		if aStatic != bStatic {
			return aStatic
		}
		return a.ShortName < b.ShortName
	})

	if info.Constructor != nil {
		info.AllMembers = append(info.AllMembers, &Member{
			FunctionInfo: info.Constructor,
			SectionType:  "constructor",
		})
	}
	for _, fn := range info.Members {
		info.AllMembers = append(info.AllMembers, &Member{
			FunctionInfo: fn,
			SectionType:  "method",
		})
	}

	for _, m := range info.AllMembers {
		if m.HasExamples() {
			info.HasExamples = true
		}
		if m.HasBenchmarks() {
			info.HasBenchmarks = true
		}
	}
	return info
}

// firstPopulatedNamespace returns the name of the first namespace with at
// least one member, or "".
func firstPopulatedNamespace(namespaces []*NamespaceInfo) string {
	for _, ns := range namespaces {
		if len(ns.AllMembers) > 0 {
			return ns.Namespace
		}
	}
	return ""
}
