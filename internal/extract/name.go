package extract

import "strings"

// ParseName derives NameInfo from a dotted/hashed qualified name. The last
// segment is the short name, the remaining segments joined by "." form the
// namespace, and the identifier is the qualified name with every "." and "#"
// replaced by "-" (safe for use as an HTML anchor).
//
//	ParseName("Foo.Bar#baz") => {Name: "Foo.Bar#baz", ShortName: "baz",
//	                             Namespace: "Foo.Bar", Identifier: "Foo-Bar-baz"}
func ParseName(qualified string) NameInfo {
	segments := strings.FieldsFunc(qualified, func(r rune) bool {
		return r == '.' || r == '#'
	})

	info := NameInfo{
		Name:       qualified,
		Identifier: identifierFor(qualified),
	}
	if len(segments) == 0 {
		return info
	}
	info.ShortName = segments[len(segments)-1]
	info.Namespace = strings.Join(segments[:len(segments)-1], ".")
	return info
}

func identifierFor(qualified string) string {
	return strings.Map(func(r rune) rune {
		if r == '.' || r == '#' {
			return '-'
		}
		return r
	}, qualified)
}
