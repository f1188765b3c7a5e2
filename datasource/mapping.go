package datasource

import "fmt"

// mapping assigns one child the half-open global section range
// [globalStart, globalEnd). Local section i lives at globalStart + i; item
// indices pass through untouched.
type mapping struct {
	globalStart int
	globalEnd   int
}

func (m *mapping) length() int { return m.globalEnd - m.globalStart }

func (m *mapping) globalSection(local int) int { return m.globalStart + local }

func (m *mapping) localSection(global int) int {
	if global < m.globalStart || global >= m.globalEnd {
		panic(fmt.Sprintf("datasource: global section %d outside mapped range [%d,%d)",
			global, m.globalStart, m.globalEnd))
	}
	return global - m.globalStart
}

func (m *mapping) globalSections(locals []int) []int {
	out := make([]int, len(locals))
	for i, s := range locals {
		out[i] = m.globalSection(s)
	}
	return out
}

func (m *mapping) localSections(globals []int) []int {
	out := make([]int, len(globals))
	for i, s := range globals {
		out[i] = m.localSection(s)
	}
	return out
}

func (m *mapping) globalIndexPath(p IndexPath) IndexPath {
	p.Section = m.globalSection(p.Section)
	return p
}

func (m *mapping) localIndexPath(p IndexPath) IndexPath {
	p.Section = m.localSection(p.Section)
	return p
}

func (m *mapping) globalIndexPaths(paths []IndexPath) []IndexPath {
	out := make([]IndexPath, len(paths))
	for i, p := range paths {
		out[i] = m.globalIndexPath(p)
	}
	return out
}

// updateMappings reassigns the range to start at offset and span count
// sections, returning the new end so the caller can chain the next child.
func (m *mapping) updateMappings(offset, count int) int {
	m.globalStart = offset
	m.globalEnd = offset + count
	return m.globalEnd
}

// localView hands a child a view whose indices are in the child's own space.
// It holds nothing beyond the real view and the child's mapping.
type localView struct {
	view View
	m    *mapping
}

func (v localView) SectionCount() int { return v.m.length() }

func (v localView) ItemCount(section int) int {
	return v.view.ItemCount(v.m.globalSection(section))
}

func (v localView) Size() (int, int) { return v.view.Size() }
