package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// jumpTarget is one jumpable section of the composite, addressed by its
// global index at the moment the picker opened.
type jumpTarget struct {
	Section int
	Title   string
}

// jumpPicker filters section titles as the user types. Candidates are ranked
// by edit-distance similarity to the query, ties broken by section order.
type jumpPicker struct {
	targets  []jumpTarget
	filtered []jumpTarget
	query    string
	cursor   int
}

func newJumpPicker(targets []jumpTarget) *jumpPicker {
	p := &jumpPicker{targets: targets}
	p.refilter()
	return p
}

func (p *jumpPicker) typeRune(r rune) {
	p.query += string(r)
	p.refilter()
}

func (p *jumpPicker) backspace() {
	if p.query == "" {
		return
	}
	r := []rune(p.query)
	p.query = string(r[:len(r)-1])
	p.refilter()
}

func (p *jumpPicker) cursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *jumpPicker) cursorDown() {
	if p.cursor < len(p.filtered)-1 {
		p.cursor++
	}
}

func (p *jumpPicker) current() (section int, ok bool) {
	if len(p.filtered) == 0 {
		return 0, false
	}
	return p.filtered[p.cursor].Section, true
}

type scoredTarget struct {
	target jumpTarget
	score  float64
}

func (p *jumpPicker) refilter() {
	q := strings.TrimSpace(p.query)
	if q == "" {
		p.filtered = append([]jumpTarget(nil), p.targets...)
		p.clampCursor()
		return
	}

	scored := make([]scoredTarget, 0, len(p.targets))
	for _, t := range p.targets {
		s := similarity(t.Title, q)
		substr := strings.Contains(strings.ToLower(t.Title), strings.ToLower(q))
		if !substr && s < 0.6 {
			continue
		}
		if substr {
			s += 1 // substring hits outrank pure edit-distance ones
		}
		scored = append(scored, scoredTarget{target: t, score: s})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].target.Section < scored[j].target.Section
	})

	p.filtered = p.filtered[:0]
	for _, st := range scored {
		p.filtered = append(p.filtered, st.target)
	}
	p.clampCursor()
}

func (p *jumpPicker) clampCursor() {
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// similarity maps edit distance into [0,1]; 1 is an exact match.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" && b == "" {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(max(len(a), len(b)))
}
