// Package session holds the chart artifacts of one viewing session and the
// navigation rules over them.
package session

import "borrow-trends/internal/charts"

// State is the viewer's current selection. Navigation never mutates a State;
// it returns the next one.
type State struct {
	Current int
}

// Deck is the ordered, read-only artifact cache of a session.
type Deck struct {
	artifacts []charts.Artifact
}

func NewDeck(artifacts []charts.Artifact) *Deck {
	return &Deck{artifacts: append([]charts.Artifact(nil), artifacts...)}
}

func (d *Deck) Len() int {
	return len(d.artifacts)
}

func (d *Deck) At(i int) (charts.Artifact, bool) {
	if i < 0 || i >= len(d.artifacts) {
		return charts.Artifact{}, false
	}
	return d.artifacts[i], true
}

// Titles lists the artifact titles in deck order.
func (d *Deck) Titles() []string {
	out := make([]string, len(d.artifacts))
	for i, a := range d.artifacts {
		out[i] = a.Title()
	}
	return out
}

// Current returns the artifact selected by s.
func (d *Deck) Current(s State) (charts.Artifact, bool) {
	return d.At(s.Current)
}

// SelectByIndex moves to i. Out-of-range requests leave s unchanged.
func (d *Deck) SelectByIndex(s State, i int) State {
	if i < 0 || i >= len(d.artifacts) {
		return s
	}
	return State{Current: i}
}

// SelectNext moves one forward, stopping at the last artifact.
func (d *Deck) SelectNext(s State) State {
	return d.SelectByIndex(s, s.Current+1)
}

// SelectPrevious moves one back, stopping at the first artifact.
func (d *Deck) SelectPrevious(s State) State {
	return d.SelectByIndex(s, s.Current-1)
}

// SelectByTitle moves to the first artifact with the given title. Unknown
// titles leave s unchanged.
func (d *Deck) SelectByTitle(s State, title string) State {
	for i, a := range d.artifacts {
		if a.Title() == title {
			return State{Current: i}
		}
	}
	return s
}
