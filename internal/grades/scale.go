// Package grades defines the letter-grade scale used to weight subjects.
package grades

// Scale maps grade labels to point values. A Scale is immutable once built.
type Scale struct {
	labels []string
	points map[string]int
}

// Default is the ten-point scale: O=10, A+=9, A=8, B=7, C=6, D=5, F=0.
var Default = newScale([]string{"O", "A+", "A", "B", "C", "D", "F"}, []int{10, 9, 8, 7, 6, 5, 0})

func newScale(labels []string, points []int) *Scale {
	s := &Scale{
		labels: labels,
		points: make(map[string]int, len(labels)),
	}
	for i, label := range labels {
		s.points[label] = points[i]
	}
	return s
}

// PointsFor returns the point value for label. Unknown and empty labels are worth 0, same as F.
func (s *Scale) PointsFor(label string) int {
	return s.points[label]
}

// Known reports whether label is part of the scale.
func (s *Scale) Known(label string) bool {
	_, ok := s.points[label]
	return ok
}

// Labels returns the labels in display order, highest first.
func (s *Scale) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}
