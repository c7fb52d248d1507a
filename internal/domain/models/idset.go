package models

import (
	"encoding/json"
	"slices"
)

// IDSet is an insertion-ordered set of job ids. It serializes as a JSON array.
type IDSet struct {
	ids []string
}

func NewIDSet(ids ...string) IDSet {
	var s IDSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *IDSet) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// Add reports whether the id was not present before.
func (s *IDSet) Add(id string) bool {
	if s.Contains(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

func (s *IDSet) Remove(id string) bool {
	i := slices.Index(s.ids, id)
	if i < 0 {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	return true
}

// Toggle flips membership and reports whether the id is now present.
func (s *IDSet) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

func (s *IDSet) Len() int {
	return len(s.ids)
}

func (s *IDSet) Items() []string {
	return slices.Clone(s.ids)
}

func (s IDSet) MarshalJSON() ([]byte, error) {
	if s.ids == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.ids)
}

func (s *IDSet) UnmarshalJSON(b []byte) error {
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}
