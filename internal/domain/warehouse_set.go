package domain

import (
	"encoding/json"
	"sort"
)

// WarehouseSet is the set of warehouse IDs a SKU may sell from.
// Membership is the only state; duplicates cannot exist.
// It marshals as a sorted JSON array so payloads are deterministic,
// and unmarshals nil/absent arrays to an empty set.
type WarehouseSet map[string]struct{}

func NewWarehouseSet(ids ...string) WarehouseSet {
	s := make(WarehouseSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s WarehouseSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s WarehouseSet) Add(id string) {
	s[id] = struct{}{}
}

func (s WarehouseSet) Remove(id string) {
	delete(s, id)
}

func (s WarehouseSet) Len() int {
	return len(s)
}

// IDs returns the members in sorted order.
func (s WarehouseSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s WarehouseSet) Clone() WarehouseSet {
	c := make(WarehouseSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

func (s WarehouseSet) Equal(other WarehouseSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

func (s WarehouseSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *WarehouseSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}

	*s = NewWarehouseSet(ids...)

	return nil
}
