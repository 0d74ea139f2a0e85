// Package collections has container types missing from the standard library.
package collections

// entry is a node of the recency list. newer points toward the most recent entry.
type entry struct {
	key, val     interface{}
	newer, older *entry
}

// OrderedMap is a map that also tracks how recently each key was added or touched,
// which makes it usable as the index of an LRU cache. It is not thread-safe.
type OrderedMap struct {
	items  map[interface{}]*entry
	newest *entry
	oldest *entry
}

// NewOrderedMap allocates an ordered map sized for cap entries.
func NewOrderedMap(cap int) *OrderedMap {
	return &OrderedMap{items: make(map[interface{}]*entry, cap)}
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	return len(m.items)
}

// Get returns the value stored under key.
func (m *OrderedMap) Get(key interface{}) (interface{}, bool) {
	e, ok := m.items[key]
	if !ok {
		return nil, false
	}
	return e.val, true
}

// Set stores val under key and reports whether the key is new. New keys become the
// most recent entry; updating a key leaves its position alone, call Touch for that.
func (m *OrderedMap) Set(key, val interface{}) bool {
	if e, ok := m.items[key]; ok {
		e.val = val
		return false
	}
	e := &entry{key: key, val: val}
	m.items[key] = e
	m.pushNewest(e)
	return true
}

// Touch makes key the most recent entry. It returns false if key is absent.
func (m *OrderedMap) Touch(key interface{}) bool {
	e, ok := m.items[key]
	if !ok {
		return false
	}
	if e != m.newest {
		m.unlink(e)
		m.pushNewest(e)
	}
	return true
}

// Delete removes key and returns the value it held.
func (m *OrderedMap) Delete(key interface{}) (interface{}, bool) {
	e, ok := m.items[key]
	if !ok {
		return nil, false
	}
	delete(m.items, key)
	m.unlink(e)
	return e.val, true
}

// Oldest returns the least recent entry, if any.
func (m *OrderedMap) Oldest() (key, val interface{}, ok bool) {
	if m.oldest == nil {
		return nil, nil, false
	}
	return m.oldest.key, m.oldest.val, true
}

// RangeInc visits entries from the oldest to the most recent until cb returns false.
// cb may delete the key it is given, but no other key.
func (m *OrderedMap) RangeInc(cb func(k, v interface{}) bool) {
	for e := m.oldest; e != nil; {
		next := e.newer
		if !cb(e.key, e.val) {
			return
		}
		e = next
	}
}

func (m *OrderedMap) pushNewest(e *entry) {
	e.older, e.newer = m.newest, nil
	if m.newest != nil {
		m.newest.newer = e
	}
	m.newest = e
	if m.oldest == nil {
		m.oldest = e
	}
}

func (m *OrderedMap) unlink(e *entry) {
	if e.older != nil {
		e.older.newer = e.newer
	} else {
		m.oldest = e.newer
	}
	if e.newer != nil {
		e.newer.older = e.older
	} else {
		m.newest = e.older
	}
	e.newer, e.older = nil, nil
}
