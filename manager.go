package sketch

import "iter"

// DefaultSlotCount is the number of curve slots created by [NewDefaultManager].
const DefaultSlotCount = 3

// Manager owns a fixed set of curve slots and tracks which one is active.
// Point mutations always go to the active slot; [Manager.SetActive] is the
// only way to redirect them. Edits are local to the slot they target.
//
// Slots are handed out as read-only [SlotView]s whose dynamic type is not
// [*Slot], so the manager's methods remain the only write path.
type Manager struct {
	slots  []*Slot
	active int
}

// NewManager returns a manager with n empty slots, all configured with opts,
// and slot 0 active. n is raised to 1 if smaller.
func NewManager(n int, opts SlotOptions) *Manager {
	n = max(n, 1)
	m := &Manager{slots: make([]*Slot, n)}
	for i := range m.slots {
		m.slots[i] = NewSlot(opts)
	}
	m.slots[0].active = true
	return m
}

// NewDefaultManager returns a manager with [DefaultSlotCount] slots using
// [DefaultSlotOptions].
func NewDefaultManager() *Manager {
	return NewManager(DefaultSlotCount, DefaultSlotOptions())
}

// Len returns the number of slots.
func (m *Manager) Len() int { return len(m.slots) }

// Active returns the index of the active slot.
func (m *Manager) Active() int { return m.active }

// ActiveSlot returns the active slot.
func (m *Manager) ActiveSlot() SlotView { return readOnly{m.slots[m.active]} }

// Slot returns the slot at index i.
func (m *Manager) Slot(i int) (SlotView, error) {
	if err := checkIndex("slot", i, len(m.slots)); err != nil {
		return nil, err
	}
	return readOnly{m.slots[i]}, nil
}

// Slots returns an iterator over all slots and their indices.
func (m *Manager) Slots() iter.Seq2[int, SlotView] {
	return func(yield func(int, SlotView) bool) {
		for i, s := range m.slots {
			if !yield(i, readOnly{s}) {
				return
			}
		}
	}
}

// SetActive makes slot i the active slot. No slot's points or samples change.
func (m *Manager) SetActive(i int) error {
	if err := checkIndex("set active curve", i, len(m.slots)); err != nil {
		Logger().Warn("rejected curve switch", "index", i, "slots", len(m.slots))
		return err
	}
	m.slots[m.active].active = false
	m.active = i
	m.slots[i].active = true
	Logger().Info("active curve changed", "slot", i)
	return nil
}

// AddPointToActive appends p to the active slot.
func (m *Manager) AddPointToActive(p Point) {
	m.slots[m.active].AddPoint(p)
	Logger().Debug("point added", "slot", m.active, "point", p)
}

// MovePointInActive moves point i of the active slot to p. Only the active
// slot is recomputed.
func (m *Manager) MovePointInActive(i int, p Point) error {
	if err := m.slots[m.active].MovePoint(i, p); err != nil {
		Logger().Warn("rejected point move", "slot", m.active, "error", err)
		return err
	}
	Logger().Debug("point moved", "slot", m.active, "index", i, "point", p)
	return nil
}

// ClearActive removes every point from the active slot. The active index is
// unchanged.
func (m *Manager) ClearActive() {
	m.slots[m.active].Clear()
	Logger().Info("curve cleared", "slot", m.active)
}

// ClearAll clears every slot and makes slot 0 active.
func (m *Manager) ClearAll() {
	for _, s := range m.slots {
		s.Clear()
	}
	// Index 0 always exists.
	_ = m.SetActive(0)
	Logger().Info("all curves cleared")
}

// SetActiveMode changes the interpolation mode of the active slot.
func (m *Manager) SetActiveMode(mode Interpolation) {
	m.slots[m.active].SetMode(mode)
}

// SetActivePolygon toggles the control polygon overlay of the active slot.
func (m *Manager) SetActivePolygon(on bool) {
	m.slots[m.active].SetPolygon(on)
}
