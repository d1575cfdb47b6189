package testutils

import "sync"

// ScriptedRoller satisfies dice.Roller by replaying queued results. Roll
// returns 1 once its queue is empty and RollN returns all ones.
type ScriptedRoller struct {
	mu     sync.Mutex
	rolls  []int
	rollNs [][]int
	err    error
}

// NewScriptedRoller creates a roller with empty queues
func NewScriptedRoller() *ScriptedRoller {
	return &ScriptedRoller{}
}

// QueueRoll appends single die results
func (r *ScriptedRoller) QueueRoll(values ...int) *ScriptedRoller {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rolls = append(r.rolls, values...)
	return r
}

// QueueRollN appends results for successive RollN calls
func (r *ScriptedRoller) QueueRollN(sets ...[]int) *ScriptedRoller {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, set := range sets {
		r.rollNs = append(r.rollNs, append([]int(nil), set...))
	}
	return r
}

// FailWith makes every later call return err
func (r *ScriptedRoller) FailWith(err error) *ScriptedRoller {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
	return r
}

// Roll pops the next queued value, wrapped into [1, size]
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	if len(r.rolls) == 0 || size < 1 {
		return 1, nil
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	if v < 1 {
		v = 1
	}
	return (v-1)%size + 1, nil
}

// RollN pops the next queued set
func (r *ScriptedRoller) RollN(count, _ int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if len(r.rollNs) == 0 {
		ones := make([]int, count)
		for i := range ones {
			ones[i] = 1
		}
		return ones, nil
	}
	set := r.rollNs[0]
	r.rollNs = r.rollNs[1:]
	return set, nil
}
