package entity

import "snake-classic/game/types"

// CommandQueue buffers direction changes between input polling (every frame)
// and direction commits (every tick). It is never empty.
type CommandQueue struct {
	queue []types.Direction
}

func NewCommandQueue(initial types.Direction) *CommandQueue {
	q := make([]types.Direction, 1, 2)
	q[0] = initial
	return &CommandQueue{queue: q}
}

// Push appends dir unless it equals the most recently queued direction
func (q *CommandQueue) Push(dir types.Direction) {
	if q.Last() != dir {
		q.queue = append(q.queue, dir)
	}
}

// Last returns the most recently queued direction without removing it
func (q *CommandQueue) Last() types.Direction {
	return q.queue[len(q.queue)-1]
}

// Next returns the direction for the upcoming tick. The final entry is kept
// so the committed direction persists until a new one is queued.
func (q *CommandQueue) Next() types.Direction {
	next := q.queue[0]
	if len(q.queue) > 1 {
		q.queue = q.queue[1:]
	}
	return next
}

func (q *CommandQueue) Len() int {
	return len(q.queue)
}
