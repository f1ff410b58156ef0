package layout

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/tree"
	"github.com/go-drift/arbor/pkg/visual"
)

// maxRounds bounds how many follow-up rounds a single ExecuteLayoutPass runs
// when each round keeps invalidating more elements.
const maxRounds = 10

// Queue is the Manager of one layout root.
//
// Invalidated elements are collected with their distance from the root and
// replayed by ExecuteLayoutPass: measure entries shallowest first, then
// arrange entries shallowest first. An element is re-laid out from its
// nearest ancestor that still holds the input of its last pass, so parents
// lay out before children and a parent's pass may already have revalidated a
// queued child, in which case the child's entry is skipped.
type Queue struct {
	root RootElement

	measure    []entry
	measureSet map[Element]bool // O(1) dedup check
	arrange    []entry
	arrangeSet map[Element]bool

	running bool
}

type entry struct {
	element  Element
	distance int
}

// NewQueue returns a queue laying out the tree under root.
func NewQueue(root RootElement) *Queue {
	return &Queue{root: root}
}

// InvalidateMeasure queues element for the next measure and arrange passes.
func (q *Queue) InvalidateMeasure(element Element, distance int) {
	if q.measureSet == nil {
		q.measureSet = make(map[Element]bool)
	}
	if !q.measureSet[element] {
		q.measureSet[element] = true
		q.measure = append(q.measure, entry{element: element, distance: distance})
	}
	q.InvalidateArrange(element, distance)
}

// InvalidateArrange queues element for the next arrange pass.
func (q *Queue) InvalidateArrange(element Element, distance int) {
	if q.arrangeSet == nil {
		q.arrangeSet = make(map[Element]bool)
	}
	if q.arrangeSet[element] {
		return
	}
	q.arrangeSet[element] = true
	q.arrange = append(q.arrange, entry{element: element, distance: distance})
}

// NeedsLayout reports whether any element is queued.
func (q *Queue) NeedsLayout() bool {
	return len(q.measure) > 0 || len(q.arrange) > 0
}

// Pending returns the queued measure and arrange counts.
func (q *Queue) Pending() (measure, arrange int) {
	return len(q.measure), len(q.arrange)
}

// ExecuteInitialLayoutPass measures and arranges the root with its client
// size, then replays anything invalidated along the way.
func (q *Queue) ExecuteInitialLayoutPass() error {
	size := q.root.ClientSize()
	if err := q.root.Measure(size); err != nil {
		return err
	}
	if err := q.root.Arrange(graphics.RectFromSize(size)); err != nil {
		return err
	}
	// Everything queued before the first pass is covered by it.
	q.drop(func(e Element) bool { return e.IsMeasureValid() && e.IsArrangeValid() })
	return q.ExecuteLayoutPass()
}

// ExecuteLayoutPass replays queued invalidations. Invalidations raised while
// the pass runs are handled in follow-up rounds. Reentrant calls are ignored.
func (q *Queue) ExecuteLayoutPass() error {
	if q.running || !q.NeedsLayout() {
		return nil
	}
	q.running = true
	defer func() { q.running = false }()

	start := time.Now()
	defer func() { passDuration.Observe(time.Since(start).Seconds()) }()

	for round := 0; q.NeedsLayout(); round++ {
		if round == maxRounds {
			zap.L().Named("layout").Warn("layout did not settle",
				zap.Int("rounds", round),
				zap.Int("measure", len(q.measure)),
				zap.Int("arrange", len(q.arrange)))
			return nil
		}

		measure := q.take(&q.measure, &q.measureSet)
		for _, e := range measure {
			if e.element.IsMeasureValid() || !q.attached(e.element) {
				continue
			}
			if err := q.measureFrom(e.element); err != nil {
				return err
			}
		}

		arrange := q.take(&q.arrange, &q.arrangeSet)
		for _, e := range arrange {
			if e.element.IsArrangeValid() || !q.attached(e.element) {
				continue
			}
			// Measured again in the next round; arrange after that.
			if !e.element.IsMeasureValid() {
				q.InvalidateArrange(e.element, e.distance)
				continue
			}
			if err := q.arrangeFrom(e.element); err != nil {
				return err
			}
		}

		if log := debugLogger(); log != nil {
			log.Debug("layout round",
				zap.Int("round", round),
				zap.Int("measured", len(measure)),
				zap.Int("arranged", len(arrange)))
		}
	}
	return nil
}

// take returns the queued entries sorted by distance and clears the queue for
// the next round.
func (q *Queue) take(queue *[]entry, set *map[Element]bool) []entry {
	entries := *queue
	*queue = nil
	*set = nil
	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.distance - b.distance
	})
	return entries
}

func (q *Queue) drop(done func(Element) bool) {
	keep := func(queue []entry, set map[Element]bool) []entry {
		return slices.DeleteFunc(queue, func(e entry) bool {
			if done(e.element) {
				delete(set, e.element)
				return true
			}
			return false
		})
	}
	q.measure = keep(q.measure, q.measureSet)
	q.arrange = keep(q.arrange, q.arrangeSet)
}

// attached reports whether element is still under this queue's root.
func (q *Queue) attached(element Element) bool {
	return tree.Root(element) == tree.Node(q.root)
}

// measureFrom re-measures element by forcing a measure of its nearest
// ancestor with a recorded available size, or of the root.
func (q *Queue) measureFrom(element Element) error {
	for ancestor := range tree.OfType[Element](tree.SelfAndAncestors(element)) {
		if tree.Node(ancestor) == tree.Node(q.root) {
			break
		}
		if prev, ok := ancestor.PreviousMeasure(); ok {
			q.logReplay("measure", element, ancestor)
			return ancestor.ForceMeasure(prev)
		}
	}
	q.logReplay("measure", element, q.root)
	return q.root.ForceMeasure(q.root.ClientSize())
}

// arrangeFrom re-arranges element by forcing an arrange of its nearest
// ancestor with a recorded rectangle, or of the root.
func (q *Queue) arrangeFrom(element Element) error {
	for ancestor := range tree.OfType[Element](tree.SelfAndAncestors(element)) {
		if tree.Node(ancestor) == tree.Node(q.root) {
			break
		}
		if prev, ok := ancestor.PreviousArrange(); ok {
			q.logReplay("arrange", element, ancestor)
			return ancestor.ForceArrange(prev)
		}
	}
	q.logReplay("arrange", element, q.root)
	return q.root.ForceArrange(graphics.RectFromSize(q.root.ClientSize()))
}

func (q *Queue) logReplay(phase string, element, from Element) {
	if log := debugLogger(); log != nil {
		log.Debug("replaying "+phase,
			zap.String("element", visual.Describe(element)),
			zap.String("from", visual.Describe(from)))
	}
}
