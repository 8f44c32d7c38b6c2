package dialogue

import "strconv"
import "unicode/utf8"

// The default time between two revealed runes, in seconds.
const DefaultTypeSpeed = 0.01

// Tolerance for float32 frame times on the typing timer, in seconds.
const timerEpsilon = 1e-6

// A choice slot. Raw input is mapped to slots outside this package.
type Slot int
const (
	SlotUp Slot = iota
	SlotDown
	SlotLeft
	SlotRight
)

// Number of choice slots. Choices beyond this can't be selected.
const NumSlots = 4

func (self Slot) String() string {
	switch self {
	case SlotUp   : return "Up"
	case SlotDown : return "Down"
	case SlotLeft : return "Left"
	case SlotRight: return "Right"
	default:
		return "Slot(" + strconv.Itoa(int(self)) + ")"
	}
}

// State walks a [Graph], revealing the current message progressively.
//
// States are not safe for concurrent use.
type State struct {
	graph *Graph
	current int
	reveal int        // runes revealed
	revealBytes int   // bytes of the message covered by reveal
	length int        // message length in runes
	timer float64
	typeSpeed float64
	onKeystroke func()
}

// Creates a state positioned at the start of the graph.
func NewState(graph *Graph) *State {
	if graph == nil || graph.Len() == 0 { panic("empty dialogue graph") }
	self := &State{ graph: graph, typeSpeed: DefaultTypeSpeed }
	self.jump(0)
	return self
}

// Sets the time between revealed runes, in seconds. Non-positive
// values reveal the whole message on the next update.
func (self *State) SetTypeSpeed(seconds float64) { self.typeSpeed = seconds }

// Returns the time between revealed runes, in seconds.
func (self *State) TypeSpeed() float64 { return self.typeSpeed }

// Sets a function to be called once per revealed rune. Used for
// keystroke sounds. Nil disables the callback.
func (self *State) SetKeystrokeFunc(fn func()) { self.onKeystroke = fn }

// Returns the graph being walked.
func (self *State) Graph() *Graph { return self.graph }

// Returns the current node index.
func (self *State) Current() int { return self.current }

// Returns the current node.
func (self *State) Node() Node { return self.graph.nodes[self.current] }

// Returns the number of runes revealed so far.
func (self *State) Reveal() int { return self.reveal }

// Returns the revealed prefix of the current message.
func (self *State) Revealed() string {
	return self.graph.nodes[self.current].Message[:self.revealBytes]
}

// Returns whether the message is still being revealed.
func (self *State) Revealing() bool { return self.reveal < self.length }

// Returns whether the message has been fully revealed and the node
// offers at least one choice.
func (self *State) AwaitingChoice() bool {
	return !self.Revealing() && len(self.graph.nodes[self.current].Choices) > 0
}

// Returns the choice labels of the current node, but only once the
// message has been fully revealed. Nil otherwise.
func (self *State) Options() []string {
	if self.Revealing() { return nil }
	choices := self.graph.nodes[self.current].Choices
	if len(choices) == 0 { return nil }
	labels := make([]string, len(choices))
	for i, choice := range choices {
		labels[i] = choice.Label
	}
	return labels
}

// Advances the typing timer and reveals one rune for each full
// type speed interval elapsed, calling the keystroke function for
// each. Returns the number of runes revealed. Once the message is
// complete, time has no effect.
func (self *State) Update(elapsed float32) int {
	if !self.Revealing() { return 0 }

	if self.typeSpeed <= 0 {
		return self.advance(self.length - self.reveal)
	}

	self.timer += float64(elapsed)
	steps := int((self.timer + timerEpsilon)/self.typeSpeed)
	if steps <= 0 { return 0 }
	self.timer -= float64(steps)*self.typeSpeed
	if self.timer < 0 { self.timer = 0 }
	return self.advance(min(steps, self.length - self.reveal))
}

// Selects the choice at the given slot. If the current node has a
// choice for that slot, the state moves to its target and starts
// revealing from scratch. Returns whether a transition happened.
//
// Choices can be taken while the message is still being revealed.
func (self *State) Choose(slot Slot) bool {
	choices := self.graph.nodes[self.current].Choices
	if slot < 0 || int(slot) >= len(choices) { return false }
	self.jump(choices[slot].Target)
	return true
}

// Moves back to the start of the graph.
func (self *State) Reset() { self.jump(0) }

func (self *State) jump(target int) {
	self.current = target
	self.reveal = 0
	self.revealBytes = 0
	self.timer = 0
	self.length = utf8.RuneCountInString(self.graph.nodes[target].Message)
}

func (self *State) advance(steps int) int {
	message := self.graph.nodes[self.current].Message
	for i := 0; i < steps; i++ {
		_, size := utf8.DecodeRuneInString(message[self.revealBytes:])
		self.revealBytes += size
		self.reveal += 1
		if self.onKeystroke != nil { self.onKeystroke() }
	}
	if !self.Revealing() { self.timer = 0 }
	return steps
}
