// The dialogue subpackage implements the branching dialogue graph and
// the state machine that walks it, revealing each message one rune at
// a time like a typewriter.
package dialogue

import "errors"
import "fmt"

var ErrEmptyGraph = errors.New("dialogue graph has no nodes")
var ErrInvalidTarget = errors.New("dialogue choice targets a missing node")

// A choice offered once a node message has been fully revealed.
type Choice struct {
	Label string `yaml:"label"`
	Target int  `yaml:"target"`
}

// A dialogue node. The message may contain '\n' line breaks.
type Node struct {
	Message string    `yaml:"message"`
	Choices []Choice `yaml:"choices"`
}

// An immutable set of nodes. Node 0 is the start.
type Graph struct {
	nodes []Node
}

// Creates a graph from the given nodes, which are deep copied. Every
// choice target must be a valid node index, otherwise an error
// wrapping [ErrInvalidTarget] is returned.
func NewGraph(nodes []Node) (*Graph, error) {
	if len(nodes) == 0 { return nil, ErrEmptyGraph }

	copied := make([]Node, len(nodes))
	for i, node := range nodes {
		for j, choice := range node.Choices {
			if choice.Target < 0 || choice.Target >= len(nodes) {
				return nil, fmt.Errorf("node %d, choice %d (%q) targets %d: %w", i, j, choice.Label, choice.Target, ErrInvalidTarget)
			}
		}
		copied[i].Message = node.Message
		copied[i].Choices = append([]Choice(nil), node.Choices...)
	}
	return &Graph{ nodes: copied }, nil
}

// Returns the number of nodes.
func (self *Graph) Len() int { return len(self.nodes) }

// Returns the node at the given index. The choices slice must not be
// modified. Panics if the index is out of range.
func (self *Graph) Node(index int) Node { return self.nodes[index] }

// Returns every message and choice label in the graph, in node order.
// Useful to check that a font covers all the text.
func (self *Graph) Texts() []string {
	texts := make([]string, 0, len(self.nodes)*3)
	for _, node := range self.nodes {
		texts = append(texts, node.Message)
		for _, choice := range node.Choices {
			texts = append(texts, choice.Label)
		}
	}
	return texts
}
