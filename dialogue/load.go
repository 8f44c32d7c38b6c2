package dialogue

import "os"
import "fmt"
import _ "embed"

import "gopkg.in/yaml.v3"
import "golang.org/x/text/unicode/norm"

//go:embed story.yaml
var storyYAML []byte

type document struct {
	Nodes []Node `yaml:"nodes"`
}

// Parses a YAML dialogue file:
//
//	nodes:
//	  - message: "FIRST LINE\nSECOND LINE"
//	    choices:
//	      - { label: "GO LEFT", target: 1 }
//
// All text is normalized to NFC, so composed and decomposed accents
// shape the same.
func Parse(data []byte) (*Graph, error) {
	var doc document
	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("parse dialogue: %w", err)
	}

	for i := range doc.Nodes {
		node := &doc.Nodes[i]
		node.Message = norm.NFC.String(node.Message)
		for j := range node.Choices {
			node.Choices[j].Label = norm.NFC.String(node.Choices[j].Label)
		}
	}
	return NewGraph(doc.Nodes)
}

// Reads and parses the YAML dialogue file at the given path.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dialogue: %w", err)
	}
	graph, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return graph, nil
}

// Returns the built-in dragon cave story.
func Story() *Graph {
	graph, err := Parse(storyYAML)
	if err != nil { panic("invalid built-in story: " + err.Error()) }
	return graph
}
