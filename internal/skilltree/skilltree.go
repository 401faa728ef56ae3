package skilltree

import (
	_ "embed"
	"encoding/json"
)

//go:embed tree.json
var treeJSON []byte

// Node is one entry in the static skill tree.
type Node struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Resources   []string `json:"resources,omitempty"`
	Children    []Node   `json:"children,omitempty"`
}

// Tree is a titled collection of skill nodes.
type Tree struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Nodes    []Node `json:"nodes"`
}

var tree Tree

func init() {
	if err := json.Unmarshal(treeJSON, &tree); err != nil {
		panic("skilltree: invalid embedded tree.json: " + err.Error())
	}
}

// Get returns the static skill tree.
func Get() Tree {
	return tree
}
