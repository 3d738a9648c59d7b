package network

import (
	"fmt"
	"strings"

	"github.com/reqchain/reqchain/nlp"
)

// DOT renders the head→tail map as a Graphviz digraph. Nodes are the
// surface forms of subject and object groups; edge labels carry the
// predicate group. Rendering the graph is left to external tooling.
func (n *Network) DOT() string {
	var b strings.Builder
	b.WriteString("digraph network {\n")
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\tnode [shape=box];\n")

	for _, head := range n.headOrder {
		for _, key := range n.heads[head] {
			rel, ok := n.store.Get(key)
			if !ok {
				continue
			}
			from := strings.Join(nlp.Texts(rel.Groups[0]), " ")
			label := strings.Join(nlp.Texts(rel.Groups[1]), " ")
			to := strings.Join(nlp.Texts(rel.Groups[2]), " ")
			fmt.Fprintf(&b, "\t%q -> %q [label=%q];\n", from, to, label)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
