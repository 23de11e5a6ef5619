package intent

// phraseIndex is an Aho-Corasick automaton over the keyword view of the catalogue
// phrases. Transitions are a 256-way table per node; patterns are ASCII after normalization
// so byte matching is exact

type acNode struct {
	trans  [256]int32 // -1 when absent
	fail   int32
	output []int32 // pattern ids ending here, own and inherited via fail links
}

type phraseIndex struct {
	nodes []acNode
}

func newNode() acNode {
	var n acNode
	for i := range n.trans {
		n.trans[i] = -1
	}
	return n
}

func newPhraseIndex() *phraseIndex {
	return &phraseIndex{nodes: []acNode{newNode()}}
}

// add inserts pat under id; empty patterns are ignored
func (a *phraseIndex) add(pat string, id int) {
	if pat == "" {
		return
	}
	state := int32(0)
	for i := 0; i < len(pat); i++ {
		b := pat[i]
		nxt := a.nodes[state].trans[b]
		if nxt == -1 {
			nxt = int32(len(a.nodes))
			a.nodes[state].trans[b] = nxt
			a.nodes = append(a.nodes, newNode())
		}
		state = nxt
	}
	a.nodes[state].output = append(a.nodes[state].output, int32(id))
}

// build computes failure links breadth first. Call once after the last add
func (a *phraseIndex) build() {
	q := make([]int32, 0, len(a.nodes))
	for b := range 256 {
		if s := a.nodes[0].trans[b]; s != -1 {
			a.nodes[s].fail = 0
			q = append(q, s)
		}
	}
	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b := range 256 {
			s := a.nodes[r].trans[b]
			if s == -1 {
				continue
			}
			q = append(q, s)

			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].trans[b] == -1 {
				f = a.nodes[f].fail
			}
			if nxt := a.nodes[f].trans[b]; nxt != -1 {
				a.nodes[s].fail = nxt
			} else {
				a.nodes[s].fail = 0
			}
			a.nodes[s].output = append(a.nodes[s].output, a.nodes[a.nodes[s].fail].output...)
		}
	}
}

// contained marks every pattern id that occurs anywhere in text
func (a *phraseIndex) contained(text string, seen []bool) {
	state := int32(0)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for state != 0 && a.nodes[state].trans[b] == -1 {
			state = a.nodes[state].fail
		}
		if nxt := a.nodes[state].trans[b]; nxt != -1 {
			state = nxt
		}
		for _, id := range a.nodes[state].output {
			seen[id] = true
		}
	}
}
