// internal/lexicon/trie.go
//
// Prefix tree over the dictionary.
// Responsibilities:
//   - Answer "is this exact string a word" (ContainsWord).
//   - Answer "could this string be extended to a word" (HasPrefix), used by
//     the solver to prune dead branches.
//
// Notes:
//   - Nodes live in a single arena slice and refer to each other by index.
//   - There is no synthetic root: each distinct first rune has its own head
//     node, so an unknown first rune is rejected with a single map lookup.
//   - Lookups are case-sensitive; callers normalize (see package words).

package lexicon

import "sort"

// node is a single traversable rune in the tree.
type node struct {
	id       int          // index in Trie.nodes
	parent   int          // parent index, -1 for heads
	val      rune         // rune held by this node
	terminus bool         // a complete word ends here
	next     map[rune]int // children keyed by rune
}

// Trie is an arena-backed prefix tree. The zero value is an empty trie.
type Trie struct {
	heads map[rune]int
	nodes []node
	count int
}

// New builds a Trie from a list of words. Duplicates and empty strings are ignored.
func New(words []string) *Trie {
	t := &Trie{}
	for _, w := range words {
		t.Add(w)
	}
	return t
}

// Add inserts word. Inserting an existing word is a no-op.
func (t *Trie) Add(word string) {
	runes := []rune(word)
	if len(runes) == 0 {
		return
	}
	cur := t.ensureHead(runes[0])
	for _, r := range runes[1:] {
		cur = t.ensureChild(cur, r)
	}
	if !t.nodes[cur].terminus {
		t.nodes[cur].terminus = true
		t.count++
	}
}

// ContainsWord reports whether word is non-empty and was inserted.
func (t *Trie) ContainsWord(word string) bool {
	id, ok := t.find(word)
	return ok && t.nodes[id].terminus
}

// HasPrefix reports whether some inserted word starts with prefix
// (prefix itself being a word counts). The empty prefix is never viable.
func (t *Trie) HasPrefix(prefix string) bool {
	_, ok := t.find(prefix)
	return ok
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int { return t.count }

// Words lists every word in the trie, sorted.
func (t *Trie) Words() []string {
	out := make([]string, 0, t.count)
	for _, id := range t.heads {
		out = t.collect(id, nil, out)
	}
	sort.Strings(out)
	return out
}

func (t *Trie) collect(id int, prefix []rune, out []string) []string {
	n := &t.nodes[id]
	word := append(prefix, n.val)
	if n.terminus {
		out = append(out, string(word))
	}
	for _, child := range n.next {
		out = t.collect(child, word[:len(word):len(word)], out)
	}
	return out
}

// find follows s from its head node and returns the id of the last node.
func (t *Trie) find(s string) (int, bool) {
	id, started := -1, false
	for _, r := range s {
		var ok bool
		if !started {
			id, ok = t.heads[r]
			started = true
		} else {
			id, ok = t.nodes[id].next[r]
		}
		if !ok {
			return -1, false
		}
	}
	return id, started
}

func (t *Trie) addNode(parent int, val rune) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{id: id, parent: parent, val: val, next: map[rune]int{}})
	return id
}

func (t *Trie) ensureHead(val rune) int {
	if t.heads == nil {
		t.heads = make(map[rune]int)
	}
	if id, ok := t.heads[val]; ok {
		return id
	}
	id := t.addNode(-1, val)
	t.heads[val] = id
	return id
}

func (t *Trie) ensureChild(parent int, val rune) int {
	if id, ok := t.nodes[parent].next[val]; ok {
		return id
	}
	id := t.addNode(parent, val)
	t.nodes[parent].next[val] = id
	return id
}
