package lexicon

// trieNode is a single node in the word trie. A node is terminal when the
// letters on the path from the root to it spell a complete word.
type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Trie is an immutable prefix tree over a lowercase vocabulary. It is built
// once at load time and never mutated afterwards, so it is safe for
// unsynchronized concurrent reads.
type Trie struct {
	root  *trieNode
	count int
}

// NewTrie builds a trie from the given words. Words are lowercased; empty
// strings are ignored.
func NewTrie(words []string) *Trie {
	t := &Trie{root: newTrieNode()}
	for _, word := range words {
		t.insert(word)
	}
	return t
}

func (t *Trie) insert(word string) {
	if word == "" {
		return
	}
	node := t.root
	for _, r := range word {
		next, ok := node.children[r]
		if !ok {
			next = newTrieNode()
			node.children[r] = next
		}
		node = next
	}
	if !node.terminal {
		node.terminal = true
		t.count++
	}
}

// walk descends from the root following s, returning nil if the path does
// not exist
func (t *Trie) walk(s string) *trieNode {
	node := t.root
	for _, r := range s {
		next, ok := node.children[r]
		if !ok {
			return nil
		}
		node = next
	}
	return node
}

// HasPrefix reports whether any word in the trie starts with s.
// The empty string is a prefix of every word.
func (t *Trie) HasPrefix(s string) bool {
	return t.walk(s) != nil
}

// IsWord reports whether s is a complete word in the trie
func (t *Trie) IsWord(s string) bool {
	node := t.walk(s)
	return node != nil && node.terminal
}

// Count returns the number of distinct words in the trie
func (t *Trie) Count() int {
	return t.count
}
