package wordlist

import (
	"fmt"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Size is the number of words in every catalog. Indices fit in 11 bits.
const Size = 2048

// Language selects one of the supported word catalogs.
type Language int

const (
	English Language = iota
	ChineseSimplified
	ChineseTraditional
	French
	Italian
	Japanese
	Korean
	Spanish
)

// Languages lists every supported language.
var Languages = []Language{
	English,
	ChineseSimplified,
	ChineseTraditional,
	French,
	Italian,
	Japanese,
	Korean,
	Spanish,
}

var languageNames = map[Language]string{
	English:            "english",
	ChineseSimplified:  "chinese-simplified",
	ChineseTraditional: "chinese-traditional",
	French:             "french",
	Italian:            "italian",
	Japanese:           "japanese",
	Korean:             "korean",
	Spanish:            "spanish",
}

// String returns the lowercase name of the language.
func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("language(%d)", int(l))
}

// Parse maps a language name, as printed by String, back to a Language.
func Parse(name string) (Language, error) {
	for lang, n := range languageNames {
		if n == name {
			return lang, nil
		}
	}
	return 0, fmt.Errorf("unknown language %q", name)
}

// List is an immutable word catalog for one language.
type List struct {
	words []string
	index map[string]uint16
}

var catalogs map[Language]*List

func init() {
	catalogs = map[Language]*List{
		English:            newList(wordlists.English),
		ChineseSimplified:  newList(wordlists.ChineseSimplified),
		ChineseTraditional: newList(wordlists.ChineseTraditional),
		French:             newList(wordlists.French),
		Italian:            newList(wordlists.Italian),
		Japanese:           newList(wordlists.Japanese),
		Korean:             newList(wordlists.Korean),
		Spanish:            newList(wordlists.Spanish),
	}
}

func newList(words []string) *List {
	if len(words) != Size {
		panic(fmt.Sprintf("wordlist: catalog has %d words, want %d", len(words), Size))
	}
	index := make(map[string]uint16, Size)
	for i, w := range words {
		index[w] = uint16(i)
	}
	return &List{words: words, index: index}
}

// For returns the catalog for lang. The same *List is shared by all
// callers; it is never mutated after init.
func For(lang Language) *List {
	list, ok := catalogs[lang]
	if !ok {
		panic(fmt.Sprintf("wordlist: no catalog for %v", lang))
	}
	return list
}

// Word returns the word at an 11-bit index.
func (l *List) Word(i uint16) string {
	return l.words[i&(Size-1)]
}

// Index returns the 11-bit index of word, or false if the word is not in
// the catalog. Matching is case-sensitive and exact.
func (l *List) Index(word string) (uint16, bool) {
	i, ok := l.index[word]
	return i, ok
}
