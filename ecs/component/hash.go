package component

import (
	"strconv"

	"github.com/OneOfOne/xxhash"
)

// Hash names components, properties and property elements.
type Hash uint64

func HashString(s string) Hash {
	return Hash(xxhash.ChecksumString64(s))
}

func (h Hash) String() string {
	return "hash:" + strconv.FormatUint(uint64(h), 16)
}

var elementSuffixes = [4]string{".x", ".y", ".z", ".w"}

// PropertyName caches the hash of a property and of its per-element
// sub-properties ("position.x", "position.y", ...).
type PropertyName struct {
	Name     string
	ID       Hash
	Elements [4]Hash
}

func NewPropertyName(name string) PropertyName {
	p := PropertyName{Name: name, ID: HashString(name)}
	for i, suffix := range elementSuffixes {
		p.Elements[i] = HashString(name + suffix)
	}
	return p
}
