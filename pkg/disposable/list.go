package disposable

import (
	_ "embed"
	"errors"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed domains.yaml
var embeddedDomains []byte

// List is an immutable set of disposable mail domains.
type List struct {
	domains map[string]struct{}
}

type document struct {
	Domains []string `yaml:"domains"`
}

// FromSlice builds a List from raw domain names. Names are trimmed and
// lowercased; blanks and comments (leading '#') are skipped.
func FromSlice(domains []string) *List {
	l := &List{domains: make(map[string]struct{}, len(domains))}
	for _, d := range domains {
		d = normalize(d)
		if d == "" || strings.HasPrefix(d, "#") {
			continue
		}
		l.domains[d] = struct{}{}
	}
	return l
}

// Load reads a YAML document of the form
//
//	domains:
//	  - mailinator.com
//	  - yopmail.com
func Load(r io.Reader) (*List, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return FromSlice(nil), nil
		}
		return nil, errors.Join(ErrInvalidFormat, err)
	}
	return FromSlice(doc.Domains), nil
}

// LoadFile is Load for a file path.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	defer f.Close()
	return Load(f)
}

var (
	defaultOnce sync.Once
	defaultList *List
)

// Default returns the built-in list, parsed once.
func Default() *List {
	defaultOnce.Do(func() {
		var doc document
		if err := yaml.Unmarshal(embeddedDomains, &doc); err != nil {
			panic("disposable: embedded domain list is malformed: " + err.Error())
		}
		defaultList = FromSlice(doc.Domains)
	})
	return defaultList
}

// IsDisposable reports whether domain or any of its parent domains is listed.
func (l *List) IsDisposable(domain string) bool {
	if l == nil || len(l.domains) == 0 {
		return false
	}
	for d := normalize(domain); d != ""; {
		if _, ok := l.domains[d]; ok {
			return true
		}
		i := strings.IndexByte(d, '.')
		if i < 0 {
			break
		}
		d = d[i+1:]
	}
	return false
}

// Merge returns a new List holding the domains of l and others.
func (l *List) Merge(others ...*List) *List {
	out := &List{domains: make(map[string]struct{}, l.Len())}
	for _, src := range append([]*List{l}, others...) {
		if src != nil {
			maps.Copy(out.domains, src.domains)
		}
	}
	return out
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.domains)
}

// Domains returns the listed domains in sorted order.
func (l *List) Domains() []string {
	if l == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(l.domains))
}

func normalize(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimPrefix(domain, "@")
	return strings.TrimSuffix(domain, ".")
}
