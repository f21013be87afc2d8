package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatVersion is the only catalog document version understood by the loader.
const FormatVersion = 1

//go:embed catalog.yaml
var defaultDocument []byte

// Default loads the catalog bundled with the binary.
func Default() (*Catalog, error) {
	cat, err := LoadBytes(defaultDocument)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return cat, nil
}

// LoadFile reads a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Load parses a catalog document from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses a YAML catalog document. Mapping key order in the document
// becomes display order.
//
//	version: 1
//	categories:
//	  linux:
//	    title: LINUX COMMANDS
//	    subcategories:
//	      File Ops:
//	        list files:
//	          command: ls -la
//	          explanation: lists files
func LoadBytes(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedCatalog)
	}
	root := doc.Content[0]
	if err := expectKind(root, yaml.MappingNode, "document"); err != nil {
		return nil, err
	}

	var categoriesNode *yaml.Node
	err := eachPair(root, "document", func(key string, value *yaml.Node) error {
		switch key {
		case "version":
			return checkVersion(value)
		case "categories":
			categoriesNode = value
			return nil
		default:
			return malformed(value, "document", "unknown key %q", key)
		}
	})
	if err != nil {
		return nil, err
	}
	if categoriesNode == nil {
		return nil, fmt.Errorf("%w: document: missing categories", ErrMalformedCatalog)
	}
	if err := expectKind(categoriesNode, yaml.MappingNode, "categories"); err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(categoriesNode.Content)/2)
	err = eachPair(categoriesNode, "categories", func(id string, value *yaml.Node) error {
		cat, err := decodeCategory(id, value)
		if err != nil {
			return err
		}
		categories = append(categories, cat)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return New(categories...)
}

func checkVersion(node *yaml.Node) error {
	if err := expectKind(node, yaml.ScalarNode, "version"); err != nil {
		return err
	}
	v, err := strconv.Atoi(strings.TrimSpace(node.Value))
	if err != nil {
		return malformed(node, "version", "not an integer: %q", node.Value)
	}
	if v != FormatVersion {
		return malformed(node, "version", "unsupported version %d (want %d)", v, FormatVersion)
	}
	return nil
}

func decodeCategory(id string, node *yaml.Node) (Category, error) {
	path := "categories." + id
	if err := expectKind(node, yaml.MappingNode, path); err != nil {
		return Category{}, err
	}
	cat := Category{ID: id}
	var subsNode *yaml.Node
	err := eachPair(node, path, func(key string, value *yaml.Node) error {
		switch key {
		case "title":
			title, err := scalarText(value, path+".title")
			if err != nil {
				return err
			}
			cat.Title = title
		case "subcategories":
			subsNode = value
		default:
			return malformed(value, path, "unknown key %q", key)
		}
		return nil
	})
	if err != nil {
		return Category{}, err
	}
	if subsNode == nil {
		return Category{}, malformed(node, path, "missing subcategories")
	}
	subsPath := path + ".subcategories"
	if err := expectKind(subsNode, yaml.MappingNode, subsPath); err != nil {
		return Category{}, err
	}
	err = eachPair(subsNode, subsPath, func(label string, value *yaml.Node) error {
		sub, err := decodeSubcategory(subsPath+"."+label, label, value)
		if err != nil {
			return err
		}
		cat.Subcategories = append(cat.Subcategories, sub)
		return nil
	})
	if err != nil {
		return Category{}, err
	}
	if len(cat.Subcategories) == 0 {
		return Category{}, malformed(subsNode, subsPath, "no subcategories")
	}
	return cat, nil
}

func decodeSubcategory(path, label string, node *yaml.Node) (Subcategory, error) {
	if err := expectKind(node, yaml.MappingNode, path); err != nil {
		return Subcategory{}, err
	}
	sub := Subcategory{Label: label}
	err := eachPair(node, path, func(cmdLabel string, value *yaml.Node) error {
		entry, err := decodeEntry(path+"."+cmdLabel, value)
		if err != nil {
			return err
		}
		sub.Commands = append(sub.Commands, Command{Label: cmdLabel, Entry: entry})
		return nil
	})
	if err != nil {
		return Subcategory{}, err
	}
	if len(sub.Commands) == 0 {
		return Subcategory{}, malformed(node, path, "no commands")
	}
	return sub, nil
}

func decodeEntry(path string, node *yaml.Node) (Entry, error) {
	if err := expectKind(node, yaml.MappingNode, path); err != nil {
		return Entry{}, err
	}
	var entry Entry
	hasCommand := false
	err := eachPair(node, path, func(key string, value *yaml.Node) error {
		switch key {
		case "command":
			text, err := stringText(value, path+"."+key, false)
			if err != nil {
				return err
			}
			entry.Command = text
			hasCommand = strings.TrimSpace(text) != ""
		case "explanation":
			text, err := stringText(value, path+"."+key, true)
			if err != nil {
				return err
			}
			entry.Explanation = text
		default:
			return malformed(value, path, "unknown key %q", key)
		}
		return nil
	})
	if err != nil {
		return Entry{}, err
	}
	if !hasCommand {
		return Entry{}, malformed(node, path, "missing command text")
	}
	return entry, nil
}

// eachPair walks a mapping node in document order, rejecting empty and
// duplicate keys.
func eachPair(node *yaml.Node, path string, fn func(key string, value *yaml.Node) error) error {
	seen := make(map[string]struct{}, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, value := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return malformed(keyNode, path, "keys must be scalars")
		}
		key := keyNode.Value
		if strings.TrimSpace(key) == "" {
			return malformed(keyNode, path, "empty key")
		}
		if _, ok := seen[key]; ok {
			return malformed(keyNode, path, "duplicate key %q", key)
		}
		seen[key] = struct{}{}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	return nil
}

func scalarText(node *yaml.Node, path string) (string, error) {
	if err := expectKind(node, yaml.ScalarNode, path); err != nil {
		return "", err
	}
	if node.Tag == "!!null" {
		return "", nil
	}
	return node.Value, nil
}

// stringText is scalarText restricted to YAML strings. A null value is
// accepted as empty text only when nullable is set.
func stringText(node *yaml.Node, path string, nullable bool) (string, error) {
	text, err := scalarText(node, path)
	if err != nil {
		return "", err
	}
	switch node.ShortTag() {
	case "!!str":
		return text, nil
	case "!!null":
		if nullable {
			return "", nil
		}
	}
	return "", malformed(node, path, "expected string, got %s", strings.TrimPrefix(node.ShortTag(), "!!"))
}

func expectKind(node *yaml.Node, kind yaml.Kind, path string) error {
	if node == nil {
		return fmt.Errorf("%w: %s: missing value", ErrMalformedCatalog, path)
	}
	if node.Kind != kind {
		return malformed(node, path, "expected %s, got %s", kindName(kind), kindName(node.Kind))
	}
	return nil
}

func malformed(node *yaml.Node, path, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if node != nil && node.Line > 0 {
		return fmt.Errorf("%w: line %d: %s: %s", ErrMalformedCatalog, node.Line, path, msg)
	}
	return fmt.Errorf("%w: %s: %s", ErrMalformedCatalog, path, msg)
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
