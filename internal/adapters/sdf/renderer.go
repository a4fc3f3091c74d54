// Package sdf renders slice definitions to their SDF-like YAML form.
package sdf

import (
	"bytes"
	"io"

	"go.trai.ch/autoslice/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const indent = 2

// Renderer implements ports.DefinitionRenderer using yaml.v3 nodes, which
// give full control over key ordering and null rendering.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the document for one package. Top-level keys appear in
// the order package, essential, slices, separated by a blank line for
// readability. Slices follow the canonical category order with essential
// before contents, and symlink-free paths render as empty nulls
// ("path:") rather than explicit "null".
func (r *Renderer) Render(w io.Writer, def *domain.SliceDefinition) error {
	sections := []*yaml.Node{
		mapping(scalar("package"), scalar(def.Package)),
	}
	if len(def.Essential) > 0 {
		sections = append(sections, mapping(scalar("essential"), sequence(def.Essential)))
	}
	sections = append(sections, mapping(scalar("slices"), slicesNode(def.Slices)))

	var out bytes.Buffer
	for i, section := range sections {
		if i > 0 {
			out.WriteByte('\n')
		}
		if err := encodeSection(&out, section); err != nil {
			return err
		}
	}

	if _, err := w.Write(out.Bytes()); err != nil {
		return zerr.Wrap(err, "failed to write slice definition")
	}
	return nil
}

func encodeSection(buf *bytes.Buffer, node *yaml.Node) error {
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(indent)
	if err := enc.Encode(node); err != nil {
		return zerr.Wrap(err, "failed to encode slice definition")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to encode slice definition")
	}
	return nil
}

func slicesNode(slices []domain.Slice) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range slices {
		node.Content = append(node.Content, scalar(string(s.Category)), sliceNode(s))
	}
	return node
}

func sliceNode(s domain.Slice) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if s.Essential != nil {
		node.Content = append(node.Content, scalar("essential"), sequence(s.Essential))
	}
	contents := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range s.Contents {
		value := null()
		if entry.Target != "" {
			value = scalar(entry.Target)
		}
		contents.Content = append(contents.Content, scalar(entry.Path), value)
	}
	node.Content = append(node.Content, scalar("contents"), contents)
	return node
}

func mapping(kv ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: kv}
}

func sequence(items []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode}
	for _, item := range items {
		node.Content = append(node.Content, scalar(item))
	}
	return node
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

func null() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: ""}
}
