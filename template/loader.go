package template

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	validator "gopkg.in/go-playground/validator.v9"
	"gopkg.in/yaml.v3"

	"github.com/dynalabs/rategraph/errors"
	"github.com/dynalabs/rategraph/errors/class"
	"github.com/dynalabs/rategraph/log"
	"github.com/dynalabs/rategraph/namer"
)

var validate = validator.New()

// LoadFile reads a template document file and registers every named entry
// found in it.
func (r *Registry) LoadFile(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Newf(class.TemplateDocumentRead, "can't read template document: '%s': %v", path, err)
	}

	templates, err := parseDocuments(data, r.lint())
	if err != nil {
		if classed, ok := err.(*errors.Error); ok {
			classed.WrapDetailf("file: '%s'", path)
		}
		return err
	}
	if err = r.registerAll(templates); err != nil {
		return err
	}
	log.Debugf("Loaded %d %s from: '%s'", len(templates), namer.Pluralized("template", len(templates)), path)
	return nil
}

// LoadDir loads every '*.yaml' and '*.yml' template document found in 'dir'.
func (r *Registry) LoadDir(dir string) error {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return errors.Newf(class.TemplateDocumentRead, "can't read template directory: '%s': %v", dir, err)
	}
	var multi errors.MultiError
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if err = r.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			multi = appendErrors(multi, err)
		}
	}
	return joinErrors(multi)
}

// LoadDocuments parses the in-memory template document 'data' and registers
// every named entry found in it. Registration failures aggregate - one bad
// entry doesn't drop the valid ones.
func (r *Registry) LoadDocuments(data []byte) error {
	templates, err := parseDocuments(data, r.lint())
	if err != nil {
		return err
	}
	return r.registerAll(templates)
}

// registerAll registers every parsed template, collecting the per-entry
// failures so the valid entries still land in the registry.
func (r *Registry) registerAll(templates []*Template) error {
	var multi errors.MultiError
	for _, t := range templates {
		if err := r.Register(t); err != nil {
			multi = appendErrors(multi, err)
		}
	}
	return joinErrors(multi)
}

func appendErrors(multi errors.MultiError, err error) errors.MultiError {
	if nested, ok := err.(errors.MultiError); ok {
		return append(multi, nested...)
	}
	return append(multi, err)
}

// joinErrors flattens the collected errors - nil when empty, the bare
// error when single, so single-failure callers keep their class checks.
func joinErrors(multi errors.MultiError) error {
	switch len(multi) {
	case 0:
		return nil
	case 1:
		return multi[0]
	}
	return multi
}

// ParseDocuments parses a template document into its template definitions.
// The document is a top-level mapping from template names to template
// bodies. Mapping order is preserved where it is significant (the 'replace'
// rewrite pairs).
func ParseDocuments(data []byte) ([]*Template, error) {
	return parseDocuments(data, true)
}

func parseDocuments(data []byte, lint bool) ([]*Template, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Newf(class.TemplateDocumentRead, "invalid template document: %v", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, errors.New(class.TemplateDocumentRead, "template document must be a top-level mapping")
	}

	var templates []*Template
	for i := 0; i < len(mapping.Content); i += 2 {
		nameNode, bodyNode := mapping.Content[i], mapping.Content[i+1]

		t, err := parseTemplate(nameNode.Value, bodyNode, lint)
		if err != nil {
			return nil, err
		}
		if err = validate.Struct(t); err != nil {
			return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' doesn't match the document schema: %v", t.Name, err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

func parseTemplate(name string, node *yaml.Node, lint bool) (*Template, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' body must be a mapping", name)
	}

	t := &Template{Name: name}
	var err error
	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		switch keyNode.Value {
		case "base":
			err = valueNode.Decode(&t.Base)
		case "description":
			err = valueNode.Decode(&t.Description)
		case "equations":
			t.Equations, err = parseEquations(name, valueNode)
		case "variables":
			t.Variables, err = parseVariables(name, valueNode, lint)
		case "operators":
			err = valueNode.Decode(&t.Operators)
		case "nodes":
			err = valueNode.Decode(&t.Nodes)
		case "edges":
			t.Edges, err = parseEdges(name, valueNode)
		default:
			if lint {
				log.Warningf("Template: '%s' has an unknown field: '%s'", name, keyNode.Value)
			}
		}
		if err != nil {
			return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' field: '%s' is invalid: %v", name, keyNode.Value, err)
		}
	}
	return t, nil
}

func parseEquations(template string, node *yaml.Node) (*EquationSpec, error) {
	spec := &EquationSpec{}
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&spec.Lines); err != nil {
			return nil, err
		}
		if len(spec.Lines) == 0 {
			return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' declares an empty equation list", template)
		}
	case yaml.MappingNode:
		for i := 0; i < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]

			var err error
			switch keyNode.Value {
			case "replace":
				if valueNode.Kind != yaml.MappingNode {
					return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' equations replace rule must be a mapping", template)
				}
				// walked through the raw nodes to keep the declared
				// pair order - later substitutions see the result of
				// earlier ones.
				for j := 0; j < len(valueNode.Content); j += 2 {
					spec.Replace = append(spec.Replace, ReplacePair{
						Pattern:     valueNode.Content[j].Value,
						Replacement: valueNode.Content[j+1].Value,
					})
				}
			case "remove":
				err = valueNode.Decode(&spec.Remove)
			case "append":
				err = valueNode.Decode(&spec.Append)
			default:
				return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' equations rewrite has an unknown rule: '%s'", template, keyNode.Value)
			}
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' equations must be a sequence or a rewrite mapping", template)
	}
	return spec, nil
}

func parseVariables(template string, node *yaml.Node, lint bool) (map[string]*VariableSpec, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' variables must be a mapping", template)
	}

	variables := map[string]*VariableSpec{}
	canonical := map[string]string{}
	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		spec, err := parseVariable(template, keyNode.Value, valueNode, lint)
		if err != nil {
			return nil, err
		}

		// a same-document key that differs only in its canonical form is
		// a synonym entry - fold it onto the first declared spelling.
		if declared, ok := canonical[namer.Canonical(keyNode.Value)]; ok {
			if lint {
				log.Warningf("Template: '%s' redeclares variable: '%s' as: '%s' - entries merged", template, declared, keyNode.Value)
			}
			overlayVariableSpec(variables[declared], spec)
			continue
		}
		canonical[namer.Canonical(keyNode.Value)] = keyNode.Value
		variables[keyNode.Value] = spec
	}
	return variables, nil
}

func parseVariable(template, variable string, node *yaml.Node, lint bool) (*VariableSpec, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' variable: '%s' must be a mapping", template, variable)
	}

	spec := &VariableSpec{}
	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var err error
		switch keyNode.Value {
		case "name":
			err = valueNode.Decode(&spec.Name)
		case "description":
			err = valueNode.Decode(&spec.Description)
		case "unit":
			if valueNode.Tag != "!!null" {
				err = valueNode.Decode(&spec.Unit)
			}
		case "default":
			err = parseDefault(spec, valueNode)
		case "allowed_range":
			err = valueNode.Decode(&spec.AllowedRange)
		default:
			if lint {
				log.Warningf("Template: '%s' variable: '%s' has an unknown field: '%s'", template, variable, keyNode.Value)
			}
		}
		if err != nil {
			return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' variable: '%s' field: '%s' is invalid: %v", template, variable, keyNode.Value, err)
		}
	}
	return spec, nil
}

func parseDefault(spec *VariableSpec, node *yaml.Node) error {
	switch node.Tag {
	case "!!null":
		return nil
	case "!!int", "!!float":
		var value float64
		if err := node.Decode(&value); err != nil {
			return err
		}
		spec.Default = value
	case "!!str":
		spec.Default = node.Value
	default:
		return errors.Newf(class.TemplateDocumentInvalid, "default must be a literal number or a role sentinel, got: '%s'", node.Tag)
	}
	spec.HasDefault = true
	return nil
}

func parseEdges(template string, node *yaml.Node) ([]*EdgeSpec, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' edges must be a sequence", template)
	}

	var edges []*EdgeSpec
	for _, entry := range node.Content {
		if entry.Kind != yaml.SequenceNode || len(entry.Content) < 3 || len(entry.Content) > 4 {
			return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' edge entries must be [source, target, template, params] tuples", template)
		}

		edge := &EdgeSpec{}
		if err := entry.Content[0].Decode(&edge.Source); err != nil {
			return nil, err
		}
		if err := entry.Content[1].Decode(&edge.Target); err != nil {
			return nil, err
		}
		if entry.Content[2].Tag != "!!null" {
			if err := entry.Content[2].Decode(&edge.Template); err != nil {
				return nil, err
			}
		}
		if len(entry.Content) == 4 {
			if err := entry.Content[3].Decode(&edge.Params); err != nil {
				return nil, err
			}
		}
		if edge.Source == "" || edge.Target == "" {
			return nil, errors.Newf(class.TemplateDocumentInvalid, "template: '%s' edge entries must carry both endpoints", template)
		}
		edges = append(edges, edge)
	}
	return edges, nil
}

func overlayVariableSpec(dst, src *VariableSpec) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	if src.Unit != "" {
		dst.Unit = src.Unit
	}
	if src.HasDefault {
		dst.Default = src.Default
		dst.HasDefault = true
	}
	if src.AllowedRange != "" {
		dst.AllowedRange = src.AllowedRange
	}
}
