package resolve

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dynalabs/rategraph/errors"
	"github.com/dynalabs/rategraph/errors/class"
	"github.com/dynalabs/rategraph/log"
	"github.com/dynalabs/rategraph/namer"
	"github.com/dynalabs/rategraph/template"
)

// defaultSpec is a classified variable default - the parsed form of the
// 'default' sentinel of a single inheritance level.
type defaultSpec struct {
	role     Role
	value    float64
	hasValue bool
	typ      string
}

// parseDefault classifies a raw declared default into its role form.
func parseDefault(raw interface{}) (*defaultSpec, error) {
	switch v := raw.(type) {
	case float64:
		return &defaultSpec{role: RoleLiteral, value: v, hasValue: true}, nil
	case int:
		return &defaultSpec{role: RoleLiteral, value: float64(v), hasValue: true}, nil
	case string:
		return parseDefaultSentinel(v)
	}
	return nil, errors.Newf(class.VariableDefaultInvalid, "unsupported default value: '%v'", raw)
}

func parseDefaultSentinel(raw string) (*defaultSpec, error) {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "input":
		return &defaultSpec{role: RoleInput}, nil
	case "output":
		return &defaultSpec{role: RoleOutput}, nil
	case "variable":
		// integrated state initialized to zero when no argument is given
		return &defaultSpec{role: RoleState, hasValue: true}, nil
	}

	if inner, ok := sentinelArgument(trimmed, "variable"); ok {
		value, err := strconv.ParseFloat(strings.TrimSpace(inner), 64)
		if err != nil {
			return nil, errors.Newf(class.VariableDefaultInvalid, "invalid state initial value: '%s'", raw)
		}
		return &defaultSpec{role: RoleState, value: value, hasValue: true}, nil
	}
	if inner, ok := sentinelArgument(trimmed, "constant"); ok {
		typ := strings.TrimSpace(inner)
		switch typ {
		case "":
			return nil, errors.Newf(class.VariableDefaultInvalid, "constant sentinel requires a value type: '%s'", raw)
		case "float", "int":
		default:
			return nil, errors.Newf(class.VariableDefaultInvalid, "unsupported constant value type: '%s'", typ)
		}
		return &defaultSpec{role: RoleConstant, typ: typ}, nil
	}

	// a quoted number is still a literal default
	if value, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return &defaultSpec{role: RoleLiteral, value: value, hasValue: true}, nil
	}
	return nil, errors.Newf(class.VariableDefaultInvalid, "unknown default sentinel: '%s'", raw)
}

func sentinelArgument(raw, sentinel string) (string, bool) {
	if strings.HasPrefix(raw, sentinel+"(") && strings.HasSuffix(raw, ")") {
		return raw[len(sentinel)+1 : len(raw)-1], true
	}
	return "", false
}

// mergeDefaults folds a descendant level's classified default onto the
// inherited one. A literal may fill a required constant or update a state
// initial value; any other role change is a conflict.
func mergeDefaults(old, next *defaultSpec) (*defaultSpec, error) {
	if old == nil {
		return next, nil
	}
	switch {
	case next.role == old.role:
		return next, nil
	case old.role == RoleConstant && next.role == RoleLiteral:
		return &defaultSpec{role: RoleConstant, value: next.value, hasValue: true, typ: old.typ}, nil
	case old.role == RoleState && next.role == RoleLiteral:
		return &defaultSpec{role: RoleState, value: next.value, hasValue: true}, nil
	case old.role == RoleLiteral && next.role == RoleLiteral:
		return next, nil
	}
	return nil, errors.Newf(class.VariableDefaultConflict, "incompatible role defaults: '%s' and '%s'", old.role, next.role)
}

// accVar is the accumulated per-variable merge state along the chain.
type accVar struct {
	key          string
	alias        string
	description  string
	unit         string
	def          *defaultSpec
	allowedRange string
}

// mergeVariableLevel overlays a single inheritance level's variable
// mapping onto the accumulated state, keyed by the canonical variable
// form. A level entry supplying only a subset of the metadata merges
// field-by-field onto the inherited entry.
func mergeVariableLevel(acc map[string]*accVar, level string, variables map[string]*template.VariableSpec, lint bool) error {
	keys := make([]string, 0, len(variables))
	for key := range variables {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		spec := variables[key]
		canonical := namer.Canonical(key)

		existing, ok := acc[canonical]
		if !ok {
			existing = &accVar{key: key}
			acc[canonical] = existing
		} else if existing.key != key && lint {
			log.Warningf("Template: '%s' redeclares variable: '%s' as: '%s' - treated as the same variable", level, existing.key, key)
		}

		if spec.Name != "" {
			existing.alias = spec.Name
		}
		if spec.Description != "" {
			existing.description = spec.Description
		}
		if spec.Unit != "" {
			existing.unit = spec.Unit
		}
		if spec.AllowedRange != "" {
			existing.allowedRange = spec.AllowedRange
		}
		if spec.HasDefault {
			next, err := parseDefault(spec.Default)
			if err != nil {
				if classed, ok := err.(*errors.Error); ok {
					classed.WrapDetailf("template: '%s' variable: '%s'", level, key)
				}
				return err
			}
			merged, err := mergeDefaults(existing.def, next)
			if err != nil {
				if classed, ok := err.(*errors.Error); ok {
					classed.WrapDetailf("template: '%s' variable: '%s'", level, key)
				}
				return err
			}
			existing.def = merged
		}
	}
	return nil
}

// finalizeVariables turns the accumulated merge state into the resolved
// variable map keyed by the declared spellings.
func finalizeVariables(name string, acc map[string]*accVar) (map[string]*Variable, error) {
	variables := make(map[string]*Variable, len(acc))
	for _, state := range acc {
		v := &Variable{
			Key:          state.key,
			Alias:        state.alias,
			Description:  state.description,
			Unit:         state.unit,
			AllowedRange: state.allowedRange,
		}
		if state.def != nil {
			v.Role = state.def.role
			v.Value = state.def.value
			v.HasValue = state.def.hasValue
			v.ConstantType = state.def.typ
		}
		if state.allowedRange != "" {
			rng, err := ParseRange(state.allowedRange)
			if err != nil {
				return nil, errors.Newf(class.VariableRangeInvalid, "template: '%s' variable: '%s': %v", name, state.key, err)
			}
			v.Range = rng
		}
		variables[state.key] = v
	}
	return variables, nil
}
