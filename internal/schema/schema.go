// Package schema describes struct layouts in YAML so the CLI can decode
// accounts without Go code for each layout.
//
//	name: reserve
//	fields:
//	  - { name: version, type: u64 }
//	  - { name: market,  type: pubkey }
//	  - name: liquidity
//	    type: struct
//	    fields:
//	      - { name: borrowed, type: u128 }
//	  - { name: label, type: string }
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/unkn0wn-root/acctlayout"
	"gopkg.in/yaml.v3"
)

var ErrSchema = errors.New("schema: invalid layout")

// Schema is the root struct layout.
type Schema struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Field is one member. Fields is only used when Type is "struct".
type Field struct {
	Name   string  `yaml:"name"`
	Type   string  `yaml:"type"`
	Fields []Field `yaml:"fields,omitempty"`
}

// Parse decodes a YAML schema, rejecting unknown keys.
func Parse(data []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Schema
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrSchema)
	}
	if len(s.Fields) == 0 {
		return nil, fmt.Errorf("%w: %q has no fields", ErrSchema, s.Name)
	}
	return &s, nil
}

// Load reads and parses the schema at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	return Parse(data)
}

// Compile builds the struct layout the schema describes.
func (s *Schema) Compile() (*acctlayout.StructLayout, error) {
	return compileStruct(s.Name, s.Name, s.Fields)
}

func compileStruct(path, name string, fields []Field) (*acctlayout.StructLayout, error) {
	members := make([]acctlayout.Layout, 0, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: %s: field %d has no name", ErrSchema, path, i)
		}
		l, err := compileField(path+"."+f.Name, f)
		if err != nil {
			return nil, err
		}
		members = append(members, l)
	}
	st, err := acctlayout.NewStruct(name, members...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return st, nil
}

func compileField(path string, f Field) (acctlayout.Layout, error) {
	if f.Type != "struct" && len(f.Fields) > 0 {
		return nil, fmt.Errorf("%w: %s: only struct fields take fields", ErrSchema, path)
	}
	switch f.Type {
	case "pubkey", "publicKey":
		return acctlayout.PublicKey(f.Name), nil
	case "u64":
		return acctlayout.U64(f.Name), nil
	case "u128":
		return acctlayout.U128(f.Name), nil
	case "i64":
		return acctlayout.I64(f.Name), nil
	case "i128":
		return acctlayout.I128(f.Name), nil
	case "string":
		return acctlayout.String(f.Name), nil
	case "struct":
		if len(f.Fields) == 0 {
			return nil, fmt.Errorf("%w: %s: struct has no fields", ErrSchema, path)
		}
		return compileStruct(path, f.Name, f.Fields)
	default:
		return nil, fmt.Errorf("%w: %s: unknown type %q", ErrSchema, path, f.Type)
	}
}
