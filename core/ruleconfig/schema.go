package ruleconfig

// schemaDoc is the embedded JSON Schema (draft 2020-12) describing the
// external rule-table config format: a version gate plus an ordered list
// of (kind, pattern, from_mode, to_mode, keep_span) rules.
const schemaDoc = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "schema://munch/ruleconfig.json",
  "type": "object",
  "required": ["version", "start_mode", "rules"],
  "properties": {
    "version": {"type": "string"},
    "start_mode": {"type": "string", "minLength": 1},
    "rules": {
      "type": "array",
      "minItems": 1,
      "items": {"$ref": "#/$defs/rule"}
    }
  },
  "$defs": {
    "rule": {
      "type": "object",
      "required": ["kind", "pattern", "from_mode", "to_mode", "keep_span"],
      "properties": {
        "kind": {"type": "string", "minLength": 1},
        "from_mode": {"type": "string", "minLength": 1},
        "to_mode": {"type": "string", "minLength": 1},
        "keep_span": {"type": "boolean"},
        "pattern": {"$ref": "#/$defs/pattern"}
      }
    },
    "pattern": {
      "type": "object",
      "required": ["op"],
      "properties": {
        "op": {
          "type": "string",
          "enum": ["empty", "epsilon", "any", "char", "range", "one_of", "none_of", "star", "plus", "opt", "concat", "union"]
        },
        "value": {"type": "string"},
        "lo": {"type": "integer"},
        "hi": {"type": "integer"},
        "chars": {"type": "string"},
        "arg": {"$ref": "#/$defs/pattern"},
        "args": {
          "type": "array",
          "minItems": 2,
          "items": {"$ref": "#/$defs/pattern"}
        }
      }
    }
  }
}`
