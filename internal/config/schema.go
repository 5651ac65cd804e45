package config

import (
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// schema constrains the shape of a config file. Definitions are closed,
// so unknown keys are rejected.
const schema = `
#Selection: string | [...string] | {[string]: bool}

#Config: {
	algorithms?:     #Selection
	"max-age"?:      number & >=0
	markdown?:       bool
	"front-matter"?: bool
	files?: [...string]
	ignore?: [...string]
	"no-follow-symlinks"?: [...string]
	overrides?: [...{
		files: [...string]
		algorithms?: #Selection
	}]
}
`

// validate checks a decoded YAML document against the config schema.
func validate(raw map[string]any) error {
	ctx := cuecontext.New()
	schemaVal := ctx.CompileString(schema)
	if err := schemaVal.Err(); err != nil {
		return fmt.Errorf("invalid config schema: %w", err)
	}
	def := schemaVal.LookupPath(cue.ParsePath("#Config"))

	if raw == nil {
		raw = map[string]any{}
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}

	dataVal := ctx.CompileBytes(data)
	if err := dataVal.Err(); err != nil {
		return fmt.Errorf("compile config: %w", err)
	}

	merged := def.Unify(dataVal)
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return nil
}
