// Package config loads rule sets from HCL files. Attributes left unset
// in the file keep their defaults, so a file only needs to name what it
// changes.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/plateparity/plateparity/plate"
)

// rulesFile is the top-level HCL schema: a single optional rules block.
//
//	rules {
//	  allow_mod        = true
//	  pow_max_exp      = 4
//	  max_factorial_arg = 6
//	}
type rulesFile struct {
	Rules *rulesBlock `hcl:"rules,block"`
}

// rulesBlock mirrors plate.Rules with pointer fields so unset
// attributes are distinguishable from explicit false/zero.
type rulesBlock struct {
	AllowPlus  *bool `hcl:"allow_plus,optional"`
	AllowMinus *bool `hcl:"allow_minus,optional"`
	AllowTimes *bool `hcl:"allow_times,optional"`
	AllowMod   *bool `hcl:"allow_mod,optional"`
	AllowPow   *bool `hcl:"allow_pow,optional"`
	AllowAbs   *bool `hcl:"allow_abs,optional"`
	AllowFact  *bool `hcl:"allow_fact,optional"`

	PowRequireIntExp *bool  `hcl:"pow_require_int_exp,optional"`
	PowMinExp        *int64 `hcl:"pow_min_exp,optional"`
	PowMaxExp        *int64 `hcl:"pow_max_exp,optional"`

	MaxFactorialArg *int64 `hcl:"max_factorial_arg,optional"`

	EnableUnaryWrapping *bool `hcl:"enable_unary_wrapping,optional"`

	EqTolerance *float64 `hcl:"eq_tol,optional"`
}

// LoadRules parses an HCL rules file and applies it on top of the
// default rule set.
func LoadRules(path string) (plate.Rules, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return plate.Rules{}, fmt.Errorf("failed to parse rules file %s: %s", path, diags.Error())
	}

	var cfg rulesFile
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return plate.Rules{}, fmt.Errorf("failed to decode rules file %s: %s", path, diags.Error())
	}

	return applyOverrides(plate.DefaultRules(), cfg.Rules), nil
}

// DecodeRules is LoadRules for in-memory sources; filename is used only
// in diagnostics.
func DecodeRules(src []byte, filename string) (plate.Rules, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return plate.Rules{}, fmt.Errorf("failed to parse rules source %s: %s", filename, diags.Error())
	}

	var cfg rulesFile
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return plate.Rules{}, fmt.Errorf("failed to decode rules source %s: %s", filename, diags.Error())
	}

	return applyOverrides(plate.DefaultRules(), cfg.Rules), nil
}

func applyOverrides(rules plate.Rules, block *rulesBlock) plate.Rules {
	if block == nil {
		return rules
	}

	setBool(&rules.AllowPlus, block.AllowPlus)
	setBool(&rules.AllowMinus, block.AllowMinus)
	setBool(&rules.AllowTimes, block.AllowTimes)
	setBool(&rules.AllowMod, block.AllowMod)
	setBool(&rules.AllowPow, block.AllowPow)
	setBool(&rules.AllowAbs, block.AllowAbs)
	setBool(&rules.AllowFact, block.AllowFact)
	setBool(&rules.PowRequireIntExp, block.PowRequireIntExp)
	setBool(&rules.EnableUnaryWrapping, block.EnableUnaryWrapping)

	setInt(&rules.PowMinExp, block.PowMinExp)
	setInt(&rules.PowMaxExp, block.PowMaxExp)
	setInt(&rules.MaxFactorialArg, block.MaxFactorialArg)

	if block.EqTolerance != nil {
		rules.EqTolerance = *block.EqTolerance
	}

	return rules
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int64, src *int64) {
	if src != nil {
		*dst = *src
	}
}
