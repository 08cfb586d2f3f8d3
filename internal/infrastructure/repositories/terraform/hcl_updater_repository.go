package terraform

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

const (
	updaterName   = "hcl"
	versionAttr   = "version"
	defaultAttr   = "default"
	localsBlock   = "locals"
	variableBlock = "variable"
)

// HCLUpdaterRepository reads a version kept in HCL, in one of three places:
//
//	version = "1.2.3"                     (top-level attribute)
//	locals { version = "1.2.3" }
//	variable "version" { default = "1.2.3" }
type HCLUpdaterRepository struct{}

// NewHCLUpdaterRepository creates a new HCL version reader.
func NewHCLUpdaterRepository() repositories.VersionUpdaterRepository {
	return &HCLUpdaterRepository{}
}

func (u *HCLUpdaterRepository) Name() string { return updaterName }

// Matches returns true for .tf and .hcl files.
func (u *HCLUpdaterRepository) Matches(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tf", ".hcl":
		return true
	default:
		return false
	}
}

// ReadVersion parses the file and returns the first version found.
func (u *HCLUpdaterRepository) ReadVersion(content []byte) (string, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, "version.hcl")
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	bodyContent, _, partialDiags := file.Body.PartialContent(&hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: versionAttr}},
		Blocks: []hcl.BlockHeaderSchema{
			{Type: localsBlock},
			{Type: variableBlock, LabelNames: []string{"name"}},
		},
	})
	if partialDiags.HasErrors() {
		return "", fmt.Errorf("failed to read HCL body: %s", partialDiags.Error())
	}

	if version, ok := stringAttr(bodyContent.Attributes, versionAttr); ok {
		return version, nil
	}

	for _, block := range bodyContent.Blocks {
		attrs, _ := block.Body.JustAttributes()
		switch {
		case block.Type == localsBlock:
			if version, ok := stringAttr(attrs, versionAttr); ok {
				return version, nil
			}
		case block.Type == variableBlock && len(block.Labels) > 0 && block.Labels[0] == versionAttr:
			if version, ok := stringAttr(attrs, defaultAttr); ok {
				return version, nil
			}
		}
	}

	return "", fmt.Errorf("%w: no version attribute", repositories.ErrVersionNotFound)
}

func stringAttr(attrs hcl.Attributes, name string) (string, bool) {
	attr, ok := attrs[name]
	if !ok {
		return "", false
	}
	val, diags := attr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() || !val.IsKnown() || val.IsNull() || val.Type() != cty.String {
		return "", false
	}
	return strings.TrimSpace(val.AsString()), true
}
