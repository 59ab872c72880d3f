package errors

// Error codes for the v2sc toolchain.
// These codes are used in error messages and diagnostics
// to provide consistent error identification across the tools.
//
// Error code ranges:
// E0001-E0099: Rendering errors
// E0100-E0199: Tree loading errors
// E0200-E0299: Configuration errors
// E0900-E0999: Tooling errors

const (
	// Rendering errors (E0001-E0006)

	// E0001: No default rendering exists for a node kind
	ErrorUnsupportedNodeKind = "E0001"

	// E0002: A width bound does not fold to an integer
	ErrorNonConstantWidth = "E0002"

	// E0003: A width folds to a negative value
	ErrorNegativeWidth = "E0003"

	// E0004: A node kind has no template asset
	ErrorMissingTemplateAsset = "E0004"

	// E0005: A template asset failed while executing
	ErrorTemplateExecution = "E0005"

	// E0006: The tree is nested deeper than the configured limit
	ErrorNestingTooDeep = "E0006"

	// Tree loading errors (E0100-E0199)

	// E0100: The tree file is not well formed
	ErrorTreeSyntax = "E0100"

	// E0101: Unknown node kind in a tree file
	ErrorUnknownNodeKind = "E0101"

	// E0102: Attribute missing from the node kind or of the wrong shape
	ErrorInvalidAttribute = "E0102"

	// E0103: Included tree file not found on the include path
	ErrorIncludeNotFound = "E0103"

	// E0104: Tree files include each other
	ErrorIncludeCycle = "E0104"

	// E0105: Macro reference without a definition
	ErrorUndefinedMacro = "E0105"

	// Configuration errors (E0200-E0299)

	// E0200: Configuration file failed to decode or validate
	ErrorInvalidConfig = "E0200"

	// Tooling errors (E0900-E0999)

	// E0900: Input file does not exist
	ErrorFileNotFound = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnsupportedNodeKind:
		return "Node kind has no rendering in the default context"
	case ErrorNonConstantWidth:
		return "Width expression cannot be reduced to an integer"
	case ErrorNegativeWidth:
		return "Width expression evaluates to a negative value"
	case ErrorMissingTemplateAsset:
		return "No template asset is available for the node kind"
	case ErrorTemplateExecution:
		return "Template asset failed while rendering"
	case ErrorNestingTooDeep:
		return "Tree nesting exceeds the configured depth limit"
	case ErrorTreeSyntax:
		return "Tree file is not well formed"
	case ErrorUnknownNodeKind:
		return "Tree file names a node kind that does not exist"
	case ErrorInvalidAttribute:
		return "Node attribute is unknown or has the wrong shape"
	case ErrorIncludeNotFound:
		return "Included tree file was not found"
	case ErrorIncludeCycle:
		return "Tree files include each other"
	case ErrorUndefinedMacro:
		return "Macro is referenced but not defined"
	case ErrorInvalidConfig:
		return "Configuration file is invalid"
	case ErrorFileNotFound:
		return "Input file does not exist"
	default:
		return "Unknown error"
	}
}
