package errors

type template struct {
	category Category
	message  string
	detail   string
}

// registry holds the message and default detail for every code.
var registry = map[string]template{
	// Render: E001-E019

	"E001": {
		category: CategoryRender,
		message:  "Plain value passed as a child",
		detail:   "Children may be elements, strings, numbers, booleans, nil or slices of those. Maps, structs and other values cannot be rendered.",
	},
	"E002": {
		category: CategoryRender,
		message:  "Component constructor returned no renderer",
		detail:   "A Class constructor must return a non-nil Renderer or an error.",
	},
	"E003": {
		category: CategoryRender,
		message:  "Component panicked",
		detail:   "A component panicked while rendering. The panic was recovered and the render was aborted.",
	},
	"E004": {
		category: CategoryRender,
		message:  "Render output could not be written",
		detail:   "The destination writer returned an error while the page was being written.",
	},

	// Document: E020-E039

	"E020": {
		category: CategoryDocument,
		message:  "Unknown component",
		detail:   "The document references a component that is not registered.",
	},
	"E021": {
		category: CategoryDocument,
		message:  "Invalid document node",
		detail:   "A node must be a scalar (text) or a mapping with a tag and optional props and children.",
	},
	"E022": {
		category: CategoryDocument,
		message:  "Document parse error",
		detail:   "The document is not valid YAML or JSON.",
	},
	"E023": {
		category: CategoryDocument,
		message:  "Document not found",
		detail:   "The document file could not be read.",
	},

	// Config: E040-E059

	"E040": {
		category: CategoryConfig,
		message:  "Invalid welgo config",
		detail:   "The welgo.yaml or welgo.json file contains invalid syntax.",
	},
	"E041": {
		category: CategoryConfig,
		message:  "Invalid config value",
		detail:   "A configuration value is out of range or malformed.",
	},
	"E042": {
		category: CategoryConfig,
		message:  "Config file not writable",
		detail:   "The configuration could not be saved.",
	},

	// Publish: E060-E079

	"E060": {
		category: CategoryPublish,
		message:  "Failed to write output file",
		detail:   "The rendered page could not be written to the output directory.",
	},
	"E061": {
		category: CategoryPublish,
		message:  "Failed to upload to S3",
		detail:   "The rendered page could not be stored in the configured bucket.",
	},
	"E062": {
		category: CategoryPublish,
		message:  "Invalid output target",
		detail:   "Output targets are file paths or s3://bucket/key URLs.",
	},

	// CLI: E080-E099

	"E080": {
		category: CategoryCLI,
		message:  "Not a welgo project",
		detail:   "No welgo.yaml or welgo.json was found in the current directory.",
	},
	"E081": {
		category: CategoryCLI,
		message:  "Server failed",
		detail:   "The HTTP server stopped with an error.",
	},
}
