package bing

const archiveSchemaID = "https://www.bing.com/HPImageArchive.schema.json"

// archiveSchemaJSON describes the subset of the archive response the
// collector depends on. Extra fields are allowed.
const archiveSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "https://www.bing.com/HPImageArchive.schema.json",
	"type": "object",
	"required": ["images"],
	"properties": {
		"images": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["url", "copyright", "enddate"],
				"properties": {
					"url": {"type": "string"},
					"copyright": {"type": "string"},
					"enddate": {"type": "string", "pattern": "^[0-9]{8}$"}
				}
			}
		}
	}
}`
