package functions

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

var ErrMalformedResponse = errors.New("malformed response")

var (
	fetchJobsSchema   = mustLoadSchema("schemas/fetch_jobs.json")
	matchJobsSchema   = mustLoadSchema("schemas/match_jobs.json")
	parseResumeSchema = mustLoadSchema("schemas/parse_resume.json")
)

func mustLoadSchema(name string) *gojsonschema.Schema {
	content, err := schemaFiles.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("schema %s is not embedded: %v", name, err))
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(content))
	if err != nil {
		panic(fmt.Sprintf("schema %s is invalid: %v", name, err))
	}
	return schema
}

func validateBody(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors.Wrap(ErrMalformedResponse, err.Error())
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		problems = append(problems, field+": "+desc.Description())
	}
	return errors.Wrap(ErrMalformedResponse, strings.Join(problems, "; "))
}
