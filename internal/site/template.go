package site

import (
	"io"
	"strings"

	"planets-api/internal/shared/utils"

	"github.com/valyala/fasttemplate"
)

// NotSet is substituted for template values whose variable is unset.
const NotSet = "Not set"

// Values holds the substitutions for the index page placeholders, keyed by
// the placeholder name as it appears between the braces.
type Values map[string]string

// ValuesFromEnv reads the index placeholders from the environment.
func ValuesFromEnv() Values {
	return Values{
		"ENV_SECRET":    utils.GetEnv("ENV_SECRET", NotSet),
		"ENV_CONFIGMAP": utils.GetEnv("ENV_CONFIGMAP", NotSet),
		"BUILD_ID":      utils.GetEnv("ENV_BUILD_ID", NotSet),
	}
}

// Render replaces every {{ NAME }} placeholder whose trimmed NAME is present
// in values. Unknown placeholders are written back unchanged.
func Render(template string, values Values) string {
	return fasttemplate.ExecuteFuncString(template, "{{", "}}", func(w io.Writer, tag string) (int, error) {
		if value, ok := values[strings.TrimSpace(tag)]; ok {
			return w.Write([]byte(value))
		}
		return w.Write([]byte("{{" + tag + "}}"))
	})
}
