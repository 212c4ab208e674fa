package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	values := Values{"ENV_SECRET": "s3cr3t", "ENV_CONFIGMAP": "cm", "BUILD_ID": "42"}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tight", "<p>{{ENV_SECRET}}</p>", "<p>s3cr3t</p>"},
		{"spaced", "<p>{{  BUILD_ID }}</p>", "<p>42</p>"},
		{"repeated", "{{ENV_CONFIGMAP}}/{{ ENV_CONFIGMAP }}", "cm/cm"},
		{"unknown", "{{ OTHER }} {{BUILD_ID}}", "{{ OTHER }} 42"},
		{"unterminated", "{{ BUILD_ID", "{{ BUILD_ID"},
		{"plain", "<html>hi</html>", "<html>hi</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.in, values))
		})
	}
}

func TestValuesFromEnv(t *testing.T) {
	t.Setenv("ENV_SECRET", "from-secret")
	t.Setenv("ENV_CONFIGMAP", "")
	t.Setenv("ENV_BUILD_ID", "build-7")

	values := ValuesFromEnv()

	assert.Equal(t, "from-secret", values["ENV_SECRET"])
	assert.Equal(t, NotSet, values["ENV_CONFIGMAP"])
	assert.Equal(t, "build-7", values["BUILD_ID"])
}
