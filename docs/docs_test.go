package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerInfoRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	assert.Contains(t, doc, "Recipe Catalog API")
	assert.Contains(t, doc, "/recipe/recipes/")
	assert.Contains(t, doc, "/user/token/")
}
