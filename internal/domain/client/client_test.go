package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

func str(s string) *string { return &s }

func TestApplyNormalizes(t *testing.T) {
	c := &models.Client{}

	errs := Apply(c, Attributes{
		Name:      str("  Maria Lopez "),
		Email:     str("Maria@Example.ORG"),
		BirthDate: str("1980-02-29"),
	})

	assert.False(t, errs.Any())
	assert.Equal(t, "Maria Lopez", c.Name)
	assert.Equal(t, "maria@example.org", c.Email)
	require.NotNil(t, c.BirthDate)
	assert.Equal(t, 29, c.BirthDate.Day())

	Apply(c, Attributes{BirthDate: str("")})
	assert.Nil(t, c.BirthDate)
}

func TestApplyRejectsBadDate(t *testing.T) {
	errs := Apply(&models.Client{}, Attributes{BirthDate: str("29/02/1980")})
	assert.Equal(t, []string{"is not a valid date"}, errs["birth_date"])
}

func TestValidate(t *testing.T) {
	assert.Contains(t, Validate(&models.Client{}), "name")
	assert.Contains(t, Validate(&models.Client{Name: strings.Repeat("a", 101)}), "name")
	assert.False(t, Validate(&models.Client{Name: "Ann"}).Any())
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 10, ClampLimit(0))
	assert.Equal(t, 25, ClampLimit(25))
	assert.Equal(t, 50, ClampLimit(500))
}
