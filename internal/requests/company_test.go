package requests_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrassist/internal/requests"
)

func TestCreateCompany_Params(t *testing.T) {
	t.Parallel()

	t.Run("empty description is absent", func(t *testing.T) {
		t.Parallel()

		form := requests.CreateCompany{
			Name:            "Acme",
			GreytHRUsername: "acme-admin",
			GreytHRPassword: "secret",
		}
		params := form.Params()

		assert.Equal(t, "Acme", params.Name)
		assert.Nil(t, params.Description)
	})

	t.Run("description is carried when present", func(t *testing.T) {
		t.Parallel()

		form := requests.CreateCompany{Name: "Acme", Description: "HR portal"}
		params := form.Params()

		require.NotNil(t, params.Description)
		assert.Equal(t, "HR portal", *params.Description)
	})
}

func TestUpdateCompany_Params(t *testing.T) {
	t.Parallel()

	t.Run("blank fields are excluded from the partial update", func(t *testing.T) {
		t.Parallel()

		form := requests.UpdateCompany{Name: "Acme Renamed"}
		params := form.Params()

		require.NotNil(t, params.Name)
		assert.Equal(t, "Acme Renamed", *params.Name)
		assert.Nil(t, params.GreytHRUsername)
		assert.Nil(t, params.GreytHRPassword)
		assert.Nil(t, params.Description)
	})

	t.Run("empty reports no changes", func(t *testing.T) {
		t.Parallel()

		assert.True(t, requests.UpdateCompany{}.Empty())
		assert.False(t, requests.UpdateCompany{Description: "x"}.Empty())
	})
}

func TestSignIn_Params(t *testing.T) {
	t.Parallel()

	form := requests.SignIn{Email: "jane@acme.com", Password: "secret", RememberMe: true}
	params := form.Params()

	assert.Equal(t, "jane@acme.com", params.Email)
	assert.Equal(t, "secret", params.Password)
	assert.True(t, params.RememberMe)
}
