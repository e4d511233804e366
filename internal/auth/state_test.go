package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/hrassist/internal/auth"
	"github.com/dmitrymomot/hrassist/pkg/backend"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	user := &backend.User{ID: "u1", Email: "jane@acme.com"}

	tests := []struct {
		name  string
		state auth.State
		want  auth.Decision
	}{
		{"initializing waits", auth.Initializing(), auth.DecisionWait},
		{"authenticated allows", auth.Authenticated(user), auth.DecisionAllow},
		{"anonymous redirects", auth.Anonymous(), auth.DecisionRedirect},
		{"loading wins over stale user", auth.State{User: user, Loading: true}, auth.DecisionWait},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, auth.Decide(tt.state))
		})
	}
}

func TestState(t *testing.T) {
	t.Parallel()

	user := &backend.User{ID: "u1"}

	assert.False(t, auth.Initializing().IsAuthenticated())
	assert.False(t, auth.Anonymous().IsAuthenticated())
	assert.True(t, auth.Authenticated(user).IsAuthenticated())
	assert.False(t, auth.State{User: user, Loading: true}.IsAuthenticated())
}
