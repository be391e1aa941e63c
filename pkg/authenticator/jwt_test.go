package authenticator

import (
	"testing"
	"time"

	"github.com/ethantsaox/jobflow/config"
	"github.com/stretchr/testify/require"
)

type testObject struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func Test_TokenEngine_GenerateAndVerify(t *testing.T) {
	engine := NewTokenEngine[testObject]("secret", config.TokenConfigs{
		Expiration: time.Minute,
	})

	token, err := engine.Generate("user1", testObject{ID: "user1", Email: "a@b.c"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, testObject{ID: "user1", Email: "a@b.c"}, obj)
}

func Test_TokenEngine_RejectsWrongSecret(t *testing.T) {
	engine := NewTokenEngine[testObject]("secret", config.TokenConfigs{
		Expiration: time.Minute,
	})

	token, err := engine.Generate("user1", testObject{ID: "user1"})
	require.NoError(t, err)

	other := NewTokenEngine[testObject]("another-secret", config.TokenConfigs{
		Expiration: time.Minute,
	})
	_, err = other.Verify(token)
	require.Error(t, err)
}

func Test_TokenEngine_RejectsExpiredToken(t *testing.T) {
	engine := NewTokenEngine[testObject]("secret", config.TokenConfigs{
		Expiration: -time.Minute,
	})

	token, err := engine.Generate("user1", testObject{ID: "user1"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

func Test_TokenEngine_RejectsGarbage(t *testing.T) {
	engine := NewTokenEngine[testObject]("secret", config.TokenConfigs{
		Expiration: time.Minute,
	})

	_, err := engine.Verify("not-a-token")
	require.Error(t, err)
}
