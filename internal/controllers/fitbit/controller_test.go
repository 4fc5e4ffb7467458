package fitbit_test

import (
	"errors"
	"testing"

	"github.com/isometry/fitbit-webhook-app/internal/controllers/fitbit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretGetter struct {
	values map[string]string
	err    error
}

func (f *fakeSecretGetter) GetSecret(key string, _ bool) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.values[key]
	if !ok {
		return "", errors.New("parameter not found")
	}
	return v, nil
}

func TestController_RetrieveVerificationCode(t *testing.T) {
	getter := &fakeSecretGetter{values: map[string]string{"/fitbit/verify-code": "from-ssm"}}

	testCases := []struct {
		Name        string
		Options     []fitbit.Option
		Expected    string
		ExpectError bool
	}{
		{
			Name:     "default_source_is_env",
			Options:  []fitbit.Option{fitbit.WithVerificationCode("abc123")},
			Expected: "abc123",
		},
		{
			Name: "env_source",
			Options: []fitbit.Option{
				fitbit.WithVerificationSource(" ENV "),
				fitbit.WithVerificationCode("abc123"),
			},
			Expected: "abc123",
		},
		{
			Name:     "env_source_unset",
			Options:  []fitbit.Option{fitbit.WithVerificationSource("env")},
			Expected: "",
		},
		{
			Name: "ssm_source",
			Options: []fitbit.Option{
				fitbit.WithVerificationSource("ssm"),
				fitbit.WithSSMKey("/fitbit/verify-code"),
				fitbit.WithSecretGetter(getter),
				fitbit.WithVerificationCode("ignored"),
			},
			Expected: "from-ssm",
		},
		{
			Name: "ssm_source_missing_parameter",
			Options: []fitbit.Option{
				fitbit.WithVerificationSource("ssm"),
				fitbit.WithSSMKey("/fitbit/missing"),
				fitbit.WithSecretGetter(getter),
			},
			ExpectError: true,
		},
		{
			Name: "ssm_source_without_client",
			Options: []fitbit.Option{
				fitbit.WithVerificationSource("ssm"),
				fitbit.WithSSMKey("/fitbit/verify-code"),
			},
			ExpectError: true,
		},
		{
			Name:        "unsupported_source",
			Options:     []fitbit.Option{fitbit.WithVerificationSource("vault")},
			ExpectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			code, err := fitbit.NewController(tc.Options...).RetrieveVerificationCode()
			if tc.ExpectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, code)
		})
	}
}
