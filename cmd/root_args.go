package cmd

import (
	"github.com/isometry/fitbit-webhook-app/internal/config"
	"github.com/isometry/fitbit-webhook-app/internal/helpers"
)

var envMapString = map[*string]boundEnvVar[string]{
	&config.Global.Mode: {
		Name:        "mode",
		Description: "The application runtime mode. Possible values are 'lambda-http', 'lambda-greeting' and 'service'",
		Short:       helpers.Ptr("m"),
	},
	&config.Fitbit.VerificationSource: {
		Name:        "fitbit-verification-source",
		Description: "Where to read the subscriber verification code from. Supported values are 'env' and 'ssm'",
		Short:       helpers.Ptr("s"),
	},
	&config.Fitbit.VerificationCode: {
		Name:        "fitbit-verify-code",
		Description: "The subscriber verification code. If not specified, every verification request is rejected",
		Env:         helpers.Ptr("fitbit_verify_code"),
		Hidden:      true,
	},
	&config.Fitbit.SSMKey: {
		Name:        "fitbit-verify-code-ssm-key",
		Description: "The SSM parameter holding the subscriber verification code when the source is 'ssm'",
	},
}

var envMapBool = map[*bool]boundEnvVar[bool]{
	&config.Global.Logging.CallerTrace: {
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
	},
}

var envMapCount = map[*int]boundEnvVar[int]{
	&config.Global.Logging.Verbosity: {
		Name:        "verbosity",
		Description: "Increase logger verbosity (default WarnLevel)",
		Short:       helpers.Ptr("v"),
	},
}
