// Package config provides a centralized entrypoint for the application parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"go.yaml.in/yaml/v3"
)

const (
	// ModeService serves the webhook over plain HTTP.
	ModeService = "service"
	// ModeLambdaHTTP runs the webhook as a Lambda function behind API Gateway or a function URL.
	ModeLambdaHTTP = "lambda-http"
	// ModeLambdaGreeting runs the greeting function on Lambda.
	ModeLambdaGreeting = "lambda-greeting"
)

const (
	// VerificationSourceEnv reads the verification code from flags or the environment.
	VerificationSourceEnv = "env"
	// VerificationSourceSSM reads the verification code from an SSM parameter.
	VerificationSourceSSM = "ssm"
)

const (
	PayloadTypeAPIGatewayV1 = "api-gateway-v1"
	PayloadTypeAPIGatewayV2 = "api-gateway-v2"
	PayloadTypeLambdaURL    = "lambda-url"
)

var (
	// Global is a struct that contains the global configuration.
	Global global
	// Fitbit is a struct that contains the configuration for the Fitbit subscription.
	Fitbit fitbit
	// Service is a struct that contains the configuration for the service mode.
	Service service
	// Lambda is a struct that contains the configuration for the lambda mode.
	Lambda lambda
)

type global struct {
	// Mode is the runtime mode of the application.
	Mode string `yaml:"mode,omitempty" default:"lambda-http"`
	// Logging is a struct that contains the logging configuration.
	Logging struct {
		// Verbosity is the verbosity level of the application. It represents slog levels.
		Verbosity int `yaml:"verbosity,omitempty"`
		// CallerTrace is a flag that enables the caller trace in the logger.
		CallerTrace bool `yaml:"callerTrace,omitempty"`
	} `yaml:"logging,omitempty"`
}

type fitbit struct {
	// VerificationSource selects where the subscriber verification code is read from.
	VerificationSource string `yaml:"verificationSource,omitempty" default:"env"`
	// VerificationCode is the subscriber verification code shown in the Fitbit developer console.
	VerificationCode string `yaml:"verificationCode,omitempty"`
	// SSMKey is the SSM parameter holding the verification code when VerificationSource is "ssm".
	SSMKey string `yaml:"ssmKey,omitempty"`
}

type service struct {
	Path    string        `yaml:"path,omitempty" default:"/"`
	Addr    string        `yaml:"addr,omitempty"`
	Port    string        `yaml:"port,omitempty" default:"8080"`
	Timeout time.Duration `yaml:"timeout,omitempty" default:"5s"`
}

type lambda struct {
	PayloadType string `yaml:"payloadType,omitempty" default:"api-gateway-v2"`
}

// SetDefaults sets the default values for the configuration.
func SetDefaults() error {
	return errors.Join(
		defaults.Set(&Global),
		defaults.Set(&Fitbit),
		defaults.Set(&Service),
		defaults.Set(&Lambda),
	)
}

// LoadFromFile loads the configuration from a file.
func LoadFromFile(path string) error {
	if len(path) == 0 {
		return nil
	}
	fstat, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // If the file does not exist, we ignore it.
	}
	if fstat.IsDir() {
		return fmt.Errorf("configuration file %s is a directory", path)
	}
	if !fstat.Mode().IsRegular() {
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	type all struct {
		Global  global  `yaml:"global,omitempty"`
		Fitbit  fitbit  `yaml:"fitbit,omitempty"`
		Service service `yaml:"service,omitempty"`
		Lambda  lambda  `yaml:"lambda,omitempty"`
	}
	var a all
	if err = yaml.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	Global = a.Global
	Fitbit = a.Fitbit
	Service = a.Service
	Lambda = a.Lambda

	return nil
}
