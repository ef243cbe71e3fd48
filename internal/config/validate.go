package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := structValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return describeFieldError(fieldErrs[0])
		}
		return fmt.Errorf("validate config: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

var fieldNames = map[string]string{
	"Config.Encoding.AudioCodec":       "encoding.audio_codec",
	"Config.Encoding.BitrateKbps":      "encoding.bitrate_kbps",
	"Config.Encoding.Extension":        "encoding.extension",
	"Config.Encoding.ProbeConcurrency": "encoding.probe_concurrency",
	"Config.Logging.Format":            "logging.format",
	"Config.Logging.Level":             "logging.level",
}

func describeFieldError(fe validator.FieldError) error {
	name, ok := fieldNames[fe.Namespace()]
	if !ok {
		name = fe.Namespace()
	}
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s must be set", name)
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", name, fe.Param(), fmt.Sprint(fe.Value()))
	case "gte", "lte":
		return fmt.Errorf("%s is out of range (%s %s), got %v", name, fe.Tag(), fe.Param(), fe.Value())
	case "startswith":
		return fmt.Errorf("%s must start with %q", name, fe.Param())
	default:
		return fmt.Errorf("%s failed %s validation", name, fe.Tag())
	}
}
