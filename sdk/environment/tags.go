package environment

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ParseEnvTags fills a struct from environment variables using `env`,
// `default`, `required` and `separator` struct tags. The prefix is joined to
// each key with an underscore so multiple services can share a process
// environment without collisions.
func ParseEnvTags(prefix string, cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errors.New("cfg must be a pointer to a struct")
	}

	v = v.Elem()
	t := v.Type()

	for i := range v.NumField() {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		envKey := fieldType.Tag.Get("env")
		if envKey == "" {
			continue
		}

		key := GetEnvKeyPrefix(prefix, envKey)

		value := os.Getenv(key)
		if value == "" {
			if fieldType.Tag.Get("required") == "true" {
				return fmt.Errorf("required environment variable %s is not set", key)
			}
			value = fieldType.Tag.Get("default")
		}

		if err := setFieldValue(field, value, fieldType.Tag.Get("separator")); err != nil {
			return fmt.Errorf("setting field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, value, separator string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		if value == "" {
			return nil
		}
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			duration, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("cannot parse duration: %w", err)
			}
			field.SetInt(int64(duration))
			return nil
		}
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("cannot parse int: %w", err)
		}
		field.SetInt(intVal)

	case reflect.Bool:
		if value == "" {
			return nil
		}
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cannot parse bool: %w", err)
		}
		field.SetBool(boolVal)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type: %s", field.Type())
		}
		if value == "" {
			return nil
		}
		if separator == "" {
			separator = ","
		}
		parts := strings.Split(value, separator)
		out := make([]string, len(parts))
		for i, part := range parts {
			out[i] = strings.TrimSpace(part)
		}
		field.Set(reflect.ValueOf(out))

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}
