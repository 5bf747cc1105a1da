// Package config loads application configuration from a JSON file or from
// Rigel, the etcd-backed configuration store.
package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/remiges-tech/rigel"
)

// Config is an interface that represents a source from which application configuration can be loaded.
type Config interface {
	LoadConfig(c any) error
	Check() error
	Get(key string) (string, error)
}

// Load first ensures that the config system is valid and accessible. Then it loads the config into c.
func Load(cs Config, c any) error {
	if err := cs.Check(); err != nil {
		return err
	}
	return cs.LoadConfig(c)
}

// File

type File struct {
	ConfigFilePath string
	Config         map[string]any
}

func (f *File) Check() error {
	if f.ConfigFilePath == "" {
		return fmt.Errorf("configFilePath cannot be empty")
	}
	return nil
}

// LoadConfig decodes the JSON file into appConfig and keeps the raw
// top-level values for Get.
func (f *File) LoadConfig(appConfig any) error {
	raw, err := os.ReadFile(f.ConfigFilePath)
	if err != nil {
		return err
	}

	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("failed to parse %s: %w", f.ConfigFilePath, err)
	}
	f.Config = values

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	return decoder.Decode(appConfig)
}

type ValueNotStringError struct {
	Key   string
	Value any
}

func (e *ValueNotStringError) Error() string {
	return fmt.Sprintf("value for key %s is not a string: %v", e.Key, e.Value)
}

type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %s not found in config", e.Key)
}

// Get retrieves a value from the configuration based on the provided key.
// If the value is a string, it is returned as is. If the value is not a string,
// it is converted to a string using fmt.Sprintf and returned along with the error ValueNotStringError.
// If the key is not found in the configuration, an error of type KeyNotFoundError is returned.
func (f *File) Get(key string) (string, error) {
	value, ok := f.Config[key]
	if !ok {
		return "", &KeyNotFoundError{Key: key}
	}

	strValue, ok := value.(string)
	if !ok {
		return fmt.Sprintf("%v", value), &ValueNotStringError{Key: key, Value: value}
	}
	return strValue, nil
}

// Rigel

const rigelTimeout = 5 * time.Second

type Rigel struct {
	Client *rigel.Rigel
}

func (r *Rigel) Check() error {
	if r.Client == nil {
		return fmt.Errorf("rigel client cannot be nil")
	}
	return nil
}

func (r *Rigel) LoadConfig(appConfig any) error {
	ctx, cancel := context.WithTimeout(context.Background(), rigelTimeout)
	defer cancel()
	return r.Client.LoadConfig(ctx, appConfig)
}

func (r *Rigel) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rigelTimeout)
	defer cancel()
	return r.Client.Get(ctx, key)
}
