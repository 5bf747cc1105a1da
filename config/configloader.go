package config

import (
	"fmt"
	"strings"

	"github.com/remiges-tech/rigel"
	"github.com/remiges-tech/rigel/etcd"
)

// LoadConfigFromFile loads appConfig from a JSON file and returns the source,
// which keeps serving Get for the raw values.
func LoadConfigFromFile(filePath string, appConfig any) (*File, error) {
	f := &File{ConfigFilePath: filePath}
	if err := Load(f, appConfig); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return f, nil
}

// RigelOptions names the config held in Rigel. EtcdEndpoints is a
// comma-separated list.
type RigelOptions struct {
	EtcdEndpoints string
	App           string
	Module        string
	Version       int
	ConfigName    string
}

func NewRigelClient(opts RigelOptions) (*rigel.Rigel, error) {
	etcdStorage, err := etcd.NewEtcdStorage(strings.Split(opts.EtcdEndpoints, ","))
	if err != nil {
		return nil, fmt.Errorf("failed to create EtcdStorage: %w", err)
	}
	return rigel.New(etcdStorage, opts.App, opts.Module, opts.Version, opts.ConfigName), nil
}

func LoadConfigFromRigel(opts RigelOptions, appConfig any) (*Rigel, error) {
	client, err := NewRigelClient(opts)
	if err != nil {
		return nil, err
	}

	r := &Rigel{Client: client}
	if err := Load(r, appConfig); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return r, nil
}
