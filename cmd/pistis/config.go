package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/ethdb/leveldb"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"

	"github.com/pistis-network/go-pistis/params"
	"github.com/pistis-network/go-pistis/registry"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		if unicode.IsUpper(rune(field[0])) {
			return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
		}
		return nil
	},
}

func loadConfig(file string, cfg *params.Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig assembles the registry configuration from the defaults and the
// optional --config file.
func makeConfig(ctx *cli.Context) *params.Config {
	cfg := *params.DefaultConfig
	if file := ctx.String(configFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			Fatalf("Failed to load config file: %v", err)
		}
	}
	return &cfg
}

// makeDatabase opens the key-value store named by --datadir, or an ephemeral
// in-memory store when the flag is absent.
func makeDatabase(ctx *cli.Context) ethdb.KeyValueStore {
	dir := ctx.String(datadirFlag.Name)
	if dir == "" {
		return rawdb.NewMemoryDatabase()
	}
	db, err := leveldb.New(dir, 0, 0, "pistis", false)
	if err != nil {
		Fatalf("Failed to open database at %s: %v", dir, err)
	}
	return db
}

// makeRegistry opens the registry over the configured database.
func makeRegistry(ctx *cli.Context) *registry.Registry {
	reg, err := registry.New(makeDatabase(ctx), makeConfig(ctx))
	if err != nil {
		Fatalf("Invalid configuration: %v", err)
	}
	return reg
}
