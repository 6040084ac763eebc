// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/titled/configuration"
)

const configurationTemplate = `
local M = {}

M.data_directory = "."

M.database = {
    directory = "data",
    name = "titled.leveldb",
}

M.verifying_key = "verifying.key"

M.minters = {
    "0x9858effd232b4033e47d90003d41ec34ecaeda94",
}

M.attorneys = {
    "0x6fac4d18c912343bf86fa7049364dd4e424ab9c0",
}

M.client_rpc = {
    maximum_connections = 50,
    listen = {
        "127.0.0.1:2130",
    },
    certificate = "titled.crt",
    private_key = "titled.key",
}

M.logging = {
    size = 1048576,
    count = 20,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func TestGetConfiguration(t *testing.T) {
	dir, err := os.MkdirTemp("", "configuration-test")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "titled.conf")
	err = os.WriteFile(fileName, []byte(configurationTemplate), 0600)
	assert.Nil(t, err, "write configuration")

	options, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "get configuration")

	assert.Equal(t, uint64(50), options.ClientRPC.MaximumConnections, "maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "listen")
	assert.Equal(t, 20, options.Logging.Count, "log count")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "log level")
	assert.Equal(t, []string{"0x9858effd232b4033e47d90003d41ec34ecaeda94"}, options.Minters, "minters")
	assert.Equal(t, []string{"0x6fac4d18c912343bf86fa7049364dd4e424ab9c0"}, options.Attorneys, "attorneys")

	// relative names become absolute under the data directory
	assert.True(t, filepath.IsAbs(options.Database.Directory), "database directory")
	assert.True(t, filepath.IsAbs(options.VerifyingKeyFile), "verifying key")
	assert.True(t, filepath.IsAbs(options.ClientRPC.Certificate), "certificate")
	assert.Equal(t, filepath.Join(options.Database.Directory, "titled.leveldb"), options.Database.Name, "database name")

	// directories were created
	info, err := os.Stat(options.Database.Directory)
	assert.Nil(t, err, "database directory stat")
	assert.True(t, info.IsDir(), "database directory kind")
}

func TestGetConfigurationRejectsMissingDataDirectory(t *testing.T) {
	dir, err := os.MkdirTemp("", "configuration-test")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "titled.conf")
	err = os.WriteFile(fileName, []byte("return { data_directory = \"\" }"), 0600)
	assert.Nil(t, err, "write configuration")

	_, err = configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "empty data directory")
}

func TestGetConfigurationRejectsPathAsDatabaseName(t *testing.T) {
	dir, err := os.MkdirTemp("", "configuration-test")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "titled.conf")
	err = os.WriteFile(fileName, []byte(`
return {
    data_directory = ".",
    database = { name = "some/path.leveldb" },
}
`), 0600)
	assert.Nil(t, err, "write configuration")

	_, err = configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "database name with path")
}
