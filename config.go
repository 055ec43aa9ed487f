// Copyright 2016 Aaron Jacobs. All Rights Reserved.
// Author: aaronjjacobs@gmail.com (Aaron Jacobs)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"
	"sync"

	"github.com/jacobsa/idresolve/internal/config"
	"github.com/jacobsa/idresolve/internal/resolve"
	"github.com/jacobsa/idresolve/internal/sys"
)

var g_configFile = flag.String("config", "", "Path to config file.")

var g_configOnce sync.Once
var g_config *config.Config

func initConfig() {
	var err error

	// Fall back to the defaults when no file is given.
	if *g_configFile == "" {
		g_config = config.Default()
	} else {
		// Read the file.
		var configData []byte
		configData, err = ioutil.ReadFile(*g_configFile)
		if err != nil {
			log.Fatalln("Error reading config file:", err)
		}

		// Parse the config file.
		g_config, err = config.Parse(configData)
		if err != nil {
			log.Fatalln("Parsing config file:", err)
		}
	}

	// Validate.
	if err = config.Validate(g_config); err != nil {
		log.Fatalln("Invalid config:", err)
	}
}

func getConfig() *config.Config {
	g_configOnce.Do(initConfig)
	return g_config
}

var g_resolverOnce sync.Once
var g_resolver *resolve.Resolver

func initResolver() {
	cfg := getConfig()

	registry := sys.NewRegistry(cfg.PasswdFile, cfg.GroupFile)
	g_resolver = resolve.NewResolver(
		registry,
		cfg.MaxId,
		log.New(os.Stderr, "", log.Flags()))
}

func getResolver() *resolve.Resolver {
	g_resolverOnce.Do(initResolver)
	return g_resolver
}
