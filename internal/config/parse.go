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

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type jsonConfig struct {
	MaxId      *uint64 `json:"max_id"`
	PasswdFile *string `json:"passwd_file"`
	GroupFile  *string `json:"group_file"`
}

// Parse the supplied JSON configuration data. Settings that are not present
// keep their default values.
func Parse(data []byte) (*Config, error) {
	// Parse the JSON into our private representation.
	var jCfg jsonConfig

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jCfg); err != nil {
		return nil, fmt.Errorf("Decoding JSON: %v", err)
	}

	// Convert to our public representation.
	cfg := Default()

	if jCfg.MaxId != nil {
		cfg.MaxId = *jCfg.MaxId
	}

	if jCfg.PasswdFile != nil {
		cfg.PasswdFile = *jCfg.PasswdFile
	}

	if jCfg.GroupFile != nil {
		cfg.GroupFile = *jCfg.GroupFile
	}

	return cfg, nil
}
