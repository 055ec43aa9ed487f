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

type Config struct {
	// Numeric IDs larger than this are refused without consulting the account
	// database. Some platforms hand back wrapped-around or sentinel values
	// such as (uid_t)-1, and these must not be resolved as real accounts.
	MaxId uint64

	// The files enumerated when the whole user or group database must be
	// scanned.
	PasswdFile string
	GroupFile  string
}

// Default returns the configuration used when no config file is supplied.
func Default() *Config {
	return &Config{
		MaxId:      1<<32 - 2,
		PasswdFile: "/etc/passwd",
		GroupFile:  "/etc/group",
	}
}
