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
	"fmt"
	"math"
	"path"
)

func Validate(c *Config) error {
	// IDs are 32 bits wide.
	if c.MaxId > math.MaxUint32 {
		return fmt.Errorf("max_id %d does not fit in 32 bits.", c.MaxId)
	}

	if err := validateFile("passwd_file", c.PasswdFile); err != nil {
		return err
	}

	if err := validateFile("group_file", c.GroupFile); err != nil {
		return err
	}

	return nil
}

func validateFile(name string, p string) error {
	if p == "" {
		return fmt.Errorf("%s must be non-empty.", name)
	}

	if !path.IsAbs(p) {
		return fmt.Errorf("%s must be an absolute path.", name)
	}

	return nil
}
