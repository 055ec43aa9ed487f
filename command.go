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

	"golang.org/x/net/context"
)

// A sub-command of the tool. Flags are parsed from the arguments following
// the command name, and the remaining arguments are handed to Run.
type Command struct {
	Name  string
	Flags flag.FlagSet
	Run   func(ctx context.Context, args []string) (err error)
}
