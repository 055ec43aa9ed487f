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
	"fmt"

	"golang.org/x/net/context"
)

var cmdGroups = &Command{
	Name: "groups",
	Run:  runGroups,
}

func runGroups(ctx context.Context, args []string) (err error) {
	if len(args) != 1 || args[0] == "" {
		err = fmt.Errorf("Usage: groups USERNAME")
		return
	}

	groups := getResolver().GroupsOf(args[0])
	if len(groups) == 0 {
		err = errNotFound
		return
	}

	for _, g := range groups {
		fmt.Fprintln(g_stdout, g)
	}

	return
}
