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

	"github.com/jacobsa/idresolve/internal/resolve"
	"github.com/jacobsa/idresolve/internal/sys"
	"golang.org/x/net/context"
)

var cmdId = &Command{
	Name: "id",
}

var fIdCategory = cmdId.Flags.String(
	"category",
	"user",
	"The account database to consult: group or user.")

func init() {
	cmdId.Run = runId
}

func runId(ctx context.Context, args []string) (err error) {
	if len(args) != 1 {
		err = fmt.Errorf("Usage: id -category C KEY")
		return
	}

	c, err := sys.ParseCategory(*fIdCategory)
	if err != nil {
		return
	}

	k := resolve.NameKey(args[0])
	if !k.Valid() {
		err = fmt.Errorf("The lookup key must be non-empty.")
		return
	}

	id, ok := getResolver().ResolveId(c, k)
	if !ok {
		err = errNotFound
		return
	}

	fmt.Fprintln(g_stdout, id)
	return
}
