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
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"sync"
	"testing"

	. "github.com/jacobsa/oglematchers"
	. "github.com/jacobsa/ogletest"
	"golang.org/x/net/context"
)

func TestCommands(t *testing.T) { RunTests(t) }

////////////////////////////////////////////////////////////////////////
// Helpers
////////////////////////////////////////////////////////////////////////

// Forget any config and resolver built by an earlier test.
func resetGlobals() {
	g_configOnce = sync.Once{}
	g_config = nil
	g_resolverOnce = sync.Once{}
	g_resolver = nil
}

////////////////////////////////////////////////////////////////////////
// Boilerplate
////////////////////////////////////////////////////////////////////////

type CommandsTest struct {
	ctx context.Context
}

func init() { RegisterTestSuite(&CommandsTest{}) }

func (t *CommandsTest) SetUp(ti *TestInfo) {
	t.ctx = ti.Ctx
}

////////////////////////////////////////////////////////////////////////
// Tests
////////////////////////////////////////////////////////////////////////

func (t *CommandsTest) UnknownCommand() {
	err := runCmd(t.ctx, "taco", nil)
	ExpectThat(err, Error(HasSubstr("Unknown command")))
	ExpectThat(err, Error(HasSubstr("taco")))
}

func (t *CommandsTest) GetWithoutKey() {
	err := runCmd(t.ctx, "get", []string{"-field", "uid"})
	ExpectThat(err, Error(HasSubstr("Usage")))
}

func (t *CommandsTest) GetWithEmptyKey() {
	err := runCmd(t.ctx, "get", []string{""})
	ExpectThat(err, Error(HasSubstr("non-empty")))
}

func (t *CommandsTest) IdWithUnknownCategory() {
	err := runCmd(t.ctx, "id", []string{"-category", "taco", "root"})
	ExpectThat(err, Error(HasSubstr("Unknown category")))
}

func (t *CommandsTest) GroupsWithoutUsername() {
	err := runCmd(t.ctx, "groups", nil)
	ExpectThat(err, Error(HasSubstr("Usage")))
}

func (t *CommandsTest) UnknownFlag() {
	err := runCmd(t.ctx, "groups", []string{"-taco"})
	ExpectThat(err, Error(HasSubstr("taco")))
}

////////////////////////////////////////////////////////////////////////
// Command output
////////////////////////////////////////////////////////////////////////

type CommandOutputTest struct {
	ctx    context.Context
	stdout bytes.Buffer

	// A temporary directory removed at the end of the test.
	dir string
}

var _ SetUpInterface = &CommandOutputTest{}
var _ TearDownInterface = &CommandOutputTest{}

func init() { RegisterTestSuite(&CommandOutputTest{}) }

func (t *CommandOutputTest) SetUp(ti *TestInfo) {
	var err error
	t.ctx = ti.Ctx

	t.dir, err = ioutil.TempDir("", "main_test")
	AssertEq(nil, err)

	passwdFile := path.Join(t.dir, "passwd")
	groupFile := path.Join(t.dir, "group")
	configFile := path.Join(t.dir, "config.json")

	err = ioutil.WriteFile(
		passwdFile,
		[]byte("root:x:0:0:root:/root:/bin/bash\n"),
		0644)
	AssertEq(nil, err)

	err = ioutil.WriteFile(
		groupFile,
		[]byte(
			"group1:x:100:user1,user2\n"+
				"group2:x:101:user2\n"+
				"group1:x:100:user1,user2\n"+
				"group3:x:102:user1\n"+
				"group4:x:103:user2\n"),
		0644)
	AssertEq(nil, err)

	config := fmt.Sprintf(
		`{"max_id": 60000, "passwd_file": %q, "group_file": %q}`,
		passwdFile,
		groupFile)

	err = ioutil.WriteFile(configFile, []byte(config), 0644)
	AssertEq(nil, err)

	*g_configFile = configFile
	g_stdout = &t.stdout
	resetGlobals()
}

func (t *CommandOutputTest) TearDown() {
	*g_configFile = ""
	g_stdout = os.Stdout
	resetGlobals()

	err := os.RemoveAll(t.dir)
	AssertEq(nil, err)
}

func (t *CommandOutputTest) LoadsConfigFile() {
	cfg := getConfig()
	ExpectEq(60000, cfg.MaxId)
	ExpectEq(path.Join(t.dir, "group"), cfg.GroupFile)
}

func (t *CommandOutputTest) GetUid() {
	err := runCmd(
		t.ctx,
		"get",
		[]string{"-category", "user", "-field", "uid", "root"})

	AssertEq(nil, err)
	ExpectEq("0\n", t.stdout.String())
}

func (t *CommandOutputTest) GetName() {
	err := runCmd(
		t.ctx,
		"get",
		[]string{"-category", "user", "-field", "name", "0"})

	AssertEq(nil, err)
	ExpectEq("root\n", t.stdout.String())
}

func (t *CommandOutputTest) GetUnknownUser() {
	err := runCmd(
		t.ctx,
		"get",
		[]string{"-category", "user", "-field", "uid", "jksdlhfy9823h4bnkqjsahdjkahsd"})

	ExpectEq(errNotFound, err)
	ExpectEq("", t.stdout.String())
}

func (t *CommandOutputTest) IdOfGroupZero() {
	err := runCmd(t.ctx, "id", []string{"-category", "group", "0"})

	AssertEq(nil, err)
	ExpectEq("0\n", t.stdout.String())
}

func (t *CommandOutputTest) IdAboveMaximum() {
	err := runCmd(t.ctx, "id", []string{"-category", "user", "60001"})

	ExpectEq(errNotFound, err)
	ExpectEq("", t.stdout.String())
}

func (t *CommandOutputTest) Groups() {
	err := runCmd(t.ctx, "groups", []string{"user1"})

	AssertEq(nil, err)
	ExpectEq("group1\ngroup3\n", t.stdout.String())
}

func (t *CommandOutputTest) GroupsOfUserWithoutMemberships() {
	err := runCmd(t.ctx, "groups", []string{"nobody"})

	ExpectEq(errNotFound, err)
	ExpectEq("", t.stdout.String())
}
